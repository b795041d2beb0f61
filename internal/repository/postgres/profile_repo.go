package postgres

import (
	"context"
	"errors"
	"fmt"
	"siteseekers-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (contractor_id, bio, phone_number, role_status, education)
              VALUES ($1, $2, $3, $4, $5) RETURNING profile_id`
	return r.db.QueryRow(ctx, query,
		profile.ContractorID, profile.Bio, profile.PhoneNumber, profile.RoleStatus, profile.Education,
	).Scan(&profile.ID)
}

func (r *profileRepo) GetByContractorID(ctx context.Context, contractorID int64) (*domain.Profile, error) {
	query := `SELECT profile_id, contractor_id, bio, phone_number, role_status, education
              FROM profiles WHERE contractor_id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, contractorID).Scan(
		&p.ID, &p.ContractorID, &p.Bio, &p.PhoneNumber, &p.RoleStatus, &p.Education,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET bio = $2, phone_number = $3, role_status = $4, education = $5
              WHERE contractor_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ContractorID, profile.Bio, profile.PhoneNumber, profile.RoleStatus, profile.Education,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) ContractorExists(ctx context.Context, contractorID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM contractors WHERE contractor_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, contractorID).Scan(&exists)
	return exists, err
}

// GetSkills returns the skill list together with the education field that
// lives on the profile row, as one aggregated query
func (r *profileRepo) GetSkills(ctx context.Context, profileID int64) (*domain.SkillSet, error) {
	query := `
		SELECT
			COALESCE(p.education, ''),
			COALESCE(array_agg(s.skill_name ORDER BY s.skill_id) FILTER (WHERE s.skill_name IS NOT NULL), '{}')
		FROM profiles p
		LEFT JOIN skills s ON s.profile_id = p.profile_id
		WHERE p.profile_id = $1
		GROUP BY p.education`

	var set domain.SkillSet
	var names []string
	err := r.db.QueryRow(ctx, query, profileID).Scan(&set.Education, pq.Array(&names))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	set.Skills = make([]domain.Skill, 0, len(names))
	for _, name := range names {
		set.Skills = append(set.Skills, domain.Skill{SkillName: name})
	}
	return &set, nil
}

// ReplaceSkills swaps the whole skill list inside one transaction
func (r *profileRepo) ReplaceSkills(ctx context.Context, profileID int64, skills []domain.Skill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}

	insert := `INSERT INTO skills (profile_id, skill_name) VALUES ($1, $2)`
	for _, s := range skills {
		if _, err := tx.Exec(ctx, insert, profileID, s.SkillName); err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) GetExperiences(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	query := `SELECT experience_id, profile_id, company_name, role_title, start_date, end_date, description
              FROM experiences WHERE profile_id = $1 ORDER BY start_date DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.ProfileID, &e.CompanyName, &e.RoleTitle,
			&e.StartDate, &e.EndDate, &e.Description,
		); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

// ReplaceExperiences swaps the whole experience list inside one transaction
func (r *profileRepo) ReplaceExperiences(ctx context.Context, profileID int64, experiences []domain.Experience) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM experiences WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("failed to clear experiences: %w", err)
	}

	insert := `
		INSERT INTO experiences (profile_id, company_name, role_title, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, e := range experiences {
		if _, err := tx.Exec(ctx, insert, profileID, e.CompanyName, e.RoleTitle, e.StartDate, e.EndDate, e.Description); err != nil {
			return fmt.Errorf("failed to insert experience: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) GetClient(ctx context.Context, clientID int64) (*domain.ClientInfo, error) {
	query := `SELECT client_id, name, email, COALESCE(company, ''), COALESCE(location, ''), is_hiring
              FROM clients WHERE client_id = $1`
	var info domain.ClientInfo
	err := r.db.QueryRow(ctx, query, clientID).Scan(
		&info.ClientID, &info.Name, &info.Email, &info.Company, &info.Location, &info.IsHiring,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (r *profileRepo) UpdateClient(ctx context.Context, info *domain.ClientInfo) error {
	query := `UPDATE clients SET company = $2, location = $3, is_hiring = $4 WHERE client_id = $1`
	result, err := r.db.Exec(ctx, query, info.ClientID, info.Company, info.Location, info.IsHiring)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
