package usecase

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"strings"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// CreateProfile is called right after contractor registration, usually with
// an empty bio and no phone number.
func (u *profileUsecase) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	if profile.ContractorID == 0 {
		return apperror.BadRequest("contractor_id is required")
	}
	if profile.RoleStatus == "" {
		profile.RoleStatus = domain.DefaultRoleStatus
	}
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetProfile returns the contractor's profile, creating a default one on
// first read. A missing contractor is a 404; a missing profile is not.
func (u *profileUsecase) GetProfile(ctx context.Context, contractorID int64) (*domain.Profile, error) {
	exists, err := u.profileRepo.ContractorExists(ctx, contractorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !exists {
		return nil, apperror.NotFound("Contractor not found")
	}

	profile, err := u.profileRepo.GetByContractorID(ctx, contractorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile != nil {
		return profile, nil
	}

	profile = &domain.Profile{
		ContractorID: contractorID,
		Bio:          "",
		RoleStatus:   domain.DefaultRoleStatus,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile merges the patch over the stored row: nil fields keep their
// current values. Unlike GetProfile, it never auto-creates.
func (u *profileUsecase) UpdateProfile(ctx context.Context, contractorID int64, patch *domain.ProfileUpdate) (*domain.Profile, error) {
	current, err := u.profileRepo.GetByContractorID(ctx, contractorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if current == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	if patch.Bio != nil {
		current.Bio = *patch.Bio
	}
	if patch.PhoneNumber != nil {
		current.PhoneNumber = patch.PhoneNumber
	}
	if patch.RoleStatus != nil {
		current.RoleStatus = *patch.RoleStatus
	}
	if patch.Education != nil {
		current.Education = patch.Education
	}

	if err := u.validate.Struct(current); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.profileRepo.Update(ctx, current); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return current, nil
}

func (u *profileUsecase) GetSkills(ctx context.Context, contractorID int64) (*domain.SkillSet, error) {
	profile, err := u.requireProfile(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	set, err := u.profileRepo.GetSkills(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return set, nil
}

// UpdateSkills replaces the whole skill list. Blank names are dropped before
// the write, matching the legacy filter.
func (u *profileUsecase) UpdateSkills(ctx context.Context, contractorID int64, skills []domain.Skill) (*domain.SkillSet, error) {
	profile, err := u.requireProfile(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	cleaned := make([]domain.Skill, 0, len(skills))
	for _, s := range skills {
		name := strings.TrimSpace(s.SkillName)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, domain.Skill{SkillName: name})
	}

	if err := u.profileRepo.ReplaceSkills(ctx, profile.ID, cleaned); err != nil {
		return nil, apperror.Internal(err)
	}

	set, err := u.profileRepo.GetSkills(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return set, nil
}

func (u *profileUsecase) GetExperiences(ctx context.Context, contractorID int64) ([]domain.Experience, error) {
	profile, err := u.requireProfile(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	experiences, err := u.profileRepo.GetExperiences(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return experiences, nil
}

// UpdateExperiences replaces the whole experience list. Entries without a
// company name or role title are dropped.
func (u *profileUsecase) UpdateExperiences(ctx context.Context, contractorID int64, experiences []domain.Experience) ([]domain.Experience, error) {
	profile, err := u.requireProfile(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	cleaned := make([]domain.Experience, 0, len(experiences))
	for _, e := range experiences {
		e.CompanyName = strings.TrimSpace(e.CompanyName)
		e.RoleTitle = strings.TrimSpace(e.RoleTitle)
		if e.CompanyName == "" || e.RoleTitle == "" {
			continue
		}
		cleaned = append(cleaned, e)
	}

	if err := u.profileRepo.ReplaceExperiences(ctx, profile.ID, cleaned); err != nil {
		return nil, apperror.Internal(err)
	}

	updated, err := u.profileRepo.GetExperiences(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (u *profileUsecase) GetClient(ctx context.Context, clientID int64) (*domain.ClientInfo, error) {
	info, err := u.profileRepo.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}
	return info, nil
}

func (u *profileUsecase) UpdateClient(ctx context.Context, info *domain.ClientInfo) (*domain.ClientInfo, error) {
	if err := u.profileRepo.UpdateClient(ctx, info); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}
	updated, err := u.profileRepo.GetClient(ctx, info.ClientID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

// requireProfile loads the profile row behind the skills/experiences
// endpoints; these 404 when there is no profile yet.
func (u *profileUsecase) requireProfile(ctx context.Context, contractorID int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByContractorID(ctx, contractorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}
