package domain

import (
	"context"
	"time"
)

// DefaultRoleStatus is assigned when a profile is auto-created on first read.
const DefaultRoleStatus = "Looking for Work"

type Profile struct {
	ID           int64   `json:"profile_id"`
	ContractorID int64   `json:"contractor_id"`
	Bio          string  `json:"bio"`
	PhoneNumber  *string `json:"phone_number"`
	RoleStatus   string  `json:"role_status" validate:"max=50"`
	Education    *string `json:"education"`
}

type Skill struct {
	SkillName string `json:"skill_name" validate:"required,max=100"`
}

// SkillSet is the response shape of the skills endpoint: the skill list plus
// the education field that lives on the profile row.
type SkillSet struct {
	Skills    []Skill `json:"skills"`
	Education string  `json:"education"`
}

type Experience struct {
	ID          int64      `json:"experience_id,omitempty"`
	ProfileID   int64      `json:"-"`
	CompanyName string     `json:"company_name" validate:"required,max=150"`
	RoleTitle   string     `json:"role_title" validate:"required,max=150"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
}

// ProfileUpdate carries the partial-update payload: nil fields keep the
// stored value, matching the legacy merge semantics.
type ProfileUpdate struct {
	Bio         *string `json:"bio"`
	PhoneNumber *string `json:"phone_number"`
	RoleStatus  *string `json:"role_status"`
	Education   *string `json:"education"`
}

// ClientInfo is the client-side company card shown on listings.
type ClientInfo struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Location string `json:"location"`
	IsHiring bool   `json:"isHiring"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByContractorID(ctx context.Context, contractorID int64) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	ContractorExists(ctx context.Context, contractorID int64) (bool, error)

	GetSkills(ctx context.Context, profileID int64) (*SkillSet, error)
	// ReplaceSkills swaps the whole skill list in one transaction.
	ReplaceSkills(ctx context.Context, profileID int64, skills []Skill) error

	GetExperiences(ctx context.Context, profileID int64) ([]Experience, error)
	// ReplaceExperiences swaps the whole experience list in one transaction.
	ReplaceExperiences(ctx context.Context, profileID int64, experiences []Experience) error

	GetClient(ctx context.Context, clientID int64) (*ClientInfo, error)
	UpdateClient(ctx context.Context, info *ClientInfo) error
}

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	// GetProfile auto-creates a default profile when the contractor exists
	// but has no profile row yet.
	GetProfile(ctx context.Context, contractorID int64) (*Profile, error)
	// UpdateProfile merges the patch over the stored row and returns the
	// updated profile. 404s when no profile row exists.
	UpdateProfile(ctx context.Context, contractorID int64, patch *ProfileUpdate) (*Profile, error)
	GetSkills(ctx context.Context, contractorID int64) (*SkillSet, error)
	UpdateSkills(ctx context.Context, contractorID int64, skills []Skill) (*SkillSet, error)
	GetExperiences(ctx context.Context, contractorID int64) ([]Experience, error)
	UpdateExperiences(ctx context.Context, contractorID int64, experiences []Experience) ([]Experience, error)
	GetClient(ctx context.Context, clientID int64) (*ClientInfo, error)
	UpdateClient(ctx context.Context, info *ClientInfo) (*ClientInfo, error)
}
