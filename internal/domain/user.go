package domain

import (
	"time"

	"github.com/anhthuvo/mobileAppBE/internal/pagination"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string     `gorm:"size:191;not null" json:"-"`
	Firstname    string     `gorm:"size:64;not null" json:"firstname"`
	Lastname     string     `gorm:"size:64;not null" json:"lastname"`
	Phone        string     `gorm:"uniqueIndex;size:32" json:"phone"`
	Role         string     `gorm:"size:16;not null;default:USER" json:"role"`
	Courses      StringList `gorm:"type:json" json:"courses"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserPatch carries a partial update: nil fields are left untouched.
// Email and password are deliberately absent, they are not updatable here.
type UserPatch struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	// List returns one page of users plus the unpaginated total matching
	// the same role filter ("" means no filter).
	List(role string, p pagination.Params) ([]User, int64, error)
	UpdatePartial(id string, patch UserPatch) (*User, error)
	// DeleteByIDs removes the matching rows and reports how many actually
	// existed; unknown ids are not an error.
	DeleteByIDs(ids []string) (int64, error)
}
