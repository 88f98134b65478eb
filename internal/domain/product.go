package domain

import (
	"time"

	"github.com/anhthuvo/mobileAppBE/internal/pagination"
)

type Product struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:191;not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Detail      string     `gorm:"type:text" json:"detail"`
	Image       StringList `gorm:"type:json" json:"image"`
	Brand       string     `gorm:"size:64;not null" json:"brand"`
	Price       string     `gorm:"size:32;not null" json:"price"`
	Sizes       IntList    `gorm:"type:json" json:"sizes"`
	Inventory   int        `gorm:"not null;default:0" json:"inventory"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// ProductPatch carries a partial update: nil fields are left untouched.
type ProductPatch struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Detail      *string     `json:"detail"`
	Image       *StringList `json:"image"`
	Brand       *string     `json:"brand"`
	Price       *string     `json:"price"`
	Sizes       *IntList    `json:"sizes"`
	Inventory   *int        `json:"inventory"`
}

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id string) (*Product, error)
	List(p pagination.Params) ([]Product, int64, error)
	UpdatePartial(id string, patch ProductPatch) (*Product, error)
	DeleteByIDs(ids []string) (int64, error)
}
