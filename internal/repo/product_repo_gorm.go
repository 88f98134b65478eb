package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/pagination"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(p pagination.Params) ([]domain.Product, int64, error) {
	q := r.db.Model(&domain.Product{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at asc, id asc").Offset(p.Offset())
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	var products []domain.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepo) UpdatePartial(id string, patch domain.ProductPatch) (*domain.Product, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Detail != nil {
		updates["detail"] = *patch.Detail
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Brand != nil {
		updates["brand"] = *patch.Brand
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Sizes != nil {
		updates["sizes"] = *patch.Sizes
	}
	if patch.Inventory != nil {
		updates["inventory"] = *patch.Inventory
	}

	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&domain.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

func (r *ProductRepo) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Where("id IN ?", ids).Delete(&domain.Product{})
	return res.RowsAffected, res.Error
}
