package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/pagination"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List runs two reads under the same role filter: the page slice in
// insertion order and the unpaginated count.
func (r *UserRepo) List(role string, p pagination.Params) ([]domain.User, int64, error) {
	q := r.db.Model(&domain.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at asc, id asc").Offset(p.Offset())
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	var users []domain.User
	if err := q.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdatePartial overwrites only the fields present in the patch and
// returns the resulting row. Concurrent patches are last-write-wins.
func (r *UserRepo) UpdatePartial(id string, patch domain.UserPatch) (*domain.User, error) {
	updates := map[string]any{}
	if patch.Firstname != nil {
		updates["firstname"] = *patch.Firstname
	}
	if patch.Lastname != nil {
		updates["lastname"] = *patch.Lastname
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}

	// Existence check first so a missing id is NotFound even when the
	// patch is empty (mysql reports zero affected rows for no-op sets).
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		err := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if isDupKey(err) {
				return nil, domain.ErrDuplicate
			}
			return nil, err
		}
	}
	return r.FindByID(id)
}

func (r *UserRepo) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Where("id IN ?", ids).Delete(&domain.User{})
	return res.RowsAffected, res.Error
}

// isDupKey avoids depending on driver-specific error types; every
// supported driver mentions the unique constraint in the message.
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
