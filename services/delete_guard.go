// services/delete_guard.go
package services

import (
	"errors"
	"fmt"

	"backend/entity"

	"gorm.io/gorm"
)

// EntityKind names the three entity types protected by the delete guard.
type EntityKind string

const (
	KindCake     EntityKind = "cake"
	KindDesign   EntityKind = "design"
	KindCustomer EntityKind = "customer"
)

// DeleteGuard refuses to delete a cake, design or customer while any
// review depends on it. The existence check, the dependent count and the
// delete run inside one transaction so a review created or removed
// concurrently cannot slip between the check and the delete.
type DeleteGuard struct {
	DB *gorm.DB
}

func NewDeleteGuard(db *gorm.DB) *DeleteGuard {
	return &DeleteGuard{DB: db}
}

// CanDelete reports whether the entity could be deleted right now.
// ErrNotFound if it does not exist.
func (g *DeleteGuard) CanDelete(kind EntityKind, id uint) (bool, error) {
	if err := g.exists(g.DB, kind, id); err != nil {
		return false, err
	}
	count, err := g.dependentReviews(g.DB, kind, id)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Delete removes the entity, or returns ErrNotFound / *BlockedError.
func (g *DeleteGuard) Delete(kind EntityKind, id uint) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		if err := g.exists(tx, kind, id); err != nil {
			return err
		}
		count, err := g.dependentReviews(tx, kind, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &BlockedError{Reason: blockedReason(kind)}
		}
		// A customer row is removed outright. The email column carries a
		// hard unique index, so a soft-deleted row would keep that
		// address unusable for new signups.
		if kind == KindCustomer {
			return tx.Unscoped().Delete(g.model(kind), id).Error
		}
		return tx.Delete(g.model(kind), id).Error
	})
}

func (g *DeleteGuard) exists(tx *gorm.DB, kind EntityKind, id uint) error {
	err := tx.Select("id").First(g.model(kind), id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// dependentReviews counts reviews referencing the entity. Customers and
// designs are referenced directly; a cake is referenced through its designs.
func (g *DeleteGuard) dependentReviews(tx *gorm.DB, kind EntityKind, id uint) (int64, error) {
	var count int64
	q := tx.Model(&entity.Review{})
	switch kind {
	case KindCake:
		q = q.Joins("JOIN designs ON designs.id = reviews.design_id AND designs.deleted_at IS NULL").
			Where("designs.cake_id = ?", id)
	case KindDesign:
		q = q.Where("design_id = ?", id)
	case KindCustomer:
		q = q.Where("customer_id = ?", id)
	default:
		return 0, fmt.Errorf("unknown entity kind: %s", kind)
	}
	err := q.Count(&count).Error
	return count, err
}

func (g *DeleteGuard) model(kind EntityKind) any {
	switch kind {
	case KindCake:
		return &entity.Cake{}
	case KindDesign:
		return &entity.Design{}
	case KindCustomer:
		return &entity.Customer{}
	}
	return nil
}

func blockedReason(kind EntityKind) string {
	switch kind {
	case KindCake:
		return "Cannot delete: cake has designs with reviews"
	case KindDesign:
		return "Cannot delete: design has reviews"
	case KindCustomer:
		return "Cannot delete: customer has reviews"
	}
	return "Cannot delete: entity has dependents"
}
