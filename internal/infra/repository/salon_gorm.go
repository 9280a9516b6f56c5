package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
)

// SalonGormRepository implements salon.Repository on gorm. The same type is
// used inside transactions, bound to the transaction handle.
type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func (r *SalonGormRepository) Transaction(
	ctx context.Context,
	fn func(tx salon.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SalonGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *SalonGormRepository) Audit(ctx context.Context, ev audit.Event) error {
	return audit.New(r.db.WithContext(ctx)).Log(ev)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", entity, httperr.ErrNotFound)
	}
	return err
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id uint, entity string) error {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", entity, httperr.ErrNotFound)
	}
	return nil
}

// Compile-time check
var _ salon.Repository = (*SalonGormRepository)(nil)
