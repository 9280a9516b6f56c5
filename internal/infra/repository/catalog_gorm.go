package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// --------------------------------------------------
// Get-or-create
// --------------------------------------------------

// getOrCreate returns the lowest-id row matching every column in conds, or
// inserts row when there is none. A nil value in conds matches NULL. No
// uniqueness constraint backs the lookup, so concurrent callers with equal
// values may each insert a row.
func getOrCreate[M any](
	ctx context.Context,
	db *gorm.DB,
	conds map[string]any,
	row *M,
) (*M, error) {

	var found []M
	if err := db.WithContext(ctx).
		Where(conds).
		Order("id ASC").
		Limit(1).
		Find(&found).Error; err != nil {
		return nil, err
	}

	if len(found) > 0 {
		return &found[0], nil
	}

	if err := db.WithContext(ctx).
		Omit(clause.Associations).
		Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *SalonGormRepository) GetOrCreateBranch(
	ctx context.Context,
	f salon.BranchFields,
) (*models.Branch, error) {

	var b models.Branch
	if err := f.Apply(&b); err != nil {
		return nil, err
	}

	return getOrCreate(ctx, r.db, map[string]any{
		"name":       b.Name,
		"address":    b.Address,
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
	}, &b)
}

func (r *SalonGormRepository) GetOrCreateSkill(
	ctx context.Context,
	f salon.SkillFields,
) (*models.Skill, error) {

	var s models.Skill
	if err := f.Apply(&s); err != nil {
		return nil, err
	}

	return getOrCreate(ctx, r.db, map[string]any{
		"name": s.Name,
	}, &s)
}

func (r *SalonGormRepository) GetOrCreateClient(
	ctx context.Context,
	f salon.ClientFields,
) (*models.Client, error) {

	var c models.Client
	if err := f.Apply(&c); err != nil {
		return nil, err
	}

	return getOrCreate(ctx, r.db, map[string]any{
		"name":      c.Name,
		"last_name": c.LastName,
		"phone":     c.Phone,
		"email":     c.Email,
		"birthday":  c.Birthday,
		"comments":  c.Comments,
	}, &c)
}

func (r *SalonGormRepository) GetOrCreateService(
	ctx context.Context,
	f salon.ServiceFields,
) (*models.Service, error) {

	var s models.Service
	if err := f.Apply(&s); err != nil {
		return nil, err
	}

	return getOrCreate(ctx, r.db, map[string]any{
		"name":  s.Name,
		"price": s.Price,
	}, &s)
}

func (r *SalonGormRepository) GetOrCreatePayment(
	ctx context.Context,
	f salon.PaymentFields,
) (*models.Payment, error) {

	var p models.Payment
	if err := f.Apply(&p); err != nil {
		return nil, err
	}

	return getOrCreate(ctx, r.db, map[string]any{
		"format_code": p.FormatCode,
		"description": p.Description,
	}, &p)
}

func (r *SalonGormRepository) GetOrCreateDiscount(
	ctx context.Context,
	f salon.DiscountFields,
) (*models.Discount, error) {

	var d models.Discount
	if err := f.Apply(&d); err != nil {
		return nil, err
	}

	return getOrCreate(ctx, r.db, map[string]any{
		"description": d.Description,
		"value":       d.Value,
	}, &d)
}
