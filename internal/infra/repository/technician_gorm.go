package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// --------------------------------------------------
// Technicians
// --------------------------------------------------

func (r *SalonGormRepository) CreateTechnician(
	ctx context.Context,
	t *models.Technician,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(t).Error
}

func (r *SalonGormRepository) FindTechnicianByAccount(
	ctx context.Context,
	accountID uint,
) (*models.Technician, error) {

	var t models.Technician
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&t).Error; err != nil {
		return nil, notFound(err, "technician")
	}
	return &t, nil
}

// GetTechnician loads the technician with its account, skills and branches.
func (r *SalonGormRepository) GetTechnician(
	ctx context.Context,
	id uint,
) (*models.Technician, error) {

	var t models.Technician
	if err := r.db.WithContext(ctx).
		Preload("Account").
		First(&t, id).Error; err != nil {
		return nil, notFound(err, "technician")
	}

	if err := r.loadMemberships(ctx, []*models.Technician{&t}); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SalonGormRepository) ListTechnicians(
	ctx context.Context,
) ([]models.Technician, error) {

	var techs []models.Technician
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Order("id ASC").
		Find(&techs).Error; err != nil {
		return nil, err
	}

	ptrs := make([]*models.Technician, len(techs))
	for i := range techs {
		ptrs[i] = &techs[i]
	}
	if err := r.loadMemberships(ctx, ptrs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *SalonGormRepository) DeleteTechnician(
	ctx context.Context,
	id uint,
) error {
	return deleteByID(ctx, r.db, &models.Technician{}, id, "technician")
}

// --------------------------------------------------
// Memberships
// --------------------------------------------------

// AttachSkill is idempotent: an existing membership is left as is.
func (r *SalonGormRepository) AttachSkill(
	ctx context.Context,
	technicianID, skillID uint,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&models.TechnicianSkill{
			TechnicianID: technicianID,
			SkillID:      skillID,
		}).Error
}

func (r *SalonGormRepository) ClearSkills(
	ctx context.Context,
	technicianID uint,
) error {
	return r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Delete(&models.TechnicianSkill{}).Error
}

func (r *SalonGormRepository) AttachBranch(
	ctx context.Context,
	technicianID, branchID uint,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&models.TechnicianBranch{
			TechnicianID: technicianID,
			BranchID:     branchID,
		}).Error
}

func (r *SalonGormRepository) ClearBranches(
	ctx context.Context,
	technicianID uint,
) error {
	return r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Delete(&models.TechnicianBranch{}).Error
}

// loadMemberships fills Skills and Branches of every technician, ordered
// by id, with one query per join table.
func (r *SalonGormRepository) loadMemberships(
	ctx context.Context,
	techs []*models.Technician,
) error {

	if len(techs) == 0 {
		return nil
	}

	seen := make(map[uint]bool, len(techs))
	ids := make([]uint, 0, len(techs))
	for _, t := range techs {
		t.Skills = []models.Skill{}
		t.Branches = []models.Branch{}
		if !seen[t.ID] {
			seen[t.ID] = true
			ids = append(ids, t.ID)
		}
	}

	var skills []models.TechnicianSkill
	if err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("technician_id IN ?", ids).
		Order("skill_id ASC").
		Find(&skills).Error; err != nil {
		return err
	}

	var branches []models.TechnicianBranch
	if err := r.db.WithContext(ctx).
		Preload("Branch").
		Where("technician_id IN ?", ids).
		Order("branch_id ASC").
		Find(&branches).Error; err != nil {
		return err
	}

	for _, t := range techs {
		for _, m := range skills {
			if m.TechnicianID == t.ID {
				t.Skills = append(t.Skills, m.Skill)
			}
		}
		for _, m := range branches {
			if m.TechnicianID == t.ID {
				t.Branches = append(t.Branches, m.Branch)
			}
		}
	}
	return nil
}
