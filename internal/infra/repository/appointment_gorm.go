package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *SalonGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

// SaveAppointment writes columns and foreign keys only; the referenced
// rows are managed by their own get-or-create calls.
func (r *SalonGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *SalonGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.withChildren(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment")
	}

	if err := r.loadMemberships(ctx, []*models.Technician{&ap.Technician}); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SalonGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.withChildren(ctx).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	techs := make([]*models.Technician, len(apps))
	for i := range apps {
		techs[i] = &apps[i].Technician
	}
	if err := r.loadMemberships(ctx, techs); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *SalonGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return deleteByID(ctx, r.db, &models.Appointment{}, id, "appointment")
}

func (r *SalonGormRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Branch").
		Preload("Client").
		Preload("Service").
		Preload("Payment").
		Preload("Discount").
		Preload("Technician.Account")
}
