package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// Repository is the data access used by the provisioning and nested upsert
// use cases. Lookups of a missing row return an error wrapping
// httperr.ErrNotFound.
type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Accounts --------
	FindAccount(ctx context.Context, id uint) (*models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, a *models.Account) error
	SaveAccount(ctx context.Context, a *models.Account) error

	// -------- Catalog (get-or-create on exact field match) --------
	GetOrCreateBranch(ctx context.Context, f BranchFields) (*models.Branch, error)
	GetOrCreateSkill(ctx context.Context, f SkillFields) (*models.Skill, error)
	GetOrCreateClient(ctx context.Context, f ClientFields) (*models.Client, error)
	GetOrCreateService(ctx context.Context, f ServiceFields) (*models.Service, error)
	GetOrCreatePayment(ctx context.Context, f PaymentFields) (*models.Payment, error)
	GetOrCreateDiscount(ctx context.Context, f DiscountFields) (*models.Discount, error)

	// -------- Technicians --------
	CreateTechnician(ctx context.Context, t *models.Technician) error
	FindTechnicianByAccount(ctx context.Context, accountID uint) (*models.Technician, error)
	GetTechnician(ctx context.Context, id uint) (*models.Technician, error)
	ListTechnicians(ctx context.Context) ([]models.Technician, error)
	DeleteTechnician(ctx context.Context, id uint) error

	AttachSkill(ctx context.Context, technicianID, skillID uint) error
	ClearSkills(ctx context.Context, technicianID uint) error
	AttachBranch(ctx context.Context, technicianID, branchID uint) error
	ClearBranches(ctx context.Context, technicianID uint) error

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Audit --------
	Audit(ctx context.Context, ev audit.Event) error
}
