package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	"github.com/BruksfildServices01/salon-backend/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

func newRepo(t *testing.T) *SalonGormRepository {
	return NewSalonGormRepository(dbtest.Open(t))
}

func strPtr(s string) *string { return &s }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedTechnician(t *testing.T, r *SalonGormRepository, email string) *models.Technician {
	t.Helper()
	ctx := context.Background()

	acct := &models.Account{Email: email, PasswordHash: "!", IsActive: true, IsStaff: true}
	require.NoError(t, r.CreateAccount(ctx, acct))

	tech := &models.Technician{AccountID: acct.ID}
	require.NoError(t, r.CreateTechnician(ctx, tech))
	return tech
}

// --------------------------------------------------
// Get-or-create
// --------------------------------------------------

func TestGetOrCreateSkillMatchesExactly(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	first, err := r.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Coloring"})
	require.NoError(t, err)

	again, err := r.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Coloring"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	spaced, err := r.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Coloring "})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, spaced.ID)

	var count int64
	require.NoError(t, r.db.Model(&models.Skill{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetOrCreateBranchTreatsAbsentTimesAsNull(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	bare, err := r.GetOrCreateBranch(ctx, salon.BranchFields{Name: "Downtown", Address: "Main St 1"})
	require.NoError(t, err)
	assert.Nil(t, bare.StartTime)

	timed, err := r.GetOrCreateBranch(ctx, salon.BranchFields{
		Name:      "Downtown",
		Address:   "Main St 1",
		StartTime: strPtr("08:00"),
		EndTime:   strPtr("18:00:00"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, bare.ID, timed.ID)
	require.NotNil(t, timed.StartTime)
	assert.Equal(t, "08:00:00", timed.StartTime.String())

	again, err := r.GetOrCreateBranch(ctx, salon.BranchFields{
		Name:      "Downtown",
		Address:   "Main St 1",
		StartTime: strPtr("08:00:00"),
		EndTime:   strPtr("18:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, timed.ID, again.ID)

	bareAgain, err := r.GetOrCreateBranch(ctx, salon.BranchFields{Name: "Downtown", Address: "Main St 1"})
	require.NoError(t, err)
	assert.Equal(t, bare.ID, bareAgain.ID)
}

func TestGetOrCreateMoneyAndDates(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	svc, err := r.GetOrCreateService(ctx, salon.ServiceFields{Name: "Cut", Price: price("100.00")})
	require.NoError(t, err)
	same, err := r.GetOrCreateService(ctx, salon.ServiceFields{Name: "Cut", Price: price("100")})
	require.NoError(t, err)
	assert.Equal(t, svc.ID, same.ID)

	other, err := r.GetOrCreateService(ctx, salon.ServiceFields{Name: "Cut", Price: price("120.50")})
	require.NoError(t, err)
	assert.NotEqual(t, svc.ID, other.ID)

	client := salon.ClientFields{
		Name: "Ana", LastName: "Silva", Phone: "555-0101",
		Email: "ana@example.com", Birthday: "1990-05-17", Comments: "",
	}
	c1, err := r.GetOrCreateClient(ctx, client)
	require.NoError(t, err)
	c2, err := r.GetOrCreateClient(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID)

	client.Birthday = "1990-05-18"
	c3, err := r.GetOrCreateClient(ctx, client)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c3.ID)
}

func TestGetOrCreateRejectsBadClock(t *testing.T) {
	_, err := newRepo(t).GetOrCreateBranch(context.Background(), salon.BranchFields{
		Name:      "Downtown",
		StartTime: strPtr("8am"),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTime))
}

// Child tables carry no uniqueness constraint: rows with equal values can
// coexist (two racing get-or-create calls) and lookups settle on the
// lowest id.
func TestDuplicateChildRowsAreAccepted(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	dupes := []models.Payment{
		{FormatCode: "CASH", Description: "Cash"},
		{FormatCode: "CASH", Description: "Cash"},
	}
	require.NoError(t, r.db.Create(&dupes).Error)

	got, err := r.GetOrCreatePayment(ctx, salon.PaymentFields{FormatCode: "CASH", Description: "Cash"})
	require.NoError(t, err)
	assert.Equal(t, dupes[0].ID, got.ID)

	var count int64
	require.NoError(t, r.db.Model(&models.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

// --------------------------------------------------
// Technicians
// --------------------------------------------------

func TestMembershipsAreIdempotentAndClearable(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	tech := seedTechnician(t, r, "tech@example.com")

	cut, err := r.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Cut"})
	require.NoError(t, err)
	color, err := r.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Coloring"})
	require.NoError(t, err)
	branch, err := r.GetOrCreateBranch(ctx, salon.BranchFields{Name: "North"})
	require.NoError(t, err)

	require.NoError(t, r.AttachSkill(ctx, tech.ID, cut.ID))
	require.NoError(t, r.AttachSkill(ctx, tech.ID, cut.ID))
	require.NoError(t, r.AttachSkill(ctx, tech.ID, color.ID))
	require.NoError(t, r.AttachBranch(ctx, tech.ID, branch.ID))

	got, err := r.GetTechnician(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, "tech@example.com", got.Account.Email)
	require.Len(t, got.Skills, 2)
	assert.Equal(t, "Cut", got.Skills[0].Name)
	assert.Equal(t, "Coloring", got.Skills[1].Name)
	require.Len(t, got.Branches, 1)

	require.NoError(t, r.ClearSkills(ctx, tech.ID))
	require.NoError(t, r.ClearBranches(ctx, tech.ID))

	got, err = r.GetTechnician(ctx, tech.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Branches)

	var skills int64
	require.NoError(t, r.db.Model(&models.Skill{}).Count(&skills).Error)
	assert.Equal(t, int64(2), skills)
}

func TestListTechniciansLoadsMembershipsPerTechnician(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	a := seedTechnician(t, r, "a@example.com")
	b := seedTechnician(t, r, "b@example.com")

	skill, err := r.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Nails"})
	require.NoError(t, err)
	require.NoError(t, r.AttachSkill(ctx, b.ID, skill.ID))

	techs, err := r.ListTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, techs, 2)
	assert.Equal(t, a.ID, techs[0].ID)
	assert.Empty(t, techs[0].Skills)
	require.Len(t, techs[1].Skills, 1)
	assert.Equal(t, "Nails", techs[1].Skills[0].Name)
}

func TestMissingRowsWrapNotFound(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, err := r.GetTechnician(ctx, 99)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	_, err = r.FindAccountByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	_, err = r.GetAppointment(ctx, 99)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	assert.ErrorIs(t, r.DeleteAppointment(ctx, 99), httperr.ErrNotFound)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func seedAppointment(t *testing.T, r *SalonGormRepository) *models.Appointment {
	t.Helper()
	ctx := context.Background()

	tech := seedTechnician(t, r, "stylist@example.com")
	branch, err := r.GetOrCreateBranch(ctx, salon.BranchFields{Name: "Center"})
	require.NoError(t, err)
	client, err := r.GetOrCreateClient(ctx, salon.ClientFields{
		Name: "Bea", LastName: "Lima", Phone: "1", Email: "bea@example.com",
		Birthday: "1985-01-02", Comments: "vip",
	})
	require.NoError(t, err)
	svc, err := r.GetOrCreateService(ctx, salon.ServiceFields{Name: "Cut", Price: price("50")})
	require.NoError(t, err)

	date, err := salon.ParseDate("2021-01-01")
	require.NoError(t, err)
	clock, err := salon.ParseClock("10:00")
	require.NoError(t, err)

	ap := &models.Appointment{
		Date:         date,
		Time:         clock,
		BranchID:     branch.ID,
		ClientID:     client.ID,
		ServiceID:    svc.ID,
		TechnicianID: tech.ID,
		Tip:          decimal.RequireFromString("5.25"),
	}
	require.NoError(t, r.CreateAppointment(ctx, ap))
	return ap
}

func TestAppointmentRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	ap := seedAppointment(t, r)

	got, err := r.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Center", got.Branch.Name)
	assert.Equal(t, "Bea", got.Client.Name)
	assert.Equal(t, "Cut", got.Service.Name)
	assert.Equal(t, "stylist@example.com", got.Technician.Account.Email)
	assert.NotNil(t, got.Technician.Skills)
	assert.Nil(t, got.Payment)
	assert.Nil(t, got.Discount)
	assert.False(t, got.Warranty)
	assert.Equal(t, "5.25", got.Tip.StringFixed(2))
	assert.True(t, got.Commission.IsZero())
	assert.Equal(t, "2021-01-01", salon.FormatDate(got.Date))
	assert.Equal(t, "10:00:00", got.Time.String())
}

func TestDeletingBranchCascadesToAppointments(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	ap := seedAppointment(t, r)

	require.NoError(t, r.db.Delete(&models.Branch{}, ap.BranchID).Error)

	_, err := r.GetAppointment(ctx, ap.ID)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestDeletingAccountCascadesToTechnician(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	ap := seedAppointment(t, r)

	tech, err := r.GetTechnician(ctx, ap.TechnicianID)
	require.NoError(t, err)
	require.NoError(t, r.db.Delete(&models.Account{}, tech.AccountID).Error)

	_, err = r.GetTechnician(ctx, tech.ID)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
	_, err = r.GetAppointment(ctx, ap.ID)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

// --------------------------------------------------
// Transactions & audit
// --------------------------------------------------

func TestTransactionRollsBackEveryWrite(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	err := r.Transaction(ctx, func(tx salon.Repository) error {
		if _, err := tx.GetOrCreateSkill(ctx, salon.SkillFields{Name: "Braids"}); err != nil {
			return err
		}
		if err := tx.Audit(ctx, audit.Event{Action: "skill_created", Entity: "skill"}); err != nil {
			return err
		}
		return httperr.ErrBusiness(httperr.CodeTechnicianExists)
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTechnicianExists))

	var skills, logs int64
	require.NoError(t, r.db.Model(&models.Skill{}).Count(&skills).Error)
	require.NoError(t, r.db.Model(&models.AuditLog{}).Count(&logs).Error)
	assert.Zero(t, skills)
	assert.Zero(t, logs)
}

func TestAuditStoresMetadataAsJSON(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	id := uint(4)
	require.NoError(t, r.Audit(ctx, audit.Event{
		AccountID: &id,
		Action:    "technician_created",
		Entity:    "technician",
		EntityID:  &id,
		Metadata:  map[string]any{"skills": 2},
	}))

	var log models.AuditLog
	require.NoError(t, r.db.First(&log).Error)
	assert.Equal(t, "technician_created", log.Action)
	assert.JSONEq(t, `{"skills":2}`, log.Metadata)
}
