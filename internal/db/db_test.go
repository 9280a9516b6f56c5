package db_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backend/internal/db"
	"github.com/BruksfildServices01/salon-backend/internal/db/dbtest"
)

func TestMigrateCreatesEveryTable(t *testing.T) {
	gdb := dbtest.Open(t)

	for _, table := range []string{
		"accounts", "technicians", "technician_skills", "technician_branches",
		"branches", "skills", "services", "payments", "discounts", "promos",
		"clients", "appointments", "audit_logs",
	} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
}

func TestMigrationFilesAreEmbedded(t *testing.T) {
	names, err := fs.Glob(db.MigrationFiles(), "migrations/*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"migrations/000001_init.up.sql",
		"migrations/000001_init.down.sql",
	}, names)
}
