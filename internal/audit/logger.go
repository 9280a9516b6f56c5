package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// Event describes one write worth keeping in the audit trail.
type Event struct {
	AccountID *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Logger persists events with the handle it was built from, so a logger
// created from a transaction commits or rolls back together with it.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		AccountID: ev.AccountID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&log).Error
}
