package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/httpresp"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// AuditLogQuery is the query string of the audit listing. From and To are
// inclusive days.
type AuditLogQuery struct {
	Action string `form:"action" json:"action"`
	Entity string `form:"entity" json:"entity"`
	From   string `form:"from" json:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" json:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit"`
}

type AuditLogsPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var q AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.Invalid(c, err)
		return
	}
	q.normalize()

	base := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Scopes(q.filters).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		httperr.FromError(c, fmt.Errorf("count audit logs: %w", err))
		return
	}

	logs := []models.AuditLog{}
	if err := base.
		Scopes(q.page).
		Find(&logs).Error; err != nil {
		httperr.FromError(c, fmt.Errorf("list audit logs: %w", err))
		return
	}

	httpresp.OK(c, AuditLogsPage{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Logs:  logs,
	})
}

// ======================================================
// QUERY
// ======================================================

// normalize falls back to the first page and the default size for
// missing or out-of-range values.
func (q *AuditLogQuery) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxAuditLimit {
		q.Limit = defaultAuditLimit
	}
}

func (q AuditLogQuery) filters(db *gorm.DB) *gorm.DB {
	if q.Action != "" {
		db = db.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		db = db.Where("entity = ?", q.Entity)
	}
	// Both days were validated by the binding rules.
	if from, err := time.Parse(time.DateOnly, q.From); err == nil {
		db = db.Where("created_at >= ?", from)
	}
	if to, err := time.Parse(time.DateOnly, q.To); err == nil {
		db = db.Where("created_at < ?", to.AddDate(0, 0, 1))
	}
	return db
}

// page orders newest first.
func (q AuditLogQuery) page(db *gorm.DB) *gorm.DB {
	return db.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit)
}
