package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/dto"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/httpresp"
	"github.com/BruksfildServices01/salon-backend/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo   salon.Repository
	create *ucAppointment.Create
	update *ucAppointment.Update
}

func NewAppointmentHandler(repo salon.Repository) *AppointmentHandler {
	return &AppointmentHandler{
		repo:   repo,
		create: ucAppointment.NewCreate(repo),
		update: ucAppointment.NewUpdate(repo),
	}
}

func (h *AppointmentHandler) Register(g *gin.RouterGroup) {
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id/", h.Get)
	g.PUT("/:id/", h.Update)
	g.PATCH("/:id/", h.Patch)
	g.DELETE("/:id/", h.Delete)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.repo.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, apps, dto.Appointment)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Appointment(ap))
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Invalid(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.AccountID(c), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.Appointment(ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Invalid(c, err)
		return
	}

	h.apply(c, id, in.Patch())
}

func (h *AppointmentHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var p domain.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		httperr.Invalid(c, err)
		return
	}

	h.apply(c, id, p)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AppointmentHandler) apply(c *gin.Context, id uint, p domain.Patch) {
	ap, err := h.update.Execute(c.Request.Context(), middleware.AccountID(c), id, p)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Appointment(ap))
}
