package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/dto"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/httpresp"
	"github.com/BruksfildServices01/salon-backend/internal/middleware"
	ucTechnician "github.com/BruksfildServices01/salon-backend/internal/usecase/technician"
)

// ======================================================
// HANDLER
// ======================================================

type TechnicianHandler struct {
	repo   salon.Repository
	create *ucTechnician.Create
	update *ucTechnician.Update
}

func NewTechnicianHandler(repo salon.Repository) *TechnicianHandler {
	return &TechnicianHandler{
		repo:   repo,
		create: ucTechnician.NewCreate(repo),
		update: ucTechnician.NewUpdate(repo),
	}
}

func (h *TechnicianHandler) Register(g *gin.RouterGroup) {
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

func (h *TechnicianHandler) List(c *gin.Context) {
	techs, err := h.repo.ListTechnicians(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, techs, dto.Technician)
}

func (h *TechnicianHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tech, err := h.repo.GetTechnician(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Technician(tech))
}

// ======================================================
// WRITE
// ======================================================

func (h *TechnicianHandler) Create(c *gin.Context) {
	var in salon.TechnicianInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Invalid(c, err)
		return
	}

	tech, err := h.create.Execute(c.Request.Context(), middleware.AccountID(c), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.Technician(tech))
}

// Update is the full form: account is required and the skill and branch
// lists replace the current ones when sent.
func (h *TechnicianHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in salon.TechnicianInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Invalid(c, err)
		return
	}

	h.apply(c, id, in.Patch())
}

func (h *TechnicianHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var p salon.TechnicianPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		httperr.Invalid(c, err)
		return
	}

	h.apply(c, id, p)
}

func (h *TechnicianHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteTechnician(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *TechnicianHandler) apply(c *gin.Context, id uint, p salon.TechnicianPatch) {
	tech, err := h.update.Execute(c.Request.Context(), middleware.AccountID(c), id, p)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Technician(tech))
}
