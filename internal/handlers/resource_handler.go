package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/httpresp"
)

// Fields is the writable field set of a single-table resource.
type Fields[M any] interface {
	Apply(m *M) error
}

// ======================================================
// HANDLER
// ======================================================

// ResourceHandler serves list/retrieve/create/update/patch/delete for a
// table without nested writes. M is the gorm model, F its field set and R
// the response representation.
type ResourceHandler[M any, F Fields[M], R any] struct {
	db       *gorm.DB
	entity   string
	fieldsOf func(*M) F
	render   func(*M) R
}

func NewResourceHandler[M any, F Fields[M], R any](
	db *gorm.DB,
	entity string,
	fieldsOf func(*M) F,
	render func(*M) R,
) *ResourceHandler[M, F, R] {
	return &ResourceHandler[M, F, R]{
		db:       db,
		entity:   entity,
		fieldsOf: fieldsOf,
		render:   render,
	}
}

// Register mounts the resource on g: "/" for the collection and "/:id/"
// for one row.
func (h *ResourceHandler[M, F, R]) Register(g *gin.RouterGroup) {
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

func (h *ResourceHandler[M, F, R]) List(c *gin.Context) {
	var items []M
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&items).Error; err != nil {
		httperr.FromError(c, fmt.Errorf("list %s: %w", h.entity, err))
		return
	}

	httpresp.List(c, items, h.render)
}

func (h *ResourceHandler[M, F, R]) Get(c *gin.Context) {
	row, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, h.render(row))
}

// ======================================================
// WRITE
// ======================================================

func (h *ResourceHandler[M, F, R]) Create(c *gin.Context) {
	var f F
	if err := c.ShouldBindJSON(&f); err != nil {
		httperr.Invalid(c, err)
		return
	}

	var row M
	if err := f.Apply(&row); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		httperr.FromError(c, fmt.Errorf("create %s: %w", h.entity, err))
		return
	}

	httpresp.Created(c, h.render(&row))
}

// Update replaces every field; the body must be complete.
func (h *ResourceHandler[M, F, R]) Update(c *gin.Context) {
	row, ok := h.load(c)
	if !ok {
		return
	}

	var f F
	if err := c.ShouldBindJSON(&f); err != nil {
		httperr.Invalid(c, err)
		return
	}

	h.save(c, row, f)
}

// Patch overlays the body on the stored fields, so omitted fields keep
// their value, then validates the result.
func (h *ResourceHandler[M, F, R]) Patch(c *gin.Context) {
	row, ok := h.load(c)
	if !ok {
		return
	}

	f := h.fieldsOf(row)
	if err := c.ShouldBindJSON(&f); err != nil {
		httperr.Invalid(c, err)
		return
	}

	h.save(c, row, f)
}

func (h *ResourceHandler[M, F, R]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(new(M), id)
	if res.Error != nil {
		httperr.FromError(c, fmt.Errorf("delete %s: %w", h.entity, res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Resource not found.")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func (h *ResourceHandler[M, F, R]) load(c *gin.Context) (*M, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}

	row := new(M)
	if err := h.db.WithContext(c.Request.Context()).First(row, id).Error; err != nil {
		httperr.FromError(c, err)
		return nil, false
	}
	return row, true
}

func (h *ResourceHandler[M, F, R]) save(c *gin.Context, row *M, f F) {
	if err := f.Apply(row); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(row).Error; err != nil {
		httperr.FromError(c, fmt.Errorf("update %s: %w", h.entity, err))
		return
	}

	httpresp.OK(c, h.render(row))
}
