package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List renders items as a bare JSON array, never null.
func List[M any, R any](c *gin.Context, items []M, render func(*M) R) {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, render(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}
