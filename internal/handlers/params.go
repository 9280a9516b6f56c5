package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
)

// pathID reads the :id parameter. Anything that is not a positive integer
// cannot name a row, so it answers 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Resource not found.")
		return 0, false
	}
	return uint(id), true
}
