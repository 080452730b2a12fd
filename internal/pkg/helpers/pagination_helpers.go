package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the page size used when the client sends none
	DefaultLimit = 100
	// MaxLimit is the server-enforced upper bound on page size
	MaxLimit = 100
)

// ParseOffsetLimit extracts and clamps the offset/limit query parameters.
// Invalid or out-of-range values fall back to the defaults instead of
// failing the request.
func ParseOffsetLimit(c *gin.Context) (offset, limit int) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return offset, limit
}
