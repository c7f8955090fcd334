package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// Pagination bounds for list endpoints.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Page is a validated offset/limit window.
type Page struct {
	Offset int
	Limit  int
}

var (
	errInvalidOffset = apperrors.NewDetailed(
		apperrors.ErrInvalidInput,
		"invalid offset parameter: must be a non-negative integer",
	)
	errInvalidLimit = apperrors.NewDetailedf(
		apperrors.ErrInvalidInput,
		"invalid limit parameter: must be between 1 and %d",
		MaxLimit,
	)
)

// ParsePage reads the offset and limit query parameters. Missing values default
// to 0 and DefaultLimit. Malformed or out of range values are ErrInvalidInput
// carrying a client-facing message.
func ParsePage(c *gin.Context) (Page, error) {
	page := Page{Offset: 0, Limit: DefaultLimit}

	if raw, ok := c.GetQuery("offset"); ok {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Page{}, errInvalidOffset
		}
		page.Offset = offset
	}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			return Page{}, errInvalidLimit
		}
		page.Limit = limit
	}

	return page, nil
}
