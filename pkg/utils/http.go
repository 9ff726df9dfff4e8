package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
)

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	if err == nil && idUint64 == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(idUint64), err
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	valUint64, err := strconv.ParseUint(valStr, 10, 64)
	return uint(valUint64), err
}

// OptionalQueryUint returns nil when the parameter is absent.
func OptionalQueryUint(c *gin.Context, param string) (*uint, error) {
	v, err := ParseQueryUintParam(c, param)
	if errors.Is(err, ErrEmptyParameter) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParsePage reads page/pageSize query parameters. Malformed values fall back to defaults.
func ParsePage(c *gin.Context) query.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(query.DefaultPageSize)))
	return query.NewPage(page, size)
}
