package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/shared/errors"
)

// ParseUintParam parses a positive uint path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// ParseIntQuery parses an integer query parameter with a default.
func ParseIntQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
