package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetIntQuery reads an integer query parameter, returning fallback when it is
// missing or malformed
func GetIntQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// GetTrimmedQuery reads a query parameter with surrounding whitespace removed
func GetTrimmedQuery(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}
