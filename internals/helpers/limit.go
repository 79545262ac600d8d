package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResolveLimit membaca ?limit= dan normalisasi.
// - defaultLimit: fallback kalau tidak ada/invalid
// - maxLimit: batas atas (0 = tanpa batas)
func ResolveLimit(c *fiber.Ctx, defaultLimit, maxLimit int) int {
	raw := strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit)))

	limit, _ := strconv.Atoi(raw)
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
