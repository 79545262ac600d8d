package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FarmerID adalah tipe opaque untuk ID petani. Sumber data lama kadang
// menyimpan ID sebagai string, kadang integer — di boundary semuanya
// dinormalisasi ke bentuk string desimal.
type FarmerID string

func (id FarmerID) Valid() bool { return strings.TrimSpace(string(id)) != "" }

func (id FarmerID) String() string { return string(id) }

// UnmarshalJSON menerima "42", 42, maupun UUID string.
func (id *FarmerID) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		*id = ""
		return nil
	}
	s = strings.Trim(s, `"`)
	// angka JSON bisa datang sebagai 42 atau 42.0
	s = strings.TrimSuffix(s, ".0")
	*id = FarmerID(strings.TrimSpace(s))
	return nil
}

// ResolveFarmerID mengambil identitas petani dari (berurutan):
// query/param farmer_id → Locals user_id (diisi middleware) → header X-User-Id.
func ResolveFarmerID(c *fiber.Ctx) FarmerID {
	if v := strings.TrimSpace(c.Query("farmer_id")); v != "" {
		return FarmerID(v)
	}
	if v := strings.TrimSpace(c.Params("farmer_id")); v != "" {
		return FarmerID(v)
	}
	if v, ok := c.Locals("user_id").(string); ok && strings.TrimSpace(v) != "" {
		return FarmerID(strings.TrimSpace(v))
	}
	if v := strings.TrimSpace(c.Get("X-User-Id")); v != "" {
		return FarmerID(v)
	}
	return ""
}
