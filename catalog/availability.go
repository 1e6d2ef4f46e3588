package catalog

import "github.com/Migueeel08/focoshop-sub000/models"

// Lifecycle statuses treated as "active" besides the empty string.
var activeStatuses = map[string]struct{}{
	"activo":     {},
	"active":     {},
	"disponible": {},
	"publicado":  {},
}

// IsAvailable derives purchasability: the explicit flag must be set, stock must
// be positive and the lifecycle status must be empty or an active synonym.
func IsAvailable(p models.Product) bool {
	if !p.Available || p.Stock <= 0 {
		return false
	}
	status := Normalize(p.Status)
	if status == "" {
		return true
	}
	_, ok := activeStatuses[status]
	return ok
}
