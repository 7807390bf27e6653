package effect

import "strings"

// ConsumableKind is the outcome of classifying a consumable item by name.
type ConsumableKind int

const (
	// KindBuff applies a timed status effect of a catalog-chosen type.
	KindBuff ConsumableKind = iota
	// KindHeal restores a fixed amount of health immediately.
	KindHeal
)

// healingTerms are the name fragments that mark a consumable as restorative.
// Matching is case-insensitive substring matching on the display name.
var healingTerms = []string{
	"heal",
	"potion",
	"elixir",
	"tonic",
	"salve",
	"remedy",
	"bandage",
}

// Classify maps a consumable item's display name to its effect kind.
// Healing-themed names heal; everything else grants a timed buff.
//
// Postcondition: the result depends only on name.
func Classify(name string) ConsumableKind {
	lower := strings.ToLower(name)
	for _, term := range healingTerms {
		if strings.Contains(lower, term) {
			return KindHeal
		}
	}
	return KindBuff
}
