package inventory

import "fmt"

// StockSize is the number of catalog entries offered each time a shop opens.
const StockSize = 6

// Asking prices by category. Price depends on category alone.
const (
	// PriceGear is the price of weapons and armor.
	PriceGear = 60
	// PriceConsumable is the price of consumables and of any category the
	// catalog invented.
	PriceConsumable = 30
	// PriceQuest is the price of quest items.
	PriceQuest = 15
)

// Picker is the randomness provider for stock sampling.
type Picker interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// PriceFor returns the asking price for an item.
//
// Postcondition: weapon/armor cost PriceGear, quest items PriceQuest, and
// everything else PriceConsumable.
func PriceFor(d *ItemDef) int {
	switch d.Category {
	case CategoryWeapon, CategoryArmor:
		return PriceGear
	case CategoryQuest:
		return PriceQuest
	default:
		return PriceConsumable
	}
}

// Shop holds the stock offered for one browsing session. Stock is drawn
// fresh each time a shop opens; buying removes the entry from the stock but
// never from the underlying catalog.
type Shop struct {
	stock []string
}

// NewShop draws up to StockSize distinct item ids from reg without
// replacement.
//
// Precondition: pick must be non-nil.
// Postcondition: len(Stock()) == min(StockSize, reg.Len()); entries are
// distinct catalog ids.
func NewShop(reg *Registry, pick Picker) *Shop {
	defs := reg.All()
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	n := StockSize
	if n > len(ids) {
		n = len(ids)
	}
	for i := 0; i < n; i++ {
		j := i + pick.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return &Shop{stock: ids[:n]}
}

// Stock returns a snapshot copy of the item ids currently offered.
//
// Postcondition: mutations of the returned slice do not affect the shop.
func (s *Shop) Stock() []string {
	out := make([]string, len(s.stock))
	copy(out, s.stock)
	return out
}

// Len returns the number of entries currently offered.
func (s *Shop) Len() int {
	return len(s.stock)
}

// Purchase buys the stock entry at index i for buyer: the price is debited,
// the item id is appended to the buyer's inventory (duplicates allowed), and
// the entry leaves the stock.
//
// Precondition: 0 <= i < Len(); the entry's id is registered in reg.
// Postcondition: on any error, buyer and stock are unchanged.
func (s *Shop) Purchase(i int, buyer *State, reg *Registry) (*ItemDef, error) {
	if i < 0 || i >= len(s.stock) {
		return nil, fmt.Errorf("inventory: Shop.Purchase: stock index %d out of range [0, %d)", i, len(s.stock))
	}
	def, ok := reg.Item(s.stock[i])
	if !ok {
		return nil, fmt.Errorf("inventory: Shop.Purchase: unknown item %q", s.stock[i])
	}
	if err := buyer.SpendGold(PriceFor(def)); err != nil {
		return nil, err
	}
	buyer.Append(def.ID)
	s.stock = append(s.stock[:i], s.stock[i+1:]...)
	return def, nil
}
