package dialogue

// Set indexes one load's worth of conversation graphs by owning NPC id and
// pre-computes which item ids any conversation can grant. Quest item
// spawning consults the grant index: items a conversation hands out are
// never scattered in the world.
type Set struct {
	graphs    map[string]*Graph
	grantable map[string]bool
}

// NewSet indexes graphs by ID. When two graphs claim the same NPC the first
// one wins; generated content occasionally repeats itself.
func NewSet(graphs []*Graph) *Set {
	s := &Set{
		graphs:    make(map[string]*Graph, len(graphs)),
		grantable: make(map[string]bool),
	}
	for _, g := range graphs {
		if _, exists := s.graphs[g.ID]; exists {
			continue
		}
		s.graphs[g.ID] = g
		for i := range g.nodes {
			n := &g.nodes[i]
			for _, id := range n.Grants {
				s.grantable[id] = true
			}
			for _, opt := range n.Options {
				for _, id := range opt.Grants {
					s.grantable[id] = true
				}
			}
		}
	}
	return s
}

// ForNPC returns the conversation graph assigned to the NPC id.
//
// Postcondition: ok is false when the NPC has no conversation, which callers
// treat as "nothing to say" rather than an error.
func (s *Set) ForNPC(id string) (*Graph, bool) {
	g, ok := s.graphs[id]
	return g, ok
}

// DialogueGrantable reports whether any conversation can grant the item id.
func (s *Set) DialogueGrantable(itemID string) bool {
	return s.grantable[itemID]
}

// Len returns the number of indexed graphs.
func (s *Set) Len() int {
	return len(s.graphs)
}
