// Package content is the ingestion boundary for generated game
// descriptors. Descriptors arrive as JSON documents produced by an
// external pipeline and are treated as untrusted: every parser here
// normalizes missing fields to explicit defaults, clamps out-of-range
// values, and drops entries too broken to use, reporting each repair as
// a warning instead of failing the load.
package content

// The wire structs mirror the descriptor JSON schemas field for field.
// Domain types never carry JSON tags; conversion happens in one place.

type worldFile struct {
	Zones []zoneEntry `json:"zones"`
	NPCs  []npcEntry  `json:"npcs"`
}

type zoneEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type npcEntry struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	HomeZone int    `json:"home_zone"`
}

type dialogueEntry struct {
	ID    string      `json:"id"`
	Nodes []nodeEntry `json:"nodes"`
}

type nodeEntry struct {
	NodeID  string        `json:"node_id"`
	Speaker string        `json:"speaker"`
	Text    string        `json:"text"`
	Grants  []string      `json:"grants_item_ids"`
	Options []optionEntry `json:"options"`
}

type optionEntry struct {
	ChoiceText string   `json:"choice_text"`
	ToID       string   `json:"to_id"`
	Grants     []string `json:"grants_item_ids"`
	Tags       []string `json:"tags"`
}

type questEntry struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	IsMain bool        `json:"is_main"`
	Steps  []stepEntry `json:"steps"`
}

type stepEntry struct {
	Goal     string   `json:"goal"`
	Hint     string   `json:"location_hint"`
	Requires []string `json:"requires_item_ids"`
}

type itemEntry struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type abilityEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type effectEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Effect string `json:"effect"`
}
