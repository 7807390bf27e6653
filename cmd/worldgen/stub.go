package main

// The stub world: a small, hand-checked sample that exercises every
// subsystem. -stub writes these verbatim; the repo's content/ directory
// is a copy of this output.

var stubFiles = map[string]string{
	"world.json": `{
  "zones": [
    {"id": "z_mill", "name": "Mill Flats"},
    {"id": "z_market", "name": "Market Row"},
    {"id": "z_chapel", "name": "Chapel Rise"}
  ],
  "npcs": [
    {"id": "npc_elder", "kind": "villager", "home_zone": 0},
    {"id": "npc_trader", "kind": "merchant", "home_zone": 1},
    {"id": "npc_sexton", "kind": "villager", "home_zone": 2},
    {"id": "npc_guard", "kind": "guard", "home_zone": 0},
    {"id": "npc_weaver", "kind": "villager", "home_zone": 1}
  ]
}`,
	"items.json": `[
  {"item_id": "item_ledger_page", "name": "Torn Ledger Page", "category": "quest"},
  {"item_id": "item_ink_pot", "name": "Ink Pot", "category": "quest"},
  {"item_id": "item_quill", "name": "Goose Quill", "category": "quest"},
  {"item_id": "item_censer", "name": "Brass Censer", "category": "quest"},
  {"item_id": "item_potion", "name": "Minor Healing Potion", "category": "consumable"},
  {"item_id": "item_fox_charm", "name": "Fox Charm", "category": "consumable"},
  {"item_id": "item_iron_sword", "name": "Iron Sword", "category": "weapon"},
  {"item_id": "item_oak_cudgel", "name": "Oak Cudgel", "category": "weapon"},
  {"item_id": "item_leather_coat", "name": "Leather Coat", "category": "armor"},
  {"item_id": "item_waxed_cloak", "name": "Waxed Cloak", "category": "armor"}
]`,
	"dialogues.json": `[
  {
    "id": "npc_elder",
    "nodes": [
      {
        "node_id": "greet",
        "speaker": "npc",
        "text": "The mill ledger is short a page again. I kept what the wind left behind.",
        "grants_item_ids": [],
        "options": [
          {"choice_text": "May I see it?", "to_id": "hand_over", "grants_item_ids": [], "tags": []},
          {"choice_text": "Another time.", "grants_item_ids": [], "tags": []}
        ]
      },
      {
        "node_id": "hand_over",
        "speaker": "npc",
        "text": "Here. Mind the mill dust on your way down.",
        "grants_item_ids": ["item_ledger_page"],
        "options": [
          {"choice_text": "Thank you.", "grants_item_ids": [], "tags": []}
        ]
      }
    ]
  },
  {
    "id": "npc_trader",
    "nodes": [
      {
        "node_id": "greet",
        "speaker": "npc",
        "text": "Buying or selling? Either way, come in out of the wind.",
        "grants_item_ids": [],
        "options": [
          {"choice_text": "Just passing through.", "grants_item_ids": [], "tags": []}
        ]
      }
    ]
  },
  {
    "id": "npc_sexton",
    "nodes": [
      {
        "node_id": "greet",
        "speaker": "npc",
        "text": "The chapel bell rings flat when the dust gets into it.",
        "grants_item_ids": [],
        "options": [
          {"choice_text": "I'll keep an ear out.", "to_id": "nod", "grants_item_ids": [], "tags": []},
          {"choice_text": "Farewell.", "grants_item_ids": [], "tags": []}
        ]
      },
      {
        "node_id": "nod",
        "speaker": "npc",
        "text": "Do. Flat bells bring flat luck.",
        "grants_item_ids": [],
        "options": []
      }
    ]
  },
  {
    "id": "npc_guard",
    "nodes": [
      {
        "node_id": "greet",
        "speaker": "npc",
        "text": "Keep to the paths after dusk. The flats flood without warning.",
        "grants_item_ids": [],
        "options": [
          {"choice_text": "Noted.", "grants_item_ids": [], "tags": []}
        ]
      }
    ]
  },
  {
    "id": "npc_weaver",
    "nodes": [
      {
        "node_id": "greet",
        "speaker": "npc",
        "text": "Half my thread went to the market stalls, the other half to the wind.",
        "grants_item_ids": [],
        "options": [
          {"choice_text": "A hard trade.", "grants_item_ids": [], "tags": []}
        ]
      }
    ]
  }
]`,
	"quests.json": `[
  {
    "id": "q_missing_ledger",
    "title": "The Missing Ledger",
    "is_main": true,
    "steps": [
      {"goal": "Recover the torn ledger page", "location_hint": "Mill Flats", "requires_item_ids": ["item_ledger_page"]},
      {"goal": "Fetch ink for the scribe", "location_hint": "Market Row", "requires_item_ids": ["item_ink_pot"]},
      {"goal": "Bring a fresh quill", "location_hint": "Chapel Rise", "requires_item_ids": ["item_quill"]}
    ]
  },
  {
    "id": "q_chapel_dust",
    "title": "Dust on the Bell",
    "is_main": false,
    "steps": [
      {"goal": "Find the sexton's censer", "location_hint": "Chapel Rise", "requires_item_ids": ["item_censer"]}
    ]
  }
]`,
	"abilities.json": `[
  {"id": "ab_dash", "name": "Dash", "description": "A short burst of speed."},
  {"id": "ab_focus", "name": "Focus", "description": "Steady your hands and your nerve."},
  {"id": "ab_whistle", "name": "Whistle", "description": "A sharp note that carries across a zone."}
]`,
	"effects.json": `[
  {"id": "fx_swift", "name": "Swiftness", "effect": "speed"},
  {"id": "fx_silver_tongue", "name": "Silver Tongue", "effect": "charisma"},
  {"id": "fx_stout", "name": "Stoutness", "effect": "vigor"},
  {"id": "fx_eagle_eye", "name": "Eagle Eye", "effect": "perception"}
]`,
}

// writeStub writes the built-in sample world into dir.
func writeStub(dir string) error {
	for name, body := range stubFiles {
		if err := writeFile(dir, name, []byte(body)); err != nil {
			return err
		}
	}
	return nil
}
