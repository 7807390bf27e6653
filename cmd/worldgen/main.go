// Package main provides the content generator: the external process
// that produces the JSON descriptors the simulation consumes. Each
// descriptor kind is requested from the Anthropic API against a fixed
// schema and written into a content directory; -stub writes a built-in
// sample world instead, without calling the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

const systemPrompt = `You generate content descriptors for a small 2D
world-interaction game. Respond with a single JSON document and nothing
else: no prose, no markdown fences. Follow the requested schema
exactly. Use lowercase snake_case ids with the given prefixes, and keep
all ids consistent across your answers in this conversation.`

// kinds lists every descriptor in generation order. Later prompts refer
// to ids introduced by earlier ones, so order matters.
var kinds = []struct {
	file   string
	prompt string
}{
	{"world.json", `Generate the world descriptor. Schema:
{"zones":[{"id":"z_...","name":"..."}],"npcs":[{"id":"npc_...","kind":"villager|merchant|guard","home_zone":<zone index>}]}
Produce 3 zones and 5 npcs, at least one merchant.`},
	{"items.json", `Generate the item catalog. Schema:
[{"item_id":"item_...","name":"...","category":"consumable|weapon|armor|quest"}]
Produce 10 items across all four categories, at least one
healing-themed consumable and two quest items.`},
	{"dialogues.json", `Generate one dialogue per npc from world.json. Schema:
[{"id":"<npc id>","nodes":[{"node_id":"...","speaker":"npc|player","text":"...","grants_item_ids":[],"options":[{"choice_text":"...","to_id":"...","grants_item_ids":[],"tags":[]}]}]}]
Each dialogue has 2-4 nodes. At least one option somewhere grants a
quest item from items.json. An option without to_id ends the talk.`},
	{"quests.json", `Generate the quests. Schema:
[{"id":"q_...","title":"...","is_main":true|false,"steps":[{"goal":"...","location_hint":"<zone name>","requires_item_ids":["<item id>"]}]}]
Produce one main quest with 3 steps and one side quest with 1 step,
requiring quest items from items.json.`},
	{"abilities.json", `Generate the abilities. Schema:
[{"id":"ab_...","name":"...","description":"..."}]
Produce 3 abilities.`},
	{"effects.json", `Generate the status effect catalog. Schema:
[{"id":"fx_...","name":"...","effect":"speed|<skill name>"}]
Produce 4 effects, at least one with effect "speed".`},
}

func main() {
	outputDir := flag.String("output", "content", "path to output content directory")
	model := flag.String("model", "claude-sonnet-4-5", "model to generate with")
	stub := flag.Bool("stub", false, "write the built-in sample world instead of calling the API")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: creating %s: %v\n", *outputDir, err)
		os.Exit(1)
	}

	start := time.Now()
	var err error
	if *stub {
		err = writeStub(*outputDir)
	} else {
		err = generate(context.Background(), *outputDir, *model)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("content written to %s in %s\n", *outputDir, time.Since(start).Round(time.Millisecond))
}

// generate asks the model for each descriptor in turn, carrying the
// conversation forward so later descriptors can reference earlier ids.
func generate(ctx context.Context, dir, model string) error {
	client := anthropic.NewClient()

	var turns []anthropic.MessageParam
	for _, k := range kinds {
		turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(k.prompt)))

		msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(model),
			MaxTokens: 4096,
			System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
			Messages:  turns,
		})
		if err != nil {
			return fmt.Errorf("generating %s: %w", k.file, err)
		}

		var sb strings.Builder
		for _, block := range msg.Content {
			sb.WriteString(block.Text)
		}
		raw := stripFences(sb.String())

		pretty, err := reindent(raw)
		if err != nil {
			return fmt.Errorf("generating %s: response is not valid JSON: %w", k.file, err)
		}
		if err := writeFile(dir, k.file, pretty); err != nil {
			return err
		}
		fmt.Printf("generated %s\n", k.file)

		turns = append(turns, msg.ToParam())
	}
	return nil
}

// stripFences removes a markdown code fence if the model added one
// despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// reindent validates raw as JSON and normalizes its formatting.
func reindent(raw string) ([]byte, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
