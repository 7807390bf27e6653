package sim

import "fmt"

const (
	// MessageTTL is how long one feed line stays visible, in seconds.
	MessageTTL = 4.0
	// maxMessages bounds the feed; the oldest line drops first.
	maxMessages = 8
)

// Message is one transient feed line.
type Message struct {
	Text      string
	Remaining float64
}

// MessageFeed is the rolling set of user-facing lines the UI band
// shows. Lines age out on their own; nothing here persists.
type MessageFeed struct {
	entries []Message
}

// NewMessageFeed returns an empty feed.
func NewMessageFeed() *MessageFeed {
	return &MessageFeed{}
}

// Post appends a line with a fresh TTL, evicting the oldest line when
// the feed is full.
func (f *MessageFeed) Post(text string) {
	if len(f.entries) >= maxMessages {
		f.entries = f.entries[1:]
	}
	f.entries = append(f.entries, Message{Text: text, Remaining: MessageTTL})
}

// Postf formats and posts a line.
func (f *MessageFeed) Postf(format string, args ...interface{}) {
	f.Post(fmt.Sprintf(format, args...))
}

// Tick ages every line by dt and drops the expired ones.
func (f *MessageFeed) Tick(dt float64) {
	kept := f.entries[:0]
	for _, m := range f.entries {
		m.Remaining -= dt
		if m.Remaining > 0 {
			kept = append(kept, m)
		}
	}
	f.entries = kept
}

// Lines returns the visible texts, oldest first.
func (f *MessageFeed) Lines() []string {
	out := make([]string, 0, len(f.entries))
	for _, m := range f.entries {
		out = append(out, m.Text)
	}
	return out
}

// Len returns the number of visible lines.
func (f *MessageFeed) Len() int {
	return len(f.entries)
}
