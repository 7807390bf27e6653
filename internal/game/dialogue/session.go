package dialogue

import (
	"fmt"

	"github.com/google/uuid"
)

// Session tracks one active conversation. Sessions are transient: closing
// the conversation discards the session, and talking to the NPC again opens
// a fresh one at the graph's first node.
type Session struct {
	// ID uniquely identifies this conversation instance, for log
	// correlation across the frames it spans.
	ID string

	graph   *Graph
	current *Node
	ended   bool
}

// Start opens a session on g positioned at its first node.
//
// Postcondition: granted lists every grant event on the opening node, in
// order, including re-grants of items the player already holds; returns
// (nil, nil) when the graph is empty.
func Start(g *Graph) (*Session, []string) {
	first := g.First()
	if first == nil {
		return nil, nil
	}
	s := &Session{ID: uuid.New().String(), graph: g, current: first}
	return s, append([]string(nil), first.Grants...)
}

// Graph returns the conversation graph this session walks.
func (s *Session) Graph() *Graph {
	return s.graph
}

// Current returns the node the session is positioned on, or nil once the
// conversation has ended.
func (s *Session) Current() *Node {
	if s.ended {
		return nil
	}
	return s.current
}

// Ended reports whether the conversation is over.
func (s *Session) Ended() bool {
	return s.ended
}

// End closes the conversation.
//
// Postcondition: Ended() is true and Current() is nil.
func (s *Session) End() {
	s.ended = true
}

// Choose selects the option at index i on the current node. The option's
// grants fire first, then the session follows the option's target; if the
// target resolves, the target node's grants fire as well. An option without
// a target, or one whose target never resolves, ends the conversation.
//
// Precondition: the session has not ended; 0 <= i < len(Current().Options).
// Postcondition: granted lists every grant event in firing order; ended
// reports whether the conversation is over.
func (s *Session) Choose(i int) (granted []string, ended bool, err error) {
	if s.ended {
		return nil, true, fmt.Errorf("dialogue: session with %q has already ended", s.graph.ID)
	}
	if i < 0 || i >= len(s.current.Options) {
		return nil, false, fmt.Errorf("dialogue: graph %q node %q: option index %d out of range [0, %d)",
			s.graph.ID, s.current.ID, i, len(s.current.Options))
	}

	opt := &s.current.Options[i]
	granted = append(granted, opt.Grants...)

	if opt.TargetID == "" {
		s.ended = true
		return granted, true, nil
	}
	next, ok := s.graph.Node(opt.TargetID)
	if !ok {
		s.ended = true
		return granted, true, nil
	}

	s.current = next
	granted = append(granted, next.Grants...)
	return granted, false, nil
}
