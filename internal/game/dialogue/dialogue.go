// Package dialogue provides branching conversation graphs and the session
// state for traversing them.
package dialogue

import "fmt"

// SpeakerPlayer is the speaker identity assumed when a node names none.
const SpeakerPlayer = "player"

// Option is one selectable reply on a node.
type Option struct {
	// Text is the choice line shown to the player.
	Text string
	// TargetID is the node the conversation jumps to when chosen. An empty
	// TargetID ends the conversation.
	TargetID string
	// Grants lists item ids awarded when the option is chosen.
	Grants []string
	// Tags carries free-form markers from the content pipeline.
	Tags []string
}

// Node is one utterance in a conversation graph.
type Node struct {
	// ID uniquely identifies this node within its graph.
	ID string
	// Speaker is the identity delivering the line.
	Speaker string
	// Text is the spoken line.
	Text string
	// Grants lists item ids awarded when the node is reached.
	Grants []string
	// Options lists the selectable replies. A node with none presents only
	// its line and a way to close the conversation.
	Options []Option
}

// Graph is one NPC's conversation tree. Node order is meaningful: a session
// always opens at the first node.
type Graph struct {
	// ID names the NPC this conversation belongs to.
	ID    string
	nodes []Node
	index map[string]*Node
}

// NewGraph builds a Graph from nodes, validating and indexing them.
// Option targets are not resolved here: a target that never resolves simply
// ends the conversation at runtime, since generated content routinely points
// at nodes it forgot to write.
//
// Postcondition: returns an error iff id is empty or two nodes share an ID.
func NewGraph(id string, nodes []Node) (*Graph, error) {
	if id == "" {
		return nil, fmt.Errorf("dialogue: graph ID must not be empty")
	}
	g := &Graph{
		ID:    id,
		nodes: nodes,
		index: make(map[string]*Node, len(nodes)),
	}
	for i := range nodes {
		n := &g.nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("dialogue: graph %q: node %d has empty ID", id, i)
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("dialogue: graph %q: duplicate node ID %q", id, n.ID)
		}
		g.index[n.ID] = n
	}
	return g, nil
}

// Node returns the node with the given id and whether it exists.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// First returns the graph's opening node, or nil when the graph is empty.
func (g *Graph) First() *Node {
	if len(g.nodes) == 0 {
		return nil
	}
	return &g.nodes[0]
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}
