package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/cloudarch/pkg/dag"
)

type graph struct {
	Name  string `json:"name,omitempty"`
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID      string `json:"id"`
	Label   string `json:"label,omitempty"`
	Service string `json:"service,omitempty"`
}

type edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color,omitempty"`
	Style string `json:"style,omitempty"`
}

// WriteJSON encodes a diagram graph as JSON and writes it to w.
func WriteJSON(g *dag.DAG, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graph{
		Name:  g.Name(),
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = node{ID: n.ID, Label: n.Label, Service: n.Service}
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To, Color: e.Color, Style: string(e.Style)}
	}

	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
