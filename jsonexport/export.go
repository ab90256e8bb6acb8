package jsonexport

import (
	"encoding/json"
	"fmt"
	"io"

	"sokobauto/stategraph"
)

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID        uint32 `json:"id"`
	OnTargets uint32 `json:"on_targets"`
}

type jsonEdge struct {
	Source uint32 `json:"source"`
	Target uint32 `json:"target"`
}

// Marshal renders snap as a pretty-printed JSON document. Array ordering
// follows the snapshot's (itself unspecified).
func Marshal(snap *stategraph.Snapshot) ([]byte, error) {
	doc := jsonGraph{
		Nodes: make([]jsonNode, 0, len(snap.Nodes)),
		Edges: make([]jsonEdge, 0, len(snap.Edges)),
	}
	for _, n := range snap.Nodes {
		doc.Nodes = append(doc.Nodes, jsonNode{
			ID:        uint32(n.ID),
			OnTargets: uint32(n.OnTargets),
		})
	}
	for _, e := range snap.Edges {
		doc.Edges = append(doc.Edges, jsonEdge{
			Source: uint32(e.From),
			Target: uint32(e.To),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Write marshals snap and writes it to w. I/O failures are surfaced to the
// host.
func Write(w io.Writer, snap *stategraph.Snapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return fmt.Errorf("jsonexport: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("jsonexport: %w", err)
	}
	return nil
}
