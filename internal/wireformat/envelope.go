// Package wireformat implements the copy/paste wire envelope (spec.md
// section 6): a versioned JSON document carrying a sequence of doctree
// nodes, with auto-detection when no format tag is supplied.
package wireformat

import (
	"encoding/json"
	"fmt"

	"github.com/inkwell/mathcore/internal/doctree"
)

// FormatTag names a wire encoding. JSONInputTree is the only one defined.
type FormatTag string

const JSONInputTree FormatTag = "json_input_tree"

const envelopeVersion = 1

type envelope struct {
	Version int        `json:"version"`
	Data    []wireNode `json:"data"`
}

// Encode serialises nodes into the versioned JSON envelope.
func Encode(nodes []doctree.Node) ([]byte, error) {
	wn := make([]wireNode, len(nodes))
	for i, n := range nodes {
		wn[i] = toWireNode(n)
	}
	return json.Marshal(envelope{Version: envelopeVersion, Data: wn})
}

// Decode deserialises a wire blob into nodes. hint selects the format;
// the empty string probes the only defined format, JSONInputTree.
func Decode(blob []byte, hint FormatTag) ([]doctree.Node, error) {
	if hint != "" && hint != JSONInputTree {
		return nil, fmt.Errorf("wireformat: unknown format tag %q", hint)
	}
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("wireformat: malformed envelope: %w", err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("wireformat: unsupported version %d", env.Version)
	}
	nodes := make([]doctree.Node, len(env.Data))
	for i, wn := range env.Data {
		n, err := wn.toNode()
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}
