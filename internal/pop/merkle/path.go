// Package merkle parses VeriBlock merkle paths and verifies them against block merkle roots.
package merkle

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RootLength is the length of a VeriBlock block header merkle root.
const RootLength = 16

var (
	// ErrMalformedPath is returned when a compact merkle path cannot be parsed.
	ErrMalformedPath = errors.New("malformed merkle path")
	// ErrRootMismatch is returned when a path does not resolve to the expected root.
	ErrRootMismatch = errors.New("merkle root mismatch")
)

// Path is a merkle path from a transaction (the subject) to a block merkle root.
// Bit i of Index tells whether the cursor is the right node at layer i.
type Path struct {
	Index   int      `json:"index"`
	Subject []byte   `json:"subject"`
	Layers  [][]byte `json:"layers"`
}

// ParseCompact parses the "index:subject:layer:layer..." wire form.
func ParseCompact(s string) (*Path, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected at least index and subject, got %d parts", ErrMalformedPath, len(parts))
	}
	index, err := strconv.Atoi(parts[0])
	if err != nil || index < 0 {
		return nil, fmt.Errorf("%w: bad index %q", ErrMalformedPath, parts[0])
	}
	subject, err := decodeHash(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrMalformedPath, err)
	}
	layers := make([][]byte, 0, len(parts)-2)
	for i, part := range parts[2:] {
		layer, err := decodeHash(part)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d: %v", ErrMalformedPath, i, err)
		}
		layers = append(layers, layer)
	}
	return &Path{Index: index, Subject: subject, Layers: layers}, nil
}

// Compact renders the path in its "index:subject:layer..." wire form.
func (p Path) Compact() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.Index))
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(p.Subject))
	for _, layer := range p.Layers {
		b.WriteByte(':')
		b.WriteString(hex.EncodeToString(layer))
	}
	return b.String()
}

func (p Path) String() string {
	return p.Compact()
}

// Root computes the full-length merkle root the path resolves to.
func (p Path) Root() []byte {
	cursor := append([]byte(nil), p.Subject...)
	index := p.Index
	for _, layer := range p.Layers {
		if index&1 == 1 {
			cursor = chainhash.HashB(concat(layer, cursor))
		} else {
			cursor = chainhash.HashB(concat(cursor, layer))
		}
		index >>= 1
	}
	return cursor
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func decodeHash(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != chainhash.HashSize {
		return nil, fmt.Errorf("expected %d bytes, got %d", chainhash.HashSize, len(b))
	}
	return b, nil
}
