// Package continuity checks that VeriBlock publications form an unbroken chain
// of Bitcoin blocks starting from the altchain's Bitcoin context.
package continuity

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// HeaderSize is the serialized size of a Bitcoin block header.
const HeaderSize = 80

// ErrMalformedHeader is returned for headers that are not HeaderSize bytes long.
var ErrMalformedHeader = errors.New("malformed bitcoin header")

// ExtractBitcoinBlocks returns the Bitcoin headers carried by tx ordered oldest
// first: the context headers followed by the block of proof.
func ExtractBitcoinBlocks(tx model.PopTransaction) ([]wire.BlockHeader, error) {
	raw := make([][]byte, 0, len(tx.BitcoinContext)+1)
	raw = append(raw, tx.BitcoinContext...)
	raw = append(raw, tx.BitcoinBlockOfProof)

	headers := make([]wire.BlockHeader, 0, len(raw))
	for i, b := range raw {
		if len(b) != HeaderSize {
			return nil, fmt.Errorf("%w: header %d of pop transaction %s has %d bytes", ErrMalformedHeader, i, tx.ID, len(b))
		}
		var h wire.BlockHeader
		if err := h.Deserialize(bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("parse header %d of pop transaction %s: %w", i, tx.ID, err)
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// BlockHashes hashes every header.
func BlockHashes(headers []wire.BlockHeader) []chainhash.Hash {
	out := make([]chainhash.Hash, len(headers))
	for i := range headers {
		out[i] = headers[i].BlockHash()
	}
	return out
}

// ConnectsToContext reports whether pub reaches into the altchain Bitcoin
// context: one of its blocks, or the parent of its first block, is known there.
// Context hashes are compared in chainhash byte order.
func ConnectsToContext(btcContext [][]byte, pub model.Publication) (bool, error) {
	headers, err := ExtractBitcoinBlocks(pub.Transaction)
	if err != nil {
		return false, err
	}

	known := make(map[chainhash.Hash]struct{}, len(btcContext))
	for _, b := range btcContext {
		h, err := chainhash.NewHash(b)
		if err != nil {
			continue
		}
		known[*h] = struct{}{}
	}

	if _, ok := known[headers[0].PrevBlock]; ok {
		return true, nil
	}
	for _, h := range BlockHashes(headers) {
		if _, ok := known[h]; ok {
			return true, nil
		}
	}
	return false, nil
}

// Connect reports whether next continues anchor: the first block of next builds
// on one of anchor's blocks or the two share a block.
func Connect(anchor, next model.Publication) (bool, error) {
	anchorHeaders, err := ExtractBitcoinBlocks(anchor.Transaction)
	if err != nil {
		return false, err
	}
	nextHeaders, err := ExtractBitcoinBlocks(next.Transaction)
	if err != nil {
		return false, err
	}

	anchorHashes := make(map[chainhash.Hash]struct{}, len(anchorHeaders))
	for _, h := range BlockHashes(anchorHeaders) {
		anchorHashes[h] = struct{}{}
	}
	if _, ok := anchorHashes[nextHeaders[0].PrevBlock]; ok {
		return true, nil
	}
	for _, h := range BlockHashes(nextHeaders) {
		if _, ok := anchorHashes[h]; ok {
			return true, nil
		}
	}
	return false, nil
}

// FormatHashes renders hashes one per line.
func FormatHashes(hashes []chainhash.Hash) string {
	lines := make([]string, len(hashes))
	for i := range hashes {
		lines[i] = hashes[i].String()
	}
	return strings.Join(lines, "\n")
}
