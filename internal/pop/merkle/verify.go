package merkle

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Trim truncates a root to RootLength bytes.
func Trim(root []byte) []byte {
	if len(root) <= RootLength {
		return root
	}
	return root[:RootLength]
}

// Verify checks that the path resolves to the expected block merkle root.
// The computed root is truncated to RootLength before comparison.
func Verify(path *Path, expected []byte) error {
	if path == nil {
		return fmt.Errorf("%w: path is nil", ErrMalformedPath)
	}
	got := Trim(path.Root())
	if !bytes.Equal(got, expected) {
		return fmt.Errorf("%w: transaction merkle root %s, block of proof merkle root %s",
			ErrRootMismatch, hex.EncodeToString(got), hex.EncodeToString(expected))
	}
	return nil
}
