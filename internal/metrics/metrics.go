// Package metrics exposes the miner's prometheus collectors.
package metrics

import (
	"context"
	"errors"
)

const namespace = "popminer"

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

func orUnknown(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
