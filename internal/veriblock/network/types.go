package network

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the part of a NATS connection the client uses. Wrap a
	// *nats.Conn with FromNATS.
	Conn interface {
		RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
		Subscribe(subj string, cb nats.MsgHandler) (Subscription, error)
	}
	// Subscription is an active NATS subscription.
	Subscription interface {
		Unsubscribe() error
	}
	// Metrics records gateway request outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
