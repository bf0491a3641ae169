package network

import (
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type natsConn struct {
	*nats.Conn
}

// FromNATS adapts a NATS connection to Conn.
func FromNATS(nc *nats.Conn) Conn {
	return natsConn{Conn: nc}
}

func (c natsConn) Subscribe(subj string, cb nats.MsgHandler) (Subscription, error) {
	return c.Conn.Subscribe(subj, cb)
}

// Connect dials the gateway's NATS server, reconnecting in the background.
func Connect(url string, logger *zap.Logger) (*nats.Conn, error) {
	logger = logger.Named("nats")
	name, err := os.Hostname()
	if err != nil {
		name = "popminer"
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			logger.Error("connection error", zap.String("subject", subject), zap.Error(err))
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("client disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("client reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("client closed")
		}),
		nats.RetryOnFailedConnect(true),
		nats.PingInterval(2 * time.Minute),
		nats.MaxPingsOutstanding(2),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats %s: %w", url, err)
	}
	return nc, nil
}
