// Package network talks to the VeriBlock network through a NATS gateway. The
// gateway owns the wallet and the node connection; the miner sends
// request/reply messages and listens on broadcast subjects.
package network

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
	"github.com/goodnatureofminers/popminer/pkg/broadcast"
)

var (
	// ErrGateway wraps errors reported by the gateway in its reply.
	ErrGateway = errors.New("gateway error")
	// ErrNotFound is returned when the gateway does not know the entity.
	ErrNotFound = errors.New("not found")
	// ErrClosed is returned for subscriptions on a closed client.
	ErrClosed = errors.New("network client closed")
)

// Config tunes the client. Zero values pick the defaults.
type Config struct {
	SubjectPrefix  string
	RequestTimeout time.Duration
	// PublicationsTimeout bounds the wait for keystone publications, which
	// the gateway answers only once they exist.
	PublicationsTimeout time.Duration
	StreamBuffer        int
}

func (c Config) withDefaults() Config {
	if c.SubjectPrefix == "" {
		c.SubjectPrefix = "veriblock"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.PublicationsTimeout <= 0 {
		c.PublicationsTimeout = 30 * time.Minute
	}
	if c.StreamBuffer <= 0 {
		c.StreamBuffer = broadcast.DefaultBuffer
	}
	return c
}

func (c Config) subject(name string) string {
	return c.SubjectPrefix + "." + name
}

// Client implements the miner's view of the VeriBlock network.
type Client struct {
	conn    Conn
	cfg     Config
	metrics Metrics
	logger  *zap.Logger

	best *broadcast.Broadcaster[model.Block]

	mu      sync.Mutex
	bestSub Subscription
	closed  bool
}

// NewClient builds a gateway client over conn. Zero Config fields pick the defaults.
func NewClient(conn Conn, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if conn == nil {
		return nil, errors.New("nats connection is required")
	}
	if metrics == nil {
		return nil, errors.New("network metrics is required")
	}
	cfg = cfg.withDefaults()
	return &Client{
		conn:    conn,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("veriblock"),
		best:    broadcast.New[model.Block](cfg.StreamBuffer),
	}, nil
}

func request[T any](ctx context.Context, c *Client, operation, subject string, timeout time.Duration, req any) (res T, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	data, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("%s: encode request: %w", operation, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, err := c.conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		return res, fmt.Errorf("%s: request %s: %w", operation, subject, err)
	}

	var r reply[T]
	if err = json.Unmarshal(msg.Data, &r); err != nil {
		return res, fmt.Errorf("%s: decode reply: %w", operation, err)
	}
	if r.Error != "" {
		return res, fmt.Errorf("%s: %w: %s", operation, ErrGateway, r.Error)
	}
	return r.Result, nil
}

// SubmitEndorsement has the gateway wallet sign and broadcast a PoP
// transaction carrying payload.
func (c *Client) SubmitEndorsement(ctx context.Context, payload []byte, feePerByte, maxFee int64) (*model.Transaction, error) {
	res, err := request[*transactionMessage](ctx, c, "submit_endorsement", c.cfg.subject("endorsements.submit"), c.cfg.RequestTimeout,
		submitEndorsementRequest{
			Payload:    hex.EncodeToString(payload),
			FeePerByte: feePerByte,
			MaxFee:     maxFee,
		})
	if err != nil {
		return nil, err
	}
	if res == nil || res.ID == "" {
		return nil, fmt.Errorf("submit_endorsement: %w: empty transaction", ErrGateway)
	}
	return res.toModel()
}

// Transaction returns the gateway view of txID, or ErrNotFound.
func (c *Client) Transaction(ctx context.Context, txID string) (*model.Transaction, error) {
	res, err := request[*transactionMessage](ctx, c, "transaction", c.cfg.subject("transactions.get"), c.cfg.RequestTimeout,
		transactionRequest{TxID: txID})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("transaction %s: %w", txID, ErrNotFound)
	}
	return res.toModel()
}

// Block returns the VeriBlock block with hash, or ErrNotFound.
func (c *Client) Block(ctx context.Context, hash string) (*model.Block, error) {
	res, err := request[*blockMessage](ctx, c, "block", c.cfg.subject("blocks.get"), c.cfg.RequestTimeout,
		blockRequest{Hash: hash})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("block %s: %w", hash, ErrNotFound)
	}
	return res.toModel()
}

// Publications asks for the publications of keystoneHash connecting to the
// altchain's known contexts. The gateway replies once they are available.
func (c *Client) Publications(ctx context.Context, operationID, keystoneHash, contextHash, btcContextHash string) ([]model.Publication, error) {
	res, err := request[[]publicationMessage](ctx, c, "publications", c.cfg.subject("publications.get"), c.cfg.PublicationsTimeout,
		publicationsRequest{
			OperationID:    operationID,
			KeystoneHash:   keystoneHash,
			ContextHash:    contextHash,
			BTCContextHash: btcContextHash,
		})
	if err != nil {
		return nil, err
	}
	pubs := make([]model.Publication, 0, len(res))
	for _, m := range res {
		pub, err := m.toModel()
		if err != nil {
			return nil, fmt.Errorf("publications: %w", err)
		}
		pubs = append(pubs, pub)
	}
	return pubs, nil
}

// SubscribeBestBlocks streams new best blocks. All callers share one NATS
// subscription.
func (c *Client) SubscribeBestBlocks(_ context.Context) (<-chan model.Block, func(), error) {
	if err := c.ensureBestSubscription(); err != nil {
		return nil, nil, err
	}
	ch, release := c.best.Subscribe()
	return ch, release, nil
}

func (c *Client) ensureBestSubscription() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.bestSub != nil {
		return nil
	}

	subject := c.cfg.subject("blocks.best")
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		var m blockMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			c.logger.Warn("malformed best block", zap.Error(err))
			return
		}
		block, err := m.toModel()
		if err != nil {
			c.logger.Warn("malformed best block", zap.Error(err))
			return
		}
		if dropped := c.best.Publish(*block); dropped > 0 {
			c.logger.Warn("best block not delivered to slow subscribers",
				zap.String("hash", block.Hash),
				zap.Uint64("height", block.Height),
				zap.Int("dropped", dropped),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.bestSub = sub
	return nil
}

// SubscribeTransactionMeta streams the meta state of txID. The current state is
// always delivered first, followed by every state the gateway announces.
// Announcements received before the current state was fetched are dropped when
// they repeat it.
func (c *Client) SubscribeTransactionMeta(ctx context.Context, txID string) (<-chan model.MetaState, func(), error) {
	pending := make(chan model.MetaState, c.cfg.StreamBuffer)
	subject := c.cfg.subject("transactions.meta." + txID)

	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		var m metaStateMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			c.logger.Warn("malformed meta state", zap.String("txid", txID), zap.Error(err))
			return
		}
		select {
		case pending <- model.MetaState(m.MetaState):
		default:
			c.logger.Warn("meta state dropped", zap.String("txid", txID), zap.String("meta_state", m.MetaState))
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}

	unsubscribe := func() {
		if err := sub.Unsubscribe(); err != nil {
			c.logger.Debug("unsubscribe failed", zap.String("subject", subject), zap.Error(err))
		}
	}

	current, err := c.Transaction(ctx, txID)
	if err != nil {
		unsubscribe()
		return nil, nil, err
	}
	raced := len(pending)

	out := make(chan model.MetaState, c.cfg.StreamBuffer)
	done := make(chan struct{})
	go func() {
		defer close(out)
		send := func(s model.MetaState) bool {
			select {
			case out <- s:
				return true
			case <-done:
				return false
			case <-ctx.Done():
				return false
			}
		}
		if !send(current.MetaState) {
			return
		}
		for {
			select {
			case s := <-pending:
				if raced > 0 {
					raced--
					if s == current.MetaState {
						continue
					}
				}
				if !send(s) {
					return
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	release := func() {
		once.Do(func() {
			close(done)
			unsubscribe()
		})
	}
	return out, release, nil
}

// Close drops the shared best block subscription and ends every best block stream.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.bestSub != nil {
		if err := c.bestSub.Unsubscribe(); err != nil {
			c.logger.Debug("unsubscribe best blocks failed", zap.Error(err))
		}
		c.bestSub = nil
	}
	c.best.Close()
}
