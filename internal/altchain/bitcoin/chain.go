// Package bitcoin implements a security inheriting chain for altchains that
// expose a btcd compatible JSON-RPC interface with the PoP extensions
// getpopdata and submitpop.
package bitcoin

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
	"github.com/goodnatureofminers/popminer/pkg/safe"
)

// Defaults for chains that do not configure their own.
const (
	DefaultNeededConfirmations int64  = 10
	DefaultPayoutInterval      uint64 = 100
)

// Config describes one altchain.
type Config struct {
	Key  string
	Name string
	// Identifier is the PoP identifier embedded in every endorsement.
	Identifier          int64
	PayoutAddress       string
	Params              *chaincfg.Params
	NeededConfirmations int64
	PayoutInterval      uint64
}

// Chain talks to the altchain node.
type Chain struct {
	cfg          Config
	client       RPCClient
	payoutScript []byte
	logger       *zap.Logger
}

// NewChain validates cfg, resolves the payout script and applies the defaults.
func NewChain(cfg Config, client RPCClient, logger *zap.Logger) (*Chain, error) {
	if cfg.Key == "" {
		return nil, errors.New("chain key is required")
	}
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if cfg.Params == nil {
		cfg.Params = &chaincfg.MainNetParams
	}
	if cfg.Name == "" {
		cfg.Name = cfg.Key
	}
	if cfg.NeededConfirmations <= 0 {
		cfg.NeededConfirmations = DefaultNeededConfirmations
	}
	if cfg.PayoutInterval == 0 {
		cfg.PayoutInterval = DefaultPayoutInterval
	}

	script, err := PayoutScript(cfg.PayoutAddress, cfg.Params)
	if err != nil {
		return nil, err
	}

	return &Chain{
		cfg:          cfg,
		client:       client,
		payoutScript: script,
		logger:       logger.Named("altchain").With(zap.String("chain", cfg.Key)),
	}, nil
}

// PayoutScript returns the output script paying to address on params.
func PayoutScript(address string, params *chaincfg.Params) ([]byte, error) {
	if address == "" {
		return nil, errors.New("payout address is required")
	}
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, fmt.Errorf("decode payout address: %w", err)
	}
	if !addr.IsForNet(params) {
		return nil, fmt.Errorf("payout address %s is not for %s", address, params.Name)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("payout script: %w", err)
	}
	return script, nil
}

// Key identifies the chain in the registry.
func (c *Chain) Key() string { return c.cfg.Key }

// Name is the display name, the key unless configured.
func (c *Chain) Name() string { return c.cfg.Name }

// PayoutInterval is the number of blocks between an endorsed block and its payout.
func (c *Chain) PayoutInterval() uint64 { return c.cfg.PayoutInterval }

// NeededConfirmations is the depth the endorsed block must reach.
func (c *Chain) NeededConfirmations() int64 { return c.cfg.NeededConfirmations }

type popDataResult struct {
	BlockHeader              string   `json:"block_header"`
	RawContextInfoContainer  string   `json:"raw_contextinfocontainer"`
	LastKnownVeriBlockBlocks []string `json:"last_known_veriblock_blocks"`
	LastKnownBitcoinBlocks   []string `json:"last_known_bitcoin_blocks"`
}

// MiningInstruction asks the node for the PoP data of the block at height. A
// zero height endorses the current tip.
func (c *Chain) MiningInstruction(ctx context.Context, height uint64) (*model.MiningInstruction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if height == 0 {
		count, err := c.client.GetBlockCount()
		if err != nil {
			return nil, fmt.Errorf("get block count: %w", err)
		}
		if height, err = safe.Uint64(count); err != nil {
			return nil, fmt.Errorf("block count: %w", err)
		}
	}

	var res popDataResult
	if err := c.call("getpopdata", &res, height); err != nil {
		return nil, err
	}

	header, err := hex.DecodeString(res.BlockHeader)
	if err != nil {
		return nil, fmt.Errorf("decode block header: %w", err)
	}
	contextInfo, err := hex.DecodeString(res.RawContextInfoContainer)
	if err != nil {
		return nil, fmt.Errorf("decode context info: %w", err)
	}
	vbkContext, err := decodeHashes(res.LastKnownVeriBlockBlocks)
	if err != nil {
		return nil, fmt.Errorf("decode veriblock context: %w", err)
	}
	btcContext, err := decodeHashes(res.LastKnownBitcoinBlocks)
	if err != nil {
		return nil, fmt.Errorf("decode bitcoin context: %w", err)
	}

	return &model.MiningInstruction{
		PublicationData: model.PublicationData{
			Identifier:  c.cfg.Identifier,
			Header:      header,
			ContextInfo: contextInfo,
			PayoutInfo:  c.payoutScript,
		},
		EndorsedBlockHeight: height,
		Context:             vbkContext,
		BTCContext:          btcContext,
	}, nil
}

type proofOfProof struct {
	TransactionID string   `json:"transaction_id"`
	MerklePath    string   `json:"merkle_path"`
	BlockOfProof  string   `json:"block_of_proof"`
	BlockHeight   uint64   `json:"block_of_proof_height"`
	Context       []string `json:"context"`
}

// Submit hands the proof and its publications to the node and returns the id
// of the altchain transaction carrying them.
func (c *Chain) Submit(ctx context.Context, proof model.ProofOfProof, publications []model.Publication) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	atv := proofOfProof{
		TransactionID: proof.Transaction.ID,
		MerklePath:    proof.MerklePath.Compact(),
		BlockOfProof:  proof.BlockOfProof.Hash,
		BlockHeight:   proof.BlockOfProof.Height,
		Context:       make([]string, 0, len(proof.Context)),
	}
	for _, b := range proof.Context {
		atv.Context = append(atv.Context, b.Hash)
	}
	vtbs := make([]string, 0, len(publications))
	for _, p := range publications {
		vtbs = append(vtbs, hex.EncodeToString(p.Raw))
	}

	var txID string
	if err := c.call("submitpop", &txID, atv, vtbs); err != nil {
		return "", err
	}
	if txID == "" {
		return "", errors.New("submitpop returned an empty transaction id")
	}
	c.logger.Info("proof of proof submitted",
		zap.String("txid", txID),
		zap.String("endorsement_txid", proof.Transaction.ID),
		zap.Int("publications", len(publications)),
	)
	return txID, nil
}

// Transaction returns txID with the confirmations of its containing block, so
// a transaction whose block left the main chain reports -1.
func (c *Chain) Transaction(ctx context.Context, txID string) (*model.AltTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return nil, fmt.Errorf("parse txid %s: %w", txID, err)
	}
	raw, err := c.client.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txID, err)
	}

	tx := &model.AltTransaction{
		TxID:      raw.Txid,
		BlockHash: raw.BlockHash,
		Outputs:   make([]model.AltOutput, 0, len(raw.Vout)),
	}
	for _, out := range raw.Vout {
		amount, err := btcutil.NewAmount(out.Value)
		if err != nil {
			return nil, fmt.Errorf("output %d value: %w", out.N, err)
		}
		tx.Outputs = append(tx.Outputs, model.AltOutput{
			ScriptHex: out.ScriptPubKey.Hex,
			Value:     int64(amount),
		})
	}

	if raw.BlockHash == "" {
		return tx, nil
	}
	blockHash, err := chainhash.NewHashFromStr(raw.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %s: %w", raw.BlockHash, err)
	}
	header, err := c.client.GetBlockHeaderVerbose(blockHash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", raw.BlockHash, err)
	}
	tx.Confirmations = header.Confirmations
	return tx, nil
}

// BlockAtHeight returns the main chain block at height.
func (c *Chain) BlockAtHeight(ctx context.Context, height uint64) (*model.AltBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := c.blockHash(height)
	if err != nil {
		return nil, err
	}
	block, err := c.client.GetBlockVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	blockHeight, err := safe.Uint64(block.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", hash, err)
	}

	out := &model.AltBlock{
		Hash:          block.Hash,
		Height:        blockHeight,
		Confirmations: block.Confirmations,
	}
	if len(block.Tx) > 0 {
		out.CoinbaseTxID = block.Tx[0]
	}
	return out, nil
}

// CheckBlockIsOnMainChain reports whether the block with the given raw header
// is the main chain block at height.
func (c *Chain) CheckBlockIsOnMainChain(ctx context.Context, height uint64, header []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var h wire.BlockHeader
	if err := h.Deserialize(bytes.NewReader(header)); err != nil {
		return false, fmt.Errorf("parse endorsed header: %w", err)
	}
	mainHash, err := c.blockHash(height)
	if err != nil {
		return false, err
	}
	endorsed := h.BlockHash()
	if !endorsed.IsEqual(mainHash) {
		c.logger.Warn("endorsed block is not on the main chain",
			zap.Uint64("height", height),
			zap.String("endorsed_hash", endorsed.String()),
			zap.String("main_chain_hash", mainHash.String()),
		)
		return false, nil
	}
	return true, nil
}

func (c *Chain) blockHash(height uint64) (*chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, err
	}
	hash, err := c.client.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at %d: %w", height, err)
	}
	return hash, nil
}

func (c *Chain) call(method string, result any, params ...any) error {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("%s: encode params: %w", method, err)
		}
		raw = append(raw, b)
	}
	res, err := c.client.RawRequest(method, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := json.Unmarshal(res, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

func decodeHashes(in []string) ([][]byte, error) {
	out := make([][]byte, 0, len(in))
	for _, s := range in {
		b, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("hash %q: %w", s, err)
		}
		out = append(out, b)
	}
	return out, nil
}
