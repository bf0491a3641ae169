package network

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/popminer/internal/pop/merkle"
	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// reply is the envelope of every gateway response.
type reply[T any] struct {
	Result T      `json:"result"`
	Error  string `json:"error,omitempty"`
}

type submitEndorsementRequest struct {
	Payload    string `json:"payload"`
	FeePerByte int64  `json:"fee_per_byte"`
	MaxFee     int64  `json:"max_fee"`
}

type transactionRequest struct {
	TxID string `json:"tx_id"`
}

type blockRequest struct {
	Hash string `json:"hash"`
}

type publicationsRequest struct {
	OperationID    string `json:"operation_id"`
	KeystoneHash   string `json:"keystone_hash"`
	ContextHash    string `json:"context_hash"`
	BTCContextHash string `json:"btc_context_hash"`
}

type transactionMessage struct {
	ID        string `json:"id"`
	Fee       int64  `json:"fee"`
	MetaState string `json:"meta_state"`
	BlockHash string `json:"block_hash,omitempty"`
	// MerklePath is in compact "index:subject:layer..." form.
	MerklePath string `json:"merkle_path,omitempty"`
}

func (m transactionMessage) toModel() (*model.Transaction, error) {
	tx := &model.Transaction{
		ID:        m.ID,
		Fee:       m.Fee,
		MetaState: model.MetaState(m.MetaState),
		BlockHash: m.BlockHash,
	}
	if m.MerklePath != "" {
		path, err := merkle.ParseCompact(m.MerklePath)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", m.ID, err)
		}
		tx.MerklePath = path
	}
	return tx, nil
}

type blockMessage struct {
	Hash       string `json:"hash"`
	Height     uint64 `json:"height"`
	MerkleRoot string `json:"merkle_root"`
}

func (m blockMessage) toModel() (*model.Block, error) {
	root, err := hex.DecodeString(m.MerkleRoot)
	if err != nil {
		return nil, fmt.Errorf("block %s merkle root: %w", m.Hash, err)
	}
	return &model.Block{Hash: m.Hash, Height: m.Height, MerkleRoot: root}, nil
}

type metaStateMessage struct {
	TxID      string `json:"tx_id"`
	MetaState string `json:"meta_state"`
}

type popTransactionMessage struct {
	ID                  string   `json:"id"`
	BitcoinTransaction  string   `json:"bitcoin_transaction"`
	BitcoinBlockOfProof string   `json:"bitcoin_block_of_proof"`
	BitcoinContext      []string `json:"bitcoin_context"`
}

type publicationMessage struct {
	Transaction         popTransactionMessage `json:"transaction"`
	MerklePath          string                `json:"merkle_path,omitempty"`
	ContainingBlockHash string                `json:"containing_block_hash"`
	Raw                 string                `json:"raw"`
}

func (m publicationMessage) toModel() (model.Publication, error) {
	var (
		pub model.Publication
		err error
	)
	pub.ContainingBlockHash = m.ContainingBlockHash
	pub.Transaction.ID = m.Transaction.ID
	if pub.Transaction.BitcoinTransaction, err = hex.DecodeString(m.Transaction.BitcoinTransaction); err != nil {
		return pub, fmt.Errorf("publication %s bitcoin transaction: %w", m.Transaction.ID, err)
	}
	if pub.Transaction.BitcoinBlockOfProof, err = hex.DecodeString(m.Transaction.BitcoinBlockOfProof); err != nil {
		return pub, fmt.Errorf("publication %s block of proof: %w", m.Transaction.ID, err)
	}
	for i, h := range m.Transaction.BitcoinContext {
		header, err := hex.DecodeString(h)
		if err != nil {
			return pub, fmt.Errorf("publication %s context %d: %w", m.Transaction.ID, i, err)
		}
		pub.Transaction.BitcoinContext = append(pub.Transaction.BitcoinContext, header)
	}
	if m.MerklePath != "" {
		if pub.MerklePath, err = merkle.ParseCompact(m.MerklePath); err != nil {
			return pub, fmt.Errorf("publication %s: %w", m.Transaction.ID, err)
		}
	}
	if pub.Raw, err = hex.DecodeString(m.Raw); err != nil {
		return pub, fmt.Errorf("publication %s raw: %w", m.Transaction.ID, err)
	}
	return pub, nil
}
