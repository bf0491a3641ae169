package model

import (
	"github.com/goodnatureofminers/popminer/internal/pop/merkle"
)

// MetaState is the observable state of a VeriBlock wallet transaction.
type MetaState string

var (
	// MetaStatePending marks a transaction not in the best chain. Seen again after
	// confirmation it means the chain reorganized.
	MetaStatePending MetaState = "PENDING"
	// MetaStateConfirmed marks a transaction included in a best chain block.
	MetaStateConfirmed MetaState = "CONFIRMED"
	// MetaStateDead marks a transaction that will never confirm.
	MetaStateDead MetaState = "DEAD"
)

// Transaction is the VeriBlock endorsement transaction.
type Transaction struct {
	ID        string    `json:"id"`
	Fee       int64     `json:"fee"`
	MetaState MetaState `json:"meta_state"`
	// BlockHash is the best chain block the transaction appears in, once known.
	BlockHash  string       `json:"block_hash,omitempty"`
	MerklePath *merkle.Path `json:"merkle_path,omitempty"`
}

// Block is a VeriBlock block.
type Block struct {
	Hash       string `json:"hash"`
	Height     uint64 `json:"height"`
	MerkleRoot []byte `json:"merkle_root"`
}

// AltBlock is a block of the security inheriting chain.
type AltBlock struct {
	Hash   string
	Height uint64
	// Confirmations is negative when the block is no longer on the main chain.
	Confirmations int64
	CoinbaseTxID  string
}

// AltOutput is an output of an altchain transaction.
type AltOutput struct {
	// ScriptHex is the hex encoded output script, compared against the payout info.
	ScriptHex string
	Value     int64
}

// AltTransaction is a transaction of the security inheriting chain.
type AltTransaction struct {
	TxID string
	// Confirmations is negative when the transaction is no longer on the main chain.
	Confirmations int64
	BlockHash     string
	Outputs       []AltOutput
}
