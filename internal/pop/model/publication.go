package model

import (
	"time"

	"github.com/goodnatureofminers/popminer/internal/pop/merkle"
)

// PopTransaction is the VeriBlock transaction that publishes VeriBlock state to Bitcoin.
type PopTransaction struct {
	ID                 string `json:"id"`
	BitcoinTransaction []byte `json:"bitcoin_transaction"`
	// BitcoinBlockOfProof is the 80 byte header of the Bitcoin block containing BitcoinTransaction.
	BitcoinBlockOfProof []byte `json:"bitcoin_block_of_proof"`
	// BitcoinContext holds 80 byte headers preceding the block of proof, oldest first.
	BitcoinContext [][]byte `json:"bitcoin_context"`
}

// Publication is a VeriBlock-to-Bitcoin publication (VTB).
type Publication struct {
	Transaction         PopTransaction `json:"transaction"`
	MerklePath          *merkle.Path   `json:"merkle_path,omitempty"`
	ContainingBlockHash string         `json:"containing_block_hash"`
	// Raw is the serialized publication as submitted to the altchain.
	Raw []byte `json:"raw"`
}

// ProofOfProof is the composite proof (ATV) submitted to the altchain.
type ProofOfProof struct {
	Transaction  Transaction
	MerklePath   merkle.Path
	BlockOfProof Block
	Context      []Block
}

// OperationSummary is the display view of an operation.
type OperationSummary struct {
	OperationID         string    `json:"operation_id"`
	ChainID             string    `json:"chain_id"`
	EndorsedBlockHeight uint64    `json:"endorsed_block_height"`
	State               string    `json:"state"`
	Action              string    `json:"action"`
	FailureReason       string    `json:"failure_reason,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// EventLevel is the severity of an operation event.
type EventLevel string

var (
	EventInfo  EventLevel = "info"
	EventWarn  EventLevel = "warn"
	EventError EventLevel = "error"
)

// OperationEvent is one entry of an operation's log.
type OperationEvent struct {
	OperationID string
	ChainID     string
	Time        time.Time
	Level       EventLevel
	Message     string
}
