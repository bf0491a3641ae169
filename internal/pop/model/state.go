// Package model defines the mining operation state machine and the chain entities it carries.
package model

import (
	"fmt"

	"github.com/goodnatureofminers/popminer/internal/pop/merkle"
)

// StateType orders the states of a mining operation. Later states compare greater.
type StateType int

const (
	StateInitial StateType = iota
	StateInstruction
	StateEndorsementTransaction
	StateConfirmed
	StateBlockOfProof
	StateTransactionProved
	StateKeystoneOfProof
	StateVeriBlockPublications
	StateSubmittedPopData
	StateAltEndorsementConfirmed
	StateAltEndorsedBlockConfirmed
	StateComplete
	StateFailed
)

var stateNames = map[StateType]string{
	StateInitial:                   "INITIAL",
	StateInstruction:               "INSTRUCTION",
	StateEndorsementTransaction:    "ENDORSEMENT_TRANSACTION",
	StateConfirmed:                 "CONFIRMED",
	StateBlockOfProof:              "BLOCK_OF_PROOF",
	StateTransactionProved:         "TRANSACTION_PROVED",
	StateKeystoneOfProof:           "KEYSTONE_OF_PROOF",
	StateVeriBlockPublications:     "VERIBLOCK_PUBLICATIONS",
	StateSubmittedPopData:          "SUBMITTED_POP_DATA",
	StateAltEndorsementConfirmed:   "ALT_ENDORSEMENT_TRANSACTION_CONFIRMED",
	StateAltEndorsedBlockConfirmed: "ALT_ENDORSED_BLOCK_CONFIRMED",
	StateComplete:                  "COMPLETE",
	StateFailed:                    "FAILED",
}

func (t StateType) String() string {
	if name, ok := stateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("StateType(%d)", int(t))
}

// ParseStateType is the inverse of StateType.String.
func ParseStateType(s string) (StateType, error) {
	for t, name := range stateNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown state type %q", s)
}

// State is the accumulated payload of an operation. Fields are filled in as the
// operation advances; Type tells which of them are meaningful.
type State struct {
	Type StateType `json:"type"`

	Instruction          *MiningInstruction `json:"instruction,omitempty"`
	Transaction          *Transaction       `json:"transaction,omitempty"`
	BlockOfProof         *Block             `json:"block_of_proof,omitempty"`
	MerklePath           *merkle.Path       `json:"merkle_path,omitempty"`
	KeystoneOfProof      *Block             `json:"keystone_of_proof,omitempty"`
	Publications         []Publication      `json:"publications,omitempty"`
	ProofOfProofID       string             `json:"proof_of_proof_id,omitempty"`
	AltEndorsedBlockHash string             `json:"alt_endorsed_block_hash,omitempty"`
	PayoutBlockHash      string             `json:"payout_block_hash,omitempty"`
	PayoutAmount         int64              `json:"payout_amount,omitempty"`

	FailureReason string `json:"failure_reason,omitempty"`
}

// HasReached reports whether the state is at or past t. A failed state has
// reached every type so no further task runs for it.
func (s State) HasReached(t StateType) bool {
	return s.Type >= t
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s.Type == StateComplete || s.Type == StateFailed
}

// Action describes what the operation is doing next, for display.
func (s State) Action() string {
	switch s.Type {
	case StateInitial:
		return "Retrieving mining instruction"
	case StateInstruction:
		return "Submitting endorsement transaction"
	case StateEndorsementTransaction:
		return "Waiting for transaction to be included in a VeriBlock block"
	case StateConfirmed:
		return "Determining block of proof"
	case StateBlockOfProof:
		return "Proving transaction"
	case StateTransactionProved:
		return "Waiting for the next VeriBlock keystone"
	case StateKeystoneOfProof:
		return "Waiting for VeriBlock publications"
	case StateVeriBlockPublications:
		return "Submitting proof of proof"
	case StateSubmittedPopData:
		return "Waiting for endorsement transaction confirmations"
	case StateAltEndorsementConfirmed:
		return "Waiting for endorsed block confirmations"
	case StateAltEndorsedBlockConfirmed:
		return "Waiting for payout"
	case StateComplete:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return ""
	}
}
