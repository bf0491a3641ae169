package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/popminer/internal/pop/merkle"
)

// ErrInvalidTransition is returned when a transition is attempted from a state
// other than its immediate predecessor.
var ErrInvalidTransition = errors.New("invalid state transition")

// MiningOperation is one end-to-end endorsement of an altchain block.
type MiningOperation struct {
	ID          string
	ChainID     string
	BlockHeight uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	State       State
}

// NewMiningOperation creates an operation in the initial state.
func NewMiningOperation(id, chainID string, blockHeight uint64, now time.Time) *MiningOperation {
	return &MiningOperation{
		ID:          id,
		ChainID:     chainID,
		BlockHeight: blockHeight,
		CreatedAt:   now,
		UpdatedAt:   now,
		State:       State{Type: StateInitial},
	}
}

// Clone returns a copy that does not share the top level state with o.
func (o *MiningOperation) Clone() MiningOperation {
	c := *o
	c.State.Publications = append([]Publication(nil), o.State.Publications...)
	return c
}

// EndorsedBlockHeight returns the height from the instruction, or the requested
// height when no instruction was retrieved yet.
func (o *MiningOperation) EndorsedBlockHeight() uint64 {
	if o.State.Instruction != nil {
		return o.State.Instruction.EndorsedBlockHeight
	}
	return o.BlockHeight
}

func (o *MiningOperation) advance(from, to StateType) error {
	if o.State.Type != from {
		return fmt.Errorf("%w: %s -> %s requires %s", ErrInvalidTransition, o.State.Type, to, from)
	}
	o.State.Type = to
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// SetMiningInstruction moves Initial -> Instruction.
func (o *MiningOperation) SetMiningInstruction(instruction MiningInstruction) error {
	if err := o.advance(StateInitial, StateInstruction); err != nil {
		return err
	}
	o.State.Instruction = &instruction
	return nil
}

// SetTransaction moves Instruction -> EndorsementTransaction.
func (o *MiningOperation) SetTransaction(tx Transaction) error {
	if err := o.advance(StateInstruction, StateEndorsementTransaction); err != nil {
		return err
	}
	o.State.Transaction = &tx
	return nil
}

// SetConfirmed moves EndorsementTransaction -> Confirmed.
func (o *MiningOperation) SetConfirmed() error {
	return o.advance(StateEndorsementTransaction, StateConfirmed)
}

// SetBlockOfProof moves Confirmed -> BlockOfProof. tx is the refreshed endorsement
// transaction that names the block.
func (o *MiningOperation) SetBlockOfProof(tx Transaction, block Block) error {
	if err := o.advance(StateConfirmed, StateBlockOfProof); err != nil {
		return err
	}
	o.State.Transaction = &tx
	o.State.BlockOfProof = &block
	return nil
}

// SetMerklePath moves BlockOfProof -> TransactionProved.
func (o *MiningOperation) SetMerklePath(path merkle.Path) error {
	if err := o.advance(StateBlockOfProof, StateTransactionProved); err != nil {
		return err
	}
	o.State.MerklePath = &path
	return nil
}

// SetKeystoneOfProof moves TransactionProved -> KeystoneOfProof.
func (o *MiningOperation) SetKeystoneOfProof(block Block) error {
	if err := o.advance(StateTransactionProved, StateKeystoneOfProof); err != nil {
		return err
	}
	o.State.KeystoneOfProof = &block
	return nil
}

// SetPublications moves KeystoneOfProof -> VeriBlockPublications.
func (o *MiningOperation) SetPublications(publications []Publication) error {
	if err := o.advance(StateKeystoneOfProof, StateVeriBlockPublications); err != nil {
		return err
	}
	o.State.Publications = publications
	return nil
}

// SetProofOfProofID moves VeriBlockPublications -> SubmittedPopData.
func (o *MiningOperation) SetProofOfProofID(txID string) error {
	if err := o.advance(StateVeriBlockPublications, StateSubmittedPopData); err != nil {
		return err
	}
	o.State.ProofOfProofID = txID
	return nil
}

// SetAltEndorsementConfirmed moves SubmittedPopData -> AltEndorsementConfirmed.
func (o *MiningOperation) SetAltEndorsementConfirmed() error {
	return o.advance(StateSubmittedPopData, StateAltEndorsementConfirmed)
}

// SetAltEndorsedBlockHash moves AltEndorsementConfirmed -> AltEndorsedBlockConfirmed.
func (o *MiningOperation) SetAltEndorsedBlockHash(hash string) error {
	if err := o.advance(StateAltEndorsementConfirmed, StateAltEndorsedBlockConfirmed); err != nil {
		return err
	}
	o.State.AltEndorsedBlockHash = hash
	return nil
}

// Complete moves AltEndorsedBlockConfirmed -> Complete.
func (o *MiningOperation) Complete(payoutBlockHash string, amount int64) error {
	if err := o.advance(StateAltEndorsedBlockConfirmed, StateComplete); err != nil {
		return err
	}
	o.State.PayoutBlockHash = payoutBlockHash
	o.State.PayoutAmount = amount
	return nil
}

// Fail moves any non-terminal state to Failed. Accumulated payload is kept for diagnosis.
func (o *MiningOperation) Fail(reason string) error {
	if o.State.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.State.Type, StateFailed)
	}
	if reason == "" {
		reason = "unknown reason"
	}
	o.State.Type = StateFailed
	o.State.FailureReason = reason
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// Summary returns the display view of the operation.
func (o *MiningOperation) Summary() OperationSummary {
	return OperationSummary{
		OperationID:         o.ID,
		ChainID:             o.ChainID,
		EndorsedBlockHeight: o.EndorsedBlockHeight(),
		State:               o.State.Type.String(),
		Action:              o.State.Action(),
		FailureReason:       o.State.FailureReason,
		UpdatedAt:           o.UpdatedAt,
	}
}
