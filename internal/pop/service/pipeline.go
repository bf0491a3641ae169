package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/continuity"
	"github.com/goodnatureofminers/popminer/internal/pop/merkle"
	"github.com/goodnatureofminers/popminer/internal/pop/model"
	"github.com/goodnatureofminers/popminer/internal/pop/task"
)

// KeystoneInterval is the VeriBlock keystone spacing in blocks.
const KeystoneInterval = 20

// Task names as shown in logs, metrics and the operation journal.
const (
	TaskMiningInstruction      = "Retrieve Mining Instruction"
	TaskEndorsementTransaction = "Create Endorsement Transaction"
	TaskConfirmTransaction     = "Confirm Transaction"
	TaskBlockOfProof           = "Determine Block of Proof"
	TaskProveTransaction       = "Prove Transaction"
	TaskKeystone               = "Wait for next VeriBlock Keystone"
	TaskPublications           = "Wait for VeriBlock Publication Data"
	TaskSubmitProofOfProof     = "Submit Proof of Proof"
	TaskAltEndorsement         = "Altchain Endorsement Transaction Confirmation"
	TaskAltEndorsedBlock       = "Altchain Endorsed Block Confirmation"
	TaskPayout                 = "Payout Detection"
)

// PipelineDeps are the collaborators of a Pipeline.
type PipelineDeps struct {
	Chain     SecurityInheritingChain
	Monitor   SecurityInheritingMonitor
	Network   Network
	Fees      FeePolicy
	Executor  *task.Executor
	Store     task.Store
	Metrics   Metrics
	Journal   EventLog
	Validator *continuity.Validator
}

// Pipeline runs mining operations of one altchain through every task in order.
type Pipeline struct {
	chain     SecurityInheritingChain
	monitor   SecurityInheritingMonitor
	network   Network
	fees      FeePolicy
	executor  *task.Executor
	store     task.Store
	metrics   Metrics
	journal   EventLog
	validator *continuity.Validator
	logger    *zap.Logger
}

// NewPipeline validates deps and builds a Pipeline.
func NewPipeline(deps PipelineDeps, logger *zap.Logger) (*Pipeline, error) {
	switch {
	case deps.Chain == nil:
		return nil, errors.New("pipeline chain is required")
	case deps.Monitor == nil:
		return nil, errors.New("pipeline monitor is required")
	case deps.Network == nil:
		return nil, errors.New("pipeline network is required")
	case deps.Fees == nil:
		return nil, errors.New("pipeline fee policy is required")
	case deps.Executor == nil:
		return nil, errors.New("pipeline executor is required")
	case deps.Store == nil:
		return nil, errors.New("pipeline store is required")
	case deps.Metrics == nil:
		return nil, errors.New("pipeline metrics is required")
	}
	validator := deps.Validator
	if validator == nil {
		validator = continuity.NewValidator(logger)
	}
	return &Pipeline{
		chain:     deps.Chain,
		monitor:   deps.Monitor,
		network:   deps.Network,
		fees:      deps.Fees,
		executor:  deps.Executor,
		store:     deps.Store,
		metrics:   deps.Metrics,
		journal:   deps.Journal,
		validator: validator,
		logger:    logger.Named("pipeline").With(zap.String("chain", deps.Chain.Key())),
	}, nil
}

// Chain returns the altchain the pipeline mines for.
func (p *Pipeline) Chain() SecurityInheritingChain {
	return p.chain
}

type step struct {
	name   string
	target model.StateType
	work   func(context.Context, *model.MiningOperation) error
}

func (p *Pipeline) steps() []step {
	return []step{
		{TaskMiningInstruction, model.StateInstruction, p.retrieveMiningInstruction},
		{TaskEndorsementTransaction, model.StateEndorsementTransaction, p.createEndorsementTransaction},
		{TaskConfirmTransaction, model.StateConfirmed, p.confirmTransaction},
		{TaskBlockOfProof, model.StateBlockOfProof, p.determineBlockOfProof},
		{TaskProveTransaction, model.StateTransactionProved, p.proveTransaction},
		{TaskKeystone, model.StateKeystoneOfProof, p.waitForKeystone},
		{TaskPublications, model.StateVeriBlockPublications, p.waitForPublications},
		{TaskSubmitProofOfProof, model.StateSubmittedPopData, p.submitProofOfProof},
		{TaskAltEndorsement, model.StateAltEndorsementConfirmed, p.confirmAltEndorsement},
		{TaskAltEndorsedBlock, model.StateAltEndorsedBlockConfirmed, p.confirmAltEndorsedBlock},
		{TaskPayout, model.StateComplete, p.detectPayout},
	}
}

// Run drives op from its current state to Complete. Any error escaping a task
// fails the operation, except a canceled ctx which leaves it resumable.
func (p *Pipeline) Run(ctx context.Context, op *model.MiningOperation) {
	logger := p.logger.With(zap.String("operation_id", op.ID))
	switch op.State.Type {
	case model.StateFailed:
		logger.Warn("attempted to run tasks for a failed operation")
		return
	case model.StateComplete:
		logger.Debug("operation already complete")
		return
	}

	started := time.Now()
	for _, s := range p.steps() {
		s := s
		err := p.executor.Run(ctx, op, s.name, s.target, func(ctx context.Context) error {
			return s.work(ctx, op)
		})
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			logger.Info("operation interrupted", zap.Stringer("state", op.State.Type))
			return
		}
		p.fail(ctx, op, err, logger)
		p.metrics.ObserveOperation(op.ChainID, op.State.Type.String(), started)
		return
	}

	logger.Info("operation complete",
		zap.String("payout_block", op.State.PayoutBlockHash),
		zap.Int64("payout_amount", op.State.PayoutAmount),
	)
	p.metrics.ObserveOperation(op.ChainID, op.State.Type.String(), started)
}

func (p *Pipeline) fail(ctx context.Context, op *model.MiningOperation, cause error, logger *zap.Logger) {
	if err := op.Fail(cause.Error()); err != nil {
		logger.Error("fail operation", zap.Error(err))
		return
	}
	logger.Error("operation failed", zap.Error(cause))
	if p.journal != nil {
		p.journal.Record(ctx, model.OperationEvent{
			OperationID: op.ID,
			ChainID:     op.ChainID,
			Time:        time.Now().UTC(),
			Level:       model.EventError,
			Message:     "Operation failed: " + cause.Error(),
		})
	}
	if err := p.store.SaveOperation(ctx, op.Clone()); err != nil {
		logger.Error("save failed operation", zap.Error(err))
	}
}

func requireState(op *model.MiningOperation, want model.StateType, name string) error {
	if op.State.Type != want {
		return task.Retryf("%s called in state %s, requires %s", name, op.State.Type, want)
	}
	return nil
}

func (p *Pipeline) retrieveMiningInstruction(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateInitial, TaskMiningInstruction); err != nil {
		return err
	}
	instruction, err := p.chain.MiningInstruction(ctx, op.BlockHeight)
	if err != nil {
		return task.Retry(fmt.Errorf("get mining instruction from %s: %w", p.chain.Name(), err))
	}
	if instruction == nil {
		return task.Retryf("%s returned no mining instruction", p.chain.Name())
	}
	return op.SetMiningInstruction(*instruction)
}

func (p *Pipeline) createEndorsementTransaction(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateInstruction, TaskEndorsementTransaction); err != nil {
		return err
	}
	payload := op.State.Instruction.PublicationData.Serialize()
	if err := model.ValidateEndorsement(payload); err != nil {
		return task.Fatal(fmt.Errorf("invalid endorsement data %x: %w", payload, err))
	}
	tx, err := p.network.SubmitEndorsement(ctx, payload, p.fees.FeePerByte(), p.fees.MaxFee())
	if err != nil {
		return task.Fatal(fmt.Errorf("create endorsement transaction: %w", err))
	}
	if tx == nil {
		return task.Fatalf("create endorsement transaction: no transaction returned")
	}
	return op.SetTransaction(*tx)
}

func (p *Pipeline) confirmTransaction(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateEndorsementTransaction, TaskConfirmTransaction); err != nil {
		return err
	}
	txID := op.State.Transaction.ID
	states, release, err := p.network.SubscribeTransactionMeta(ctx, txID)
	if err != nil {
		return task.Retry(fmt.Errorf("subscribe to transaction %s: %w", txID, err))
	}
	defer release()

	// The first state is the current one. Only a later PENDING means the
	// transaction fell back out of a block.
	first := true
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case state, ok := <-states:
			if !ok {
				return task.Retryf("meta state stream of transaction %s closed", txID)
			}
			initial := first
			first = false
			switch state {
			case model.MetaStateConfirmed:
				return op.SetConfirmed()
			case model.MetaStatePending:
				if initial {
					continue
				}
				return task.Fatalf("the VeriBlock chain has reorganized around transaction %s", txID)
			case model.MetaStateDead:
				return task.Fatalf("transaction %s is dead", txID)
			}
		}
	}
}

func (p *Pipeline) determineBlockOfProof(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateConfirmed, TaskBlockOfProof); err != nil {
		return err
	}
	txID := op.State.Transaction.ID
	tx, err := p.network.Transaction(ctx, txID)
	if err != nil {
		return task.Retry(fmt.Errorf("get transaction %s: %w", txID, err))
	}
	if tx == nil || tx.BlockHash == "" {
		return task.Retryf("unable to retrieve block of proof from transaction %s", txID)
	}
	block, err := p.network.Block(ctx, tx.BlockHash)
	if err != nil {
		return task.Retry(fmt.Errorf("get VBK block %s: %w", tx.BlockHash, err))
	}
	if block == nil {
		return task.Retryf("unable to retrieve VBK block %s", tx.BlockHash)
	}
	return op.SetBlockOfProof(*tx, *block)
}

func (p *Pipeline) proveTransaction(_ context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateBlockOfProof, TaskProveTransaction); err != nil {
		return err
	}
	tx := op.State.Transaction
	if tx.MerklePath == nil {
		return task.Fatalf("no merkle path found for %s", tx.ID)
	}
	if err := merkle.Verify(tx.MerklePath, op.State.BlockOfProof.MerkleRoot); err != nil {
		return task.Fatal(fmt.Errorf("unable to verify merkle path of %s: %w", tx.ID, err))
	}
	return op.SetMerklePath(*tx.MerklePath)
}

// KeystoneHeight returns the first keystone height above blockHeight.
func KeystoneHeight(blockHeight uint64) uint64 {
	return blockHeight/KeystoneInterval*KeystoneInterval + KeystoneInterval
}

func (p *Pipeline) waitForKeystone(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateTransactionProved, TaskKeystone); err != nil {
		return err
	}
	proofHeight := op.State.BlockOfProof.Height
	want := KeystoneHeight(proofHeight)

	blocks, release, err := p.network.SubscribeBestBlocks(ctx)
	if err != nil {
		return task.Retry(fmt.Errorf("subscribe to best blocks: %w", err))
	}
	defer release()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case block, ok := <-blocks:
			if !ok {
				return task.Retryf("best block stream closed")
			}
			if block.Height > proofHeight+KeystoneInterval {
				return task.Fatalf("the next VBK keystone %d was not received, best block is %d", want, block.Height)
			}
			if block.Height == want {
				return op.SetKeystoneOfProof(block)
			}
		}
	}
}

func (p *Pipeline) waitForPublications(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateKeystoneOfProof, TaskPublications); err != nil {
		return err
	}
	instruction := op.State.Instruction
	if len(instruction.Context) == 0 || len(instruction.BTCContext) == 0 {
		return task.Fatalf("mining instruction carries no context")
	}
	pubs, err := p.network.Publications(ctx, op.ID,
		op.State.KeystoneOfProof.Hash,
		hex.EncodeToString(instruction.Context[0]),
		hex.EncodeToString(instruction.BTCContext[0]),
	)
	if err != nil {
		return task.Retry(fmt.Errorf("get VeriBlock publications: %w", err))
	}
	if len(pubs) == 0 {
		return task.Retryf("no VeriBlock publications for keystone %s", op.State.KeystoneOfProof.Hash)
	}
	return op.SetPublications(pubs)
}

func (p *Pipeline) submitProofOfProof(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateVeriBlockPublications, TaskSubmitProofOfProof); err != nil {
		return err
	}
	proof := model.ProofOfProof{
		Transaction:  *op.State.Transaction,
		MerklePath:   *op.State.MerklePath,
		BlockOfProof: *op.State.BlockOfProof,
	}
	pubs := op.State.Publications
	p.validator.Log(op.State.Instruction.BTCContext, pubs)

	txID, err := p.chain.Submit(ctx, proof, pubs)
	if err != nil {
		return task.Fatal(fmt.Errorf("submit proof of proof: %w", err))
	}
	p.logger.Info("proof of proof submitted", zap.String("operation_id", op.ID), zap.String("txid", txID))
	return op.SetProofOfProofID(txID)
}

func (p *Pipeline) confirmAltEndorsement(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateSubmittedPopData, TaskAltEndorsement); err != nil {
		return err
	}
	needed := p.chain.NeededConfirmations()
	if _, err := p.monitor.Transaction(ctx, op.State.ProofOfProofID, func(tx model.AltTransaction) bool {
		return tx.Confirmations >= needed
	}); err != nil {
		return waitError(ctx, err)
	}
	return op.SetAltEndorsementConfirmed()
}

func (p *Pipeline) confirmAltEndorsedBlock(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateAltEndorsementConfirmed, TaskAltEndorsedBlock); err != nil {
		return err
	}
	instruction := op.State.Instruction
	height := instruction.EndorsedBlockHeight
	needed := p.chain.NeededConfirmations()
	block, err := p.monitor.BlockAtHeight(ctx, height, func(b model.AltBlock) bool {
		return b.Confirmations >= needed
	})
	if err != nil {
		return waitError(ctx, err)
	}

	header := instruction.PublicationData.Header
	onMain, err := p.chain.CheckBlockIsOnMainChain(ctx, height, header)
	if err != nil {
		return task.Retry(fmt.Errorf("check endorsed block @ %d: %w", height, err))
	}
	if !onMain {
		return task.Fatalf("endorsed block header %x @ %d is not in %s's main chain", header, height, strings.ToUpper(p.chain.Key()))
	}
	return op.SetAltEndorsedBlockHash(block.Hash)
}

func (p *Pipeline) detectPayout(ctx context.Context, op *model.MiningOperation) error {
	if err := requireState(op, model.StateAltEndorsedBlockConfirmed, TaskPayout); err != nil {
		return err
	}
	instruction := op.State.Instruction
	payoutHeight := instruction.EndorsedBlockHeight + p.chain.PayoutInterval()
	needed := p.chain.NeededConfirmations()
	block, err := p.monitor.BlockAtHeight(ctx, payoutHeight, func(b model.AltBlock) bool {
		return b.Confirmations >= needed
	})
	if err != nil {
		return waitError(ctx, err)
	}

	coinbase, err := p.chain.Transaction(ctx, block.CoinbaseTxID)
	if err != nil {
		return task.Retry(fmt.Errorf("get coinbase transaction %s: %w", block.CoinbaseTxID, err))
	}
	if coinbase == nil {
		return task.Retryf("unable to find transaction %s", block.CoinbaseTxID)
	}
	out, ok := FindPayout(coinbase.Outputs, instruction.PublicationData.PayoutInfo)
	if !ok {
		return task.Fatalf("unable to find %s PoP payout in the coinbase of block %s @ %d",
			strings.ToUpper(op.ChainID), block.Hash, block.Height)
	}
	p.logger.Info("PoP payout detected",
		zap.String("operation_id", op.ID),
		zap.Int64("amount", out.Value),
		zap.String("block", block.Hash),
	)
	return op.Complete(block.Hash, out.Value)
}

// FindPayout returns the first output paying to payoutInfo.
func FindPayout(outputs []model.AltOutput, payoutInfo []byte) (model.AltOutput, bool) {
	want := hex.EncodeToString(payoutInfo)
	for _, out := range outputs {
		if strings.EqualFold(out.ScriptHex, want) {
			return out, true
		}
	}
	return model.AltOutput{}, false
}

// waitError keeps context errors unclassified so shutdown does not fail the operation.
func waitError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return err
	}
	return task.Fatal(err)
}
