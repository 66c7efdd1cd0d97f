package runtime

import (
	"fmt"

	"github.com/badgerodon/collections/stack"
	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
)

const MaxInvokeDepth = 4

type InstructionAccount struct {
	Key        solana.PublicKey
	Account    *Account
	IsSigner   bool
	IsWritable bool
}

// ExecutionContext is handed to a native program for one instruction. The
// underlying transaction context is shared across CPI levels, so an inner
// invocation sees the same working accounts and the same signer set.
type ExecutionContext struct {
	tx        *txContext
	programId solana.PublicKey
	accounts  []*InstructionAccount
}

type txContext struct {
	registry *Registry
	load     func(key solana.PublicKey) (*Account, bool)
	accounts map[solana.PublicKey]*Account
	signers  map[solana.PublicKey]bool
	logs     []string
	meter    *ComputeMeter
	invokes  *stack.Stack
}

func newTxContext(registry *Registry, signers []solana.PublicKey, load func(key solana.PublicKey) (*Account, bool)) *txContext {
	signerSet := make(map[solana.PublicKey]bool, len(signers))
	for _, signer := range signers {
		signerSet[signer] = true
	}
	return &txContext{
		registry: registry,
		load:     load,
		accounts: make(map[solana.PublicKey]*Account),
		signers:  signerSet,
		logs:     make([]string, 0),
		meter:    NewComputeMeter(TransactionComputeBudget),
		invokes:  stack.New(),
	}
}

func (tx *txContext) account(key solana.PublicKey) *Account {
	if acc, ok := tx.accounts[key]; ok {
		return acc
	}
	acc, ok := tx.load(key)
	if !ok {
		acc = &Account{Owner: program.System}
	}
	tx.accounts[key] = acc
	return acc
}

func (tx *txContext) log(format string, args ...interface{}) {
	tx.logs = append(tx.logs, fmt.Sprintf(format, args...))
}

func (tx *txContext) process(ins solana.Instruction) error {
	if tx.invokes.Len() >= MaxInvokeDepth {
		return ErrCallDepthExceeded
	}
	if err := tx.meter.Consume(InvokeUnits); err != nil {
		return err
	}
	native, ok := tx.registry.Lookup(ins.ProgramID())
	if !ok {
		return ErrUnknownProgram
	}
	metas := ins.Accounts()
	accounts := make([]*InstructionAccount, 0, len(metas))
	for _, meta := range metas {
		if meta.IsSigner && !tx.signers[meta.PublicKey] {
			return ErrMissingSignature
		}
		accounts = append(accounts, &InstructionAccount{
			Key:        meta.PublicKey,
			Account:    tx.account(meta.PublicKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	data, err := ins.Data()
	if err != nil {
		return err
	}
	tx.invokes.Push(ins.ProgramID())
	defer tx.invokes.Pop()
	tx.log("Program %s invoke [%d]", ins.ProgramID(), tx.invokes.Len())
	ctx := &ExecutionContext{
		tx:        tx,
		programId: ins.ProgramID(),
		accounts:  accounts,
	}
	err = native.Execute(ctx, data)
	if err != nil {
		tx.log("Program %s failed: %s", ins.ProgramID(), err.Error())
		return err
	}
	tx.log("Program %s success", ins.ProgramID())
	return nil
}

func (ctx *ExecutionContext) ProgramId() solana.PublicKey {
	return ctx.programId
}

func (ctx *ExecutionContext) NumAccounts() int {
	return len(ctx.accounts)
}

func (ctx *ExecutionContext) Account(index int) *InstructionAccount {
	if index < 0 || index >= len(ctx.accounts) {
		return nil
	}
	return ctx.accounts[index]
}

func (ctx *ExecutionContext) Signed(key solana.PublicKey) bool {
	return ctx.tx.signers[key]
}

func (ctx *ExecutionContext) Log(format string, args ...interface{}) {
	ctx.tx.log("Program log: "+format, args...)
}

// Invoke executes a cross-program invocation within the current transaction.
// The inner instruction shares the transaction's signer set, working accounts
// and compute budget, and its failure aborts the whole transaction.
func (ctx *ExecutionContext) Invoke(ins solana.Instruction) error {
	return ctx.tx.process(ins)
}
