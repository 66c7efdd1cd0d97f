package runtime

import (
	"log"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// Bank is an in-process ledger. It loads native programs from a registry and
// executes transactions against its accounts with the same atomicity the
// chain gives: either every instruction succeeds and the touched accounts are
// committed, or nothing but the fee is.
type Bank struct {
	mu       sync.Mutex
	logger   *log.Logger
	registry *Registry
	accounts map[solana.PublicKey]*Account
	slot     uint64
}

type Transaction struct {
	Payer        solana.PublicKey
	Fee          uint64
	Signers      []solana.PublicKey
	Instructions []solana.Instruction
}

type Result struct {
	Slot          uint64
	Logs          []string
	UnitsConsumed uint64
}

func NewBank(registry *Registry) *Bank {
	return &Bank{
		logger:   log.Default(),
		registry: registry,
		accounts: make(map[solana.PublicKey]*Account),
	}
}

func (b *Bank) SetLogger(logger *log.Logger) {
	b.logger = logger
}

func (b *Bank) SetAccount(key solana.PublicKey, acc *Account) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[key] = acc.Clone()
}

func (b *Bank) Account(key solana.PublicKey) (*Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	acc, ok := b.accounts[key]
	if !ok || !acc.InUse() {
		return nil, false
	}
	return acc.Clone(), true
}

func (b *Bank) Balance(key solana.PublicKey) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	acc, ok := b.accounts[key]
	if !ok {
		return 0
	}
	return acc.Lamports
}

func (b *Bank) HasAccount(key solana.PublicKey) bool {
	_, ok := b.Account(key)
	return ok
}

func (b *Bank) Slot() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slot
}

// ExecuteTransaction runs the transaction's instructions in order against a
// working copy of the referenced accounts. The fee is debited up front and is
// kept even when the transaction fails; every other effect is rolled back on
// the first instruction error. The returned result carries the execution logs
// in both cases.
func (b *Bank) ExecuteTransaction(trx *Transaction) (*Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slot++
	result := &Result{Slot: b.slot}
	if len(trx.Instructions) == 0 {
		return result, ErrEmptyTransaction
	}
	signed := false
	for _, signer := range trx.Signers {
		if signer == trx.Payer {
			signed = true
			break
		}
	}
	if !signed {
		return result, ErrPayerNotSigner
	}
	payer, ok := b.accounts[trx.Payer]
	if !ok || payer.Lamports < trx.Fee {
		return result, ErrInsufficientFundsForFee
	}
	payer.Lamports -= trx.Fee

	tx := newTxContext(b.registry, trx.Signers, func(key solana.PublicKey) (*Account, bool) {
		acc, ok := b.accounts[key]
		if !ok {
			return nil, false
		}
		return acc.Clone(), true
	})
	var execErr error
	for _, ins := range trx.Instructions {
		if execErr = tx.process(ins); execErr != nil {
			break
		}
	}
	result.Logs = tx.logs
	result.UnitsConsumed = tx.meter.Consumed()
	if execErr != nil {
		b.logger.Printf("transaction failed at slot %d: %s", b.slot, execErr.Error())
		return result, execErr
	}
	for key, acc := range tx.accounts {
		b.accounts[key] = acc
	}
	return result, nil
}
