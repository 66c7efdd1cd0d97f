package runtime

import (
	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
)

type Account struct {
	Lamports   uint64
	Data       []byte
	Owner      solana.PublicKey
	Executable bool
}

func NewAccount(lamports uint64, owner solana.PublicKey) *Account {
	return &Account{
		Lamports: lamports,
		Owner:    owner,
	}
}

func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := &Account{
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		Executable: a.Executable,
	}
	if a.Data != nil {
		c.Data = make([]byte, len(a.Data))
		copy(c.Data, a.Data)
	}
	return c
}

// InUse reports whether the account exists on the ledger. A fresh address has
// zero lamports, no data and the default (system) owner.
func (a *Account) InUse() bool {
	return a.Lamports != 0 || len(a.Data) != 0 || a.Owner != program.System
}
