package program

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
)

type Instruction struct {
	IsAccounts  []*solana.AccountMeta
	IsData      []byte
	IsProgramID solana.PublicKey
}

func (i *Instruction) Accounts() []*solana.AccountMeta {
	return i.IsAccounts
}

func (i *Instruction) ProgramID() solana.PublicKey {
	return i.IsProgramID
}

func (i *Instruction) Data() ([]byte, error) {
	return i.IsData, nil
}

// Discriminator derives the 8 leading bytes an Anchor program dispatches on,
// sha256("global:<name>")[0:8].
func Discriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	return hash[:8]
}
