package system

import (
	"context"
	"log"

	"github.com/egaotan/system-program-demos/backend"
	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
)

type Program struct {
	backend *backend.Backend
	log     *log.Logger
	ctx     context.Context
	id      solana.PublicKey
}

func NewProgram(context context.Context, backend *backend.Backend) *Program {
	p := &Program{
		ctx:     context,
		backend: backend,
		log:     log.Default(),
		id:      program.System,
	}
	return p
}

func (p *Program) Name() string {
	return "system"
}

func (p *Program) Id() solana.PublicKey {
	return p.id
}

func (p *Program) Start() error {
	p.log.Printf("start system program: %s......", p.Id())
	return nil
}

func (p *Program) Stop() error {
	p.log.Printf("stop system program......")
	return nil
}

func (p *Program) InstructionCreateAccount(fromKey solana.PublicKey, newKey solana.PublicKey, lamports uint64, space uint64, ownerId solana.PublicKey) (solana.Instruction, error) {
	return NewCreateAccountInstruction(fromKey, newKey, lamports, space, ownerId), nil
}

// InstructionCreateAccountRentFree funds the new account with the minimum
// balance that makes it rent exempt for the requested space.
func (p *Program) InstructionCreateAccountRentFree(fromKey solana.PublicKey, newKey solana.PublicKey, space uint64, ownerId solana.PublicKey) (solana.Instruction, error) {
	lamports, err := p.backend.GetMinimumBalanceForRentExemption(space)
	if err != nil {
		return nil, err
	}
	return NewCreateAccountInstruction(fromKey, newKey, lamports, space, ownerId), nil
}

func (p *Program) InstructionTransfer(fromKey solana.PublicKey, toKey solana.PublicKey, lamports uint64) (solana.Instruction, error) {
	return NewTransferInstruction(fromKey, toKey, lamports), nil
}

func (p *Program) InstructionAssign(key solana.PublicKey, ownerId solana.PublicKey) (solana.Instruction, error) {
	return NewAssignInstruction(key, ownerId), nil
}

func (p *Program) InstructionAllocate(key solana.PublicKey, space uint64) (solana.Instruction, error) {
	return NewAllocateInstruction(key, space), nil
}
