package sysdemo

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

func NewProgram(programId solana.PublicKey, ctx context.Context, backend *backend.Backend) *Program {
	p := &Program{
		ctx:     ctx,
		backend: backend,
		log:     log.Default(),
		id:      programId,
	}
	return p
}

func (p *Program) Name() string {
	return "system_program_demos"
}

func (p *Program) Id() solana.PublicKey {
	return p.id
}

func (p *Program) Start() error {
	p.log.Printf("start system_program_demos program: %s......", p.Id())
	return nil
}

func (p *Program) Stop() error {
	p.log.Printf("stop system_program_demos program......")
	return nil
}

func (p *Program) InstructionInitialize() (solana.Instruction, error) {
	return NewInitializeInstruction(p.id), nil
}

func (p *Program) InstructionCreateAccount(payer solana.PublicKey, newAccount solana.PublicKey, lamports uint64, space uint64, ownerId solana.PublicKey) (solana.Instruction, error) {
	return NewCreateAccountInstruction(p.id, payer, newAccount, lamports, space, ownerId)
}

func NewInitializeInstruction(programId solana.PublicKey) solana.Instruction {
	data := make([]byte, 8)
	copy(data, InstructionInitialize)
	return &program.Instruction{
		IsAccounts:  []*solana.AccountMeta{},
		IsData:      data,
		IsProgramID: programId,
	}
}

func NewCreateAccountInstruction(programId solana.PublicKey, payer solana.PublicKey, newAccount solana.PublicKey, lamports uint64, space uint64, ownerId solana.PublicKey) (solana.Instruction, error) {
	args := &CreateAccountArgs{
		Lamports: lamports,
		Space:    space,
	}
	copy(args.Owner[:], ownerId.Bytes())
	argData, err := args.Serialize()
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, 8+CreateAccountArgsSize)
	data = append(data, InstructionCreateAccount...)
	data = append(data, argData...)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			{PublicKey: payer, IsSigner: true, IsWritable: true},
			{PublicKey: newAccount, IsSigner: true, IsWritable: true},
			{PublicKey: program.System, IsSigner: false, IsWritable: false},
		},
		IsData:      data,
		IsProgramID: programId,
	}, nil
}
