package sysdemo

import (
	"bytes"
	"errors"

	"github.com/egaotan/system-program-demos/program"
	"github.com/egaotan/system-program-demos/runtime"
	"github.com/egaotan/system-program-demos/system"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrUnknownInstruction   = errors.New("instruction discriminator not found")
	ErrInvalidArguments     = errors.New("instruction arguments did not deserialize")
	ErrNotEnoughAccountKeys = errors.New("not enough account keys")
	ErrInvalidSystemProgram = errors.New("invalid system program account")
)

// Native is the on-chain half of the demo program. create_account performs no
// validation of its own beyond the account schema; every precondition is left
// to the system program CPI and its error is returned verbatim.
type Native struct {
	id solana.PublicKey
}

func NewNative() *Native {
	return &Native{id: program.SysDemo}
}

func NewNativeWithId(id solana.PublicKey) *Native {
	return &Native{id: id}
}

func (n *Native) Id() solana.PublicKey {
	return n.id
}

func (n *Native) Name() string {
	return "system_program_demos"
}

func (n *Native) Execute(ctx *runtime.ExecutionContext, data []byte) error {
	if len(data) < 8 {
		return ErrUnknownInstruction
	}
	discriminator := data[:8]
	if bytes.Equal(discriminator, InstructionInitialize) {
		return n.initialize(ctx)
	}
	if bytes.Equal(discriminator, InstructionCreateAccount) {
		return n.createAccount(ctx, data[8:])
	}
	return ErrUnknownInstruction
}

func (n *Native) initialize(ctx *runtime.ExecutionContext) error {
	ctx.Log("Greetings from: %s", ctx.ProgramId())
	return nil
}

func (n *Native) createAccount(ctx *runtime.ExecutionContext, data []byte) error {
	args, err := DecodeCreateAccountArgs(data)
	if err != nil {
		return ErrInvalidArguments
	}
	if ctx.NumAccounts() < 3 {
		return ErrNotEnoughAccountKeys
	}
	payer := ctx.Account(0)
	newAccount := ctx.Account(1)
	systemProgram := ctx.Account(2)
	if systemProgram.Key != program.System {
		return ErrInvalidSystemProgram
	}
	owner := solana.PublicKeyFromBytes(args.Owner[:])
	ctx.Log("create account, payer: %s, new account: %s", payer.Key, newAccount.Key)
	ctx.Log("lamports: %d, space: %d, owner: %s", args.Lamports, args.Space, owner)
	return ctx.Invoke(system.NewCreateAccountInstruction(payer.Key, newAccount.Key, args.Lamports, args.Space, owner))
}
