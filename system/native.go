package system

import (
	"encoding/binary"

	"github.com/egaotan/system-program-demos/program"
	"github.com/egaotan/system-program-demos/runtime"
	"github.com/gagliardetto/solana-go"
)

// Native is the in-process system program. It owns every account until the
// account is assigned to another program.
type Native struct {
	id solana.PublicKey
}

func NewNative() *Native {
	return &Native{id: program.System}
}

func (n *Native) Id() solana.PublicKey {
	return n.id
}

func (n *Native) Name() string {
	return "system"
}

func (n *Native) Execute(ctx *runtime.ExecutionContext, data []byte) error {
	if len(data) < 4 {
		return ErrInvalidInstructionData
	}
	switch binary.LittleEndian.Uint32(data) {
	case InstructionCreateAccount:
		if len(data) < 52 {
			return ErrInvalidInstructionData
		}
		lamports := binary.LittleEndian.Uint64(data[4:])
		space := binary.LittleEndian.Uint64(data[12:])
		owner := solana.PublicKeyFromBytes(data[20:52])
		return n.createAccount(ctx, lamports, space, owner)
	case InstructionTransfer:
		if len(data) < 12 {
			return ErrInvalidInstructionData
		}
		return n.transfer(ctx, binary.LittleEndian.Uint64(data[4:]))
	case InstructionAssign:
		if len(data) < 36 {
			return ErrInvalidInstructionData
		}
		return n.assign(ctx, solana.PublicKeyFromBytes(data[4:36]))
	case InstructionAllocate:
		if len(data) < 12 {
			return ErrInvalidInstructionData
		}
		return n.allocate(ctx, binary.LittleEndian.Uint64(data[4:]))
	default:
		return ErrInvalidInstructionData
	}
}

func (n *Native) createAccount(ctx *runtime.ExecutionContext, lamports uint64, space uint64, owner solana.PublicKey) error {
	if ctx.NumAccounts() < 2 {
		return ErrNotEnoughAccountKeys
	}
	from := ctx.Account(0)
	to := ctx.Account(1)
	if !from.IsSigner || !to.IsSigner {
		return ErrMissingRequiredSignature
	}
	if to.Account.InUse() {
		ctx.Log("Create Account: account %s already in use", to.Key)
		return ErrAccountAlreadyInUse
	}
	if space > MaxAccountDataSize {
		return ErrAccountDataTooLarge
	}
	if from.Account.Lamports < lamports {
		ctx.Log("Transfer: insufficient lamports %d, need %d", from.Account.Lamports, lamports)
		return ErrInsufficientFunds
	}
	from.Account.Lamports -= lamports
	to.Account.Lamports += lamports
	to.Account.Data = make([]byte, space)
	to.Account.Owner = owner
	return nil
}

func (n *Native) transfer(ctx *runtime.ExecutionContext, lamports uint64) error {
	if ctx.NumAccounts() < 2 {
		return ErrNotEnoughAccountKeys
	}
	from := ctx.Account(0)
	to := ctx.Account(1)
	if !from.IsSigner {
		return ErrMissingRequiredSignature
	}
	if from.Account.Owner != n.id {
		return ErrInvalidAccountOwner
	}
	if from.Account.Lamports < lamports {
		ctx.Log("Transfer: insufficient lamports %d, need %d", from.Account.Lamports, lamports)
		return ErrInsufficientFunds
	}
	from.Account.Lamports -= lamports
	to.Account.Lamports += lamports
	return nil
}

func (n *Native) assign(ctx *runtime.ExecutionContext, owner solana.PublicKey) error {
	if ctx.NumAccounts() < 1 {
		return ErrNotEnoughAccountKeys
	}
	target := ctx.Account(0)
	if !target.IsSigner {
		return ErrMissingRequiredSignature
	}
	if target.Account.Owner != n.id {
		return ErrInvalidAccountOwner
	}
	target.Account.Owner = owner
	return nil
}

func (n *Native) allocate(ctx *runtime.ExecutionContext, space uint64) error {
	if ctx.NumAccounts() < 1 {
		return ErrNotEnoughAccountKeys
	}
	target := ctx.Account(0)
	if !target.IsSigner {
		return ErrMissingRequiredSignature
	}
	if len(target.Account.Data) != 0 || target.Account.Owner != n.id {
		ctx.Log("Allocate: account %s already in use", target.Key)
		return ErrAccountAlreadyInUse
	}
	if space > MaxAccountDataSize {
		return ErrAccountDataTooLarge
	}
	target.Account.Data = make([]byte, space)
	return nil
}
