package system

import (
	"encoding/binary"

	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
)

// System program discriminants, u32 little endian at the head of the
// instruction data.
const (
	InstructionCreateAccount uint32 = iota
	InstructionAssign
	InstructionTransfer
	InstructionCreateAccountWithSeed
	InstructionAdvanceNonceAccount
	InstructionWithdrawNonceAccount
	InstructionInitializeNonceAccount
	InstructionAuthorizeNonceAccount
	InstructionAllocate
)

func NewCreateAccountInstruction(fromKey solana.PublicKey, newKey solana.PublicKey, lamports uint64, space uint64, ownerId solana.PublicKey) solana.Instruction {
	data := make([]byte, 52)
	binary.LittleEndian.PutUint32(data[0:], InstructionCreateAccount)
	binary.LittleEndian.PutUint64(data[4:], lamports)
	binary.LittleEndian.PutUint64(data[12:], space)
	copy(data[20:], ownerId.Bytes())
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			{PublicKey: fromKey, IsSigner: true, IsWritable: true},
			{PublicKey: newKey, IsSigner: true, IsWritable: true},
		},
		IsData:      data,
		IsProgramID: program.System,
	}
}

func NewTransferInstruction(fromKey solana.PublicKey, toKey solana.PublicKey, lamports uint64) solana.Instruction {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:], InstructionTransfer)
	binary.LittleEndian.PutUint64(data[4:], lamports)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			{PublicKey: fromKey, IsSigner: true, IsWritable: true},
			{PublicKey: toKey, IsSigner: false, IsWritable: true},
		},
		IsData:      data,
		IsProgramID: program.System,
	}
}

func NewAssignInstruction(key solana.PublicKey, ownerId solana.PublicKey) solana.Instruction {
	data := make([]byte, 36)
	binary.LittleEndian.PutUint32(data[0:], InstructionAssign)
	copy(data[4:], ownerId.Bytes())
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			{PublicKey: key, IsSigner: true, IsWritable: true},
		},
		IsData:      data,
		IsProgramID: program.System,
	}
}

func NewAllocateInstruction(key solana.PublicKey, space uint64) solana.Instruction {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:], InstructionAllocate)
	binary.LittleEndian.PutUint64(data[4:], space)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			{PublicKey: key, IsSigner: true, IsWritable: true},
		},
		IsData:      data,
		IsProgramID: program.System,
	}
}
