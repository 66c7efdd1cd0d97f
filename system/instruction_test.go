package system

import (
	"encoding/binary"
	"testing"

	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAccountInstruction(t *testing.T) {
	from := solana.NewWallet().PublicKey()
	newKey := solana.NewWallet().PublicKey()
	ins := NewCreateAccountInstruction(from, newKey, 1000000, 165, program.Token)
	data, err := ins.Data()
	require.NoError(t, err)
	require.Equal(t, 52, len(data))
	assert.Equal(t, InstructionCreateAccount, binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint64(1000000), binary.LittleEndian.Uint64(data[4:]))
	assert.Equal(t, uint64(165), binary.LittleEndian.Uint64(data[12:]))
	assert.Equal(t, program.Token.Bytes(), data[20:52])
	assert.Equal(t, program.System, ins.ProgramID())
	metas := ins.Accounts()
	require.Equal(t, 2, len(metas))
	assert.Equal(t, from, metas[0].PublicKey)
	assert.True(t, metas[0].IsSigner)
	assert.True(t, metas[0].IsWritable)
	assert.Equal(t, newKey, metas[1].PublicKey)
	assert.True(t, metas[1].IsSigner)
	assert.True(t, metas[1].IsWritable)
}

func TestNewTransferInstruction(t *testing.T) {
	from := solana.NewWallet().PublicKey()
	to := solana.NewWallet().PublicKey()
	ins := NewTransferInstruction(from, to, 42)
	data, err := ins.Data()
	require.NoError(t, err)
	require.Equal(t, 12, len(data))
	assert.Equal(t, InstructionTransfer, binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint64(42), binary.LittleEndian.Uint64(data[4:]))
	metas := ins.Accounts()
	require.Equal(t, 2, len(metas))
	assert.True(t, metas[0].IsSigner)
	assert.False(t, metas[1].IsSigner)
	assert.True(t, metas[1].IsWritable)
}

func TestNewAllocateInstruction(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	ins := NewAllocateInstruction(key, 128)
	data, err := ins.Data()
	require.NoError(t, err)
	require.Equal(t, 12, len(data))
	assert.Equal(t, InstructionAllocate, binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint64(128), binary.LittleEndian.Uint64(data[4:]))
}
