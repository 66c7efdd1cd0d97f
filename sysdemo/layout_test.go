package sysdemo

import (
	"encoding/binary"
	"testing"

	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminators(t *testing.T) {
	assert.Equal(t, []byte{175, 175, 109, 31, 13, 152, 155, 237}, InstructionInitialize)
	assert.Equal(t, []byte{99, 20, 130, 119, 196, 235, 131, 149}, InstructionCreateAccount)
}

func TestCreateAccountArgs(t *testing.T) {
	args := &CreateAccountArgs{
		Lamports: 1000000,
		Space:    165,
	}
	copy(args.Owner[:], program.Token.Bytes())
	data, err := args.Serialize()
	require.NoError(t, err)
	require.Equal(t, CreateAccountArgsSize, len(data))
	assert.Equal(t, uint64(1000000), binary.LittleEndian.Uint64(data[0:]))
	assert.Equal(t, uint64(165), binary.LittleEndian.Uint64(data[8:]))
	assert.Equal(t, program.Token.Bytes(), data[16:48])

	decoded, err := DecodeCreateAccountArgs(data)
	require.NoError(t, err)
	assert.Equal(t, args.Lamports, decoded.Lamports)
	assert.Equal(t, args.Space, decoded.Space)
	assert.Equal(t, args.Owner, decoded.Owner)
}

func TestNewInitializeInstruction(t *testing.T) {
	ins := NewInitializeInstruction(program.SysDemo)
	data, err := ins.Data()
	require.NoError(t, err)
	assert.Equal(t, InstructionInitialize, data)
	assert.Equal(t, 0, len(ins.Accounts()))
	assert.Equal(t, program.SysDemo, ins.ProgramID())
}

func TestNewCreateAccountInstruction(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	newKey := solana.NewWallet().PublicKey()
	ins, err := NewCreateAccountInstruction(program.SysDemo, payer, newKey, 1000000, 165, program.Token)
	require.NoError(t, err)
	data, err := ins.Data()
	require.NoError(t, err)
	require.Equal(t, 8+CreateAccountArgsSize, len(data))
	assert.Equal(t, InstructionCreateAccount, data[:8])
	assert.Equal(t, uint64(1000000), binary.LittleEndian.Uint64(data[8:]))
	assert.Equal(t, uint64(165), binary.LittleEndian.Uint64(data[16:]))
	assert.Equal(t, program.Token.Bytes(), data[24:56])
	metas := ins.Accounts()
	require.Equal(t, 3, len(metas))
	assert.Equal(t, payer, metas[0].PublicKey)
	assert.True(t, metas[0].IsSigner)
	assert.True(t, metas[0].IsWritable)
	assert.Equal(t, newKey, metas[1].PublicKey)
	assert.True(t, metas[1].IsSigner)
	assert.True(t, metas[1].IsWritable)
	assert.Equal(t, program.System, metas[2].PublicKey)
	assert.False(t, metas[2].IsSigner)
	assert.False(t, metas[2].IsWritable)
}
