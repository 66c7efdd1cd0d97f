package runtime_test

import (
	"math"
	"strings"
	"testing"

	"github.com/egaotan/system-program-demos/program"
	"github.com/egaotan/system-program-demos/runtime"
	"github.com/egaotan/system-program-demos/sysdemo"
	"github.com/egaotan/system-program-demos/system"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank() *runtime.Bank {
	registry := runtime.NewRegistry()
	registry.Register(system.NewNative())
	registry.Register(sysdemo.NewNative())
	return runtime.NewBank(registry)
}

func fundedPayer(bank *runtime.Bank, lamports uint64) solana.PublicKey {
	payer := solana.NewWallet().PublicKey()
	bank.SetAccount(payer, runtime.NewAccount(lamports, program.System))
	return payer
}

func createAccountTx(t *testing.T, payer solana.PublicKey, newKey solana.PublicKey, lamports uint64, space uint64, owner solana.PublicKey) *runtime.Transaction {
	ins, err := sysdemo.NewCreateAccountInstruction(program.SysDemo, payer, newKey, lamports, space, owner)
	require.NoError(t, err)
	return &runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer, newKey},
		Instructions: []solana.Instruction{ins},
	}
}

func hasLog(logs []string, want string) bool {
	for _, line := range logs {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}

func TestInitialize(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	result, err := bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer},
		Instructions: []solana.Instruction{sysdemo.NewInitializeInstruction(program.SysDemo)},
	})
	require.NoError(t, err)
	assert.True(t, hasLog(result.Logs, "Greetings from: "+program.SysDemo.String()))
	// no ledger change
	assert.Equal(t, uint64(1000000000), bank.Balance(payer))
}

func TestCreateAccount(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	result, err := bank.ExecuteTransaction(createAccountTx(t, payer, newKey, 1000000, 0, program.System))
	require.NoError(t, err)
	assert.True(t, hasLog(result.Logs, "Program "+program.System.String()+" success"))

	acc, ok := bank.Account(newKey)
	require.True(t, ok)
	assert.Equal(t, uint64(1000000), acc.Lamports)
	assert.Equal(t, 0, len(acc.Data))
	assert.Equal(t, program.System, acc.Owner)
	assert.Equal(t, uint64(1000000000-1000000), bank.Balance(payer))
}

func TestCreateAccountTokenOwned(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	_, err := bank.ExecuteTransaction(createAccountTx(t, payer, newKey, 10, 165, program.Token))
	require.NoError(t, err)

	acc, ok := bank.Account(newKey)
	require.True(t, ok)
	assert.Equal(t, uint64(10), acc.Lamports)
	require.Equal(t, 165, len(acc.Data))
	for _, b := range acc.Data {
		require.Equal(t, byte(0), b)
	}
	assert.Equal(t, program.Token, acc.Owner)
}

func TestCreateAccountMissingSigner(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	trx := createAccountTx(t, payer, newKey, 1000000, 0, program.System)
	trx.Signers = []solana.PublicKey{payer}
	_, err := bank.ExecuteTransaction(trx)
	require.ErrorIs(t, err, runtime.ErrMissingSignature)
	assert.False(t, bank.HasAccount(newKey))
	assert.Equal(t, uint64(1000000000), bank.Balance(payer))
}

func TestCreateAccountInsufficientFunds(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1)
	newKey := solana.NewWallet().PublicKey()
	_, err := bank.ExecuteTransaction(createAccountTx(t, payer, newKey, math.MaxUint64, 0, program.System))
	require.ErrorIs(t, err, system.ErrInsufficientFunds)
	assert.False(t, bank.HasAccount(newKey))
	assert.Equal(t, uint64(1), bank.Balance(payer))
}

func TestCreateAccountTwice(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	_, err := bank.ExecuteTransaction(createAccountTx(t, payer, newKey, 1000000, 0, program.System))
	require.NoError(t, err)

	_, err = bank.ExecuteTransaction(createAccountTx(t, payer, newKey, 1000000, 0, program.System))
	require.ErrorIs(t, err, system.ErrAccountAlreadyInUse)

	acc, ok := bank.Account(newKey)
	require.True(t, ok)
	assert.Equal(t, uint64(1000000), acc.Lamports)
	assert.Equal(t, uint64(1000000000-1000000), bank.Balance(payer))
}

func TestCreateAccountTooLarge(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	_, err := bank.ExecuteTransaction(createAccountTx(t, payer, newKey, 1000000, system.MaxAccountDataSize+1, program.System))
	require.ErrorIs(t, err, system.ErrAccountDataTooLarge)
	assert.False(t, bank.HasAccount(newKey))
	assert.Equal(t, uint64(1000000000), bank.Balance(payer))
}

func TestCreateAccountWrongSystemProgram(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	good, err := sysdemo.NewCreateAccountInstruction(program.SysDemo, payer, newKey, 1000000, 0, program.System)
	require.NoError(t, err)
	data, err := good.Data()
	require.NoError(t, err)
	bad := &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			{PublicKey: payer, IsSigner: true, IsWritable: true},
			{PublicKey: newKey, IsSigner: true, IsWritable: true},
			{PublicKey: program.Token, IsSigner: false, IsWritable: false},
		},
		IsData:      data,
		IsProgramID: program.SysDemo,
	}
	_, err = bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer, newKey},
		Instructions: []solana.Instruction{bad},
	})
	require.ErrorIs(t, err, sysdemo.ErrInvalidSystemProgram)
	assert.False(t, bank.HasAccount(newKey))
	assert.Equal(t, uint64(1000000000), bank.Balance(payer))
}

func TestUnknownProgram(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	ins := &program.Instruction{
		IsAccounts:  []*solana.AccountMeta{},
		IsData:      []byte{0},
		IsProgramID: solana.NewWallet().PublicKey(),
	}
	_, err := bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer},
		Instructions: []solana.Instruction{ins},
	})
	require.ErrorIs(t, err, runtime.ErrUnknownProgram)
}

func TestRollbackKeepsEarlierInstructions(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	other := solana.NewWallet().PublicKey()
	create, err := sysdemo.NewCreateAccountInstruction(program.SysDemo, payer, newKey, 1000000, 0, program.System)
	require.NoError(t, err)
	drain := system.NewTransferInstruction(payer, other, math.MaxUint64)
	_, err = bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer, newKey},
		Instructions: []solana.Instruction{create, drain},
	})
	require.ErrorIs(t, err, system.ErrInsufficientFunds)
	// the successful first instruction is rolled back with the failed second
	assert.False(t, bank.HasAccount(newKey))
	assert.Equal(t, uint64(1000000000), bank.Balance(payer))
	assert.Equal(t, uint64(0), bank.Balance(other))
}

func TestFeeKeptOnFailure(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	newKey := solana.NewWallet().PublicKey()
	trx := createAccountTx(t, payer, newKey, math.MaxUint64, 0, program.System)
	trx.Fee = 5000
	_, err := bank.ExecuteTransaction(trx)
	require.ErrorIs(t, err, system.ErrInsufficientFunds)
	assert.Equal(t, uint64(1000000000-5000), bank.Balance(payer))
}

func TestSystemTransfer(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	to := solana.NewWallet().PublicKey()
	_, err := bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer},
		Instructions: []solana.Instruction{system.NewTransferInstruction(payer, to, 250000)},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(250000), bank.Balance(to))
	assert.Equal(t, uint64(1000000000-250000), bank.Balance(payer))
}

func TestSystemAllocateAssign(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	target := solana.NewWallet().PublicKey()
	_, err := bank.ExecuteTransaction(&runtime.Transaction{
		Payer:   payer,
		Signers: []solana.PublicKey{payer, target},
		Instructions: []solana.Instruction{
			system.NewTransferInstruction(payer, target, 1000),
			system.NewAllocateInstruction(target, 64),
			system.NewAssignInstruction(target, program.Token),
		},
	})
	require.NoError(t, err)
	acc, ok := bank.Account(target)
	require.True(t, ok)
	assert.Equal(t, uint64(1000), acc.Lamports)
	assert.Equal(t, 64, len(acc.Data))
	assert.Equal(t, program.Token, acc.Owner)
}

func TestComputeBudget(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	count := int(runtime.TransactionComputeBudget/runtime.InvokeUnits) + 1
	ins := make([]solana.Instruction, 0, count)
	for i := 0; i < count; i++ {
		ins = append(ins, sysdemo.NewInitializeInstruction(program.SysDemo))
	}
	_, err := bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{payer},
		Instructions: ins,
	})
	require.ErrorIs(t, err, runtime.ErrComputeBudgetExceeded)
	assert.Equal(t, uint64(1000000000), bank.Balance(payer))
}

func TestPayerMustSign(t *testing.T) {
	bank := newTestBank()
	payer := fundedPayer(bank, 1000000000)
	_, err := bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        payer,
		Signers:      []solana.PublicKey{},
		Instructions: []solana.Instruction{sysdemo.NewInitializeInstruction(program.SysDemo)},
	})
	require.ErrorIs(t, err, runtime.ErrPayerNotSigner)
}
