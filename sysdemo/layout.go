package sysdemo

import (
	"github.com/egaotan/system-program-demos/program"
	"github.com/near/borsh-go"
)

// Entry-point discriminators, Anchor global namespace.
var (
	InstructionInitialize    = program.Discriminator("initialize")
	InstructionCreateAccount = program.Discriminator("create_account")
)

const CreateAccountArgsSize = 48

// CreateAccountArgs follows the 8-byte discriminator on the wire: two u64
// little endian, then the 32-byte owner key.
type CreateAccountArgs struct {
	Lamports uint64
	Space    uint64
	Owner    [32]byte
}

func (args *CreateAccountArgs) Serialize() ([]byte, error) {
	return borsh.Serialize(*args)
}

func DecodeCreateAccountArgs(data []byte) (*CreateAccountArgs, error) {
	args := new(CreateAccountArgs)
	err := borsh.Deserialize(args, data)
	if err != nil {
		return nil, err
	}
	return args, nil
}
