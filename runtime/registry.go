package runtime

import "github.com/gagliardetto/solana-go"

// NativeProgram is an in-process program loaded into the bank. Execute runs
// one instruction against the accounts the enclosing transaction referenced.
type NativeProgram interface {
	Id() solana.PublicKey
	Name() string
	Execute(ctx *ExecutionContext, data []byte) error
}

type Registry struct {
	programs map[solana.PublicKey]NativeProgram
}

func NewRegistry() *Registry {
	return &Registry{
		programs: make(map[solana.PublicKey]NativeProgram),
	}
}

func (r *Registry) Register(p NativeProgram) {
	r.programs[p.Id()] = p
}

func (r *Registry) Lookup(id solana.PublicKey) (NativeProgram, bool) {
	p, ok := r.programs[id]
	return p, ok
}
