package program

import "github.com/gagliardetto/solana-go"

var (
	System   = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	Token    = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	SysClock = solana.MustPublicKeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	SysRent  = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
	SysDemo  = solana.MustPublicKeyFromBase58("8HdbTzXojDz31raV3k19x3XWb4hx7AwjtpXJ7BBLC81Q")
)

type Program interface {
	Start() error
	Stop() error
	Name() string
	Id() solana.PublicKey
}
