package backend

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

type AccountCallback interface {
	OnAccountUpdate(account *Account) error
}

// SubscribeAccount pushes every change of one account to the callback over
// the ws connection. The creation flow uses it for the payer wallet, whose
// balance drops on every account it funds.
func (backend *Backend) SubscribeAccount(pubkey solana.PublicKey, cb AccountCallback) error {
	if backend.wsClient == nil {
		return fmt.Errorf("no ws endpoint is configured")
	}
	sub, err := backend.wsClient.AccountSubscribeWithOpts(pubkey, rpc.CommitmentProcessed, solana.EncodingBase64)
	if err != nil {
		return err
	}
	backend.accountSubs = append(backend.accountSubs, sub)
	backend.wg.Add(1)
	go backend.RecvAccount(pubkey, cb, sub)
	return nil
}

func (backend *Backend) RecvAccount(key solana.PublicKey, cb AccountCallback, sub *ws.AccountSubscription) {
	defer backend.wg.Done()
	for {
		got, err := sub.Recv()
		if err != nil {
			backend.logger.Printf("RecvAccount err: %v", err)
			return
		}
		if got == nil {
			backend.logger.Printf("RecvAccount exit")
			return
		}
		account := &Account{
			PubKey:  key,
			Account: &got.Value.Account,
			Height:  got.Context.Slot,
		}
		backend.logger.Printf("receive account, slot %d, %s", account.Height, account.PubKey.String())
		if cb != nil {
			cb.OnAccountUpdate(account)
		}
	}
}
