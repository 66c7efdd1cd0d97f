package balancelisten

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/egaotan/system-program-demos/backend"
	"github.com/egaotan/system-program-demos/dingsdk"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"golang.org/x/net/context"
)

// BalanceListen watches the payer balance and raises a ding notification when
// it drops below the configured floor. Every account creation drains the
// payer, so this is how an operator notices the wallet running dry. Updates
// arrive over the ws account subscription; without a ws endpoint it falls
// back to polling.
type BalanceListen struct {
	ctx     context.Context
	wg      sync.WaitGroup
	backend *backend.Backend
	payer   solana.PublicKey
	floor   uint64
	last    uint64
	dsdk    *dingsdk.DingSdk
}

func NewBalanceListen(ctx context.Context, backend *backend.Backend, payer solana.PublicKey, floor uint64, dsdk *dingsdk.DingSdk) *BalanceListen {
	bl := &BalanceListen{
		ctx:     ctx,
		backend: backend,
		payer:   payer,
		floor:   floor,
		dsdk:    dsdk,
	}
	return bl
}

func (bl *BalanceListen) Start() {
	if err := bl.backend.SubscribeAccount(bl.payer, bl); err == nil {
		return
	}
	bl.wg.Add(1)
	go bl.AccountBalance()
}

func (bl *BalanceListen) OnAccountUpdate(account *backend.Account) error {
	if account.Account == nil {
		return nil
	}
	bl.evaluate(account.Account.Lamports)
	return nil
}

func (bl *BalanceListen) AccountBalance() {
	defer bl.wg.Done()
	ticker := time.NewTicker(time.Second * 10)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			bl.check()
		case <-bl.ctx.Done():
			return
		}
	}
}

func (bl *BalanceListen) check() {
	accounts, err := bl.backend.Accounts([]solana.PublicKey{bl.payer})
	if err != nil || len(accounts) != 1 || accounts[0].Account == nil {
		return
	}
	bl.evaluate(accounts[0].Account.Lamports)
}

func (bl *BalanceListen) evaluate(lamports uint64) {
	if lamports == bl.last {
		return
	}
	bl.last = lamports
	if lamports >= bl.floor {
		return
	}
	sol := decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -9)
	ttStr := time.Now().Format("2006-01-02 15:04:05")
	bl.dsdk.Notify(dingsdk.NewTextNotify(fmt.Sprintf("payer balance is low: %s sol;\npayer: %s;\ntime: %s;",
		sol.StringFixed(4), bl.payer.String(), ttStr)))
}
