package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/egaotan/system-program-demos/dingsdk"
	"github.com/gagliardetto/solana-go"
)

type CreationData struct {
	id         uint64
	payer      solana.PublicKey
	newAccount solana.PublicKey
	lamports   uint64
	space      uint64
	owner      solana.PublicKey
}

type Notify struct {
	ctx  context.Context
	wg   sync.WaitGroup
	data chan *CreationData
	dsdk *dingsdk.DingSdk
}

func NewNotify(ctx context.Context, dsdk *dingsdk.DingSdk) *Notify {
	notify := &Notify{
		ctx:  ctx,
		dsdk: dsdk,
		data: make(chan *CreationData, 32),
	}
	return notify
}

func (notify *Notify) Start() {
	notify.wg.Add(1)
	go notify.listen()
}

func (notify *Notify) Commit(data *CreationData) {
	notify.data <- data
}

func (notify *Notify) listen() {
	defer notify.wg.Done()
	for {
		select {
		case data := <-notify.data:
			notify.tryNotify(data)
		case <-notify.ctx.Done():
			return
		}
	}
}

func (notify *Notify) tryNotify(data *CreationData) {
	items := make([]string, 0)
	tt := int64(data.id)
	ttStr := time.Unix(tt/1000000, 0).Format("2006-01-02 15:04:05")
	items = append(items, "create account: ")
	items = append(items, fmt.Sprintf("id: %d;", tt))
	items = append(items, fmt.Sprintf("time: %s;", ttStr))
	items = append(items, fmt.Sprintf("payer: %s;", data.payer.String()))
	items = append(items, fmt.Sprintf("new account: %s;", data.newAccount.String()))
	items = append(items, fmt.Sprintf("amount: %s sol;", lamportsToSol(data.lamports)))
	items = append(items, fmt.Sprintf("space: %d;", data.space))
	items = append(items, fmt.Sprintf("owner: %s;", data.owner.String()))
	notify.dsdk.Notify(dingsdk.NewTextNotify(strings.Join(items, "\n")))
}
