package backend

import (
	"context"
	"log"
	"sync"

	"github.com/egaotan/system-program-demos/config"
	"github.com/egaotan/system-program-demos/store"
	"github.com/egaotan/system-program-demos/utils"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

type Backend struct {
	logger          *log.Logger
	txLogger        *log.Logger
	rpcClient       *rpc.Client
	wsClient        *ws.Client
	ctx             context.Context
	wg              sync.WaitGroup
	accountSubs     []*ws.AccountSubscription
	wallets         []*Wallet
	player          solana.PublicKey
	blockHashLock   sync.Mutex
	cachedBlockHash []solana.Hash
	transaction     bool
	store           *store.Store
	commandChans    []chan *Command
	clients         []*rpc.Client
}

func NewBackend(ctx context.Context, nodes []*config.Node, transaction bool, transactionNodes []*config.Node) *Backend {
	rpcClient := rpc.New(nodes[0].Rpc)
	var wsClient *ws.Client
	if nodes[0].Ws != "" {
		var err error
		wsClient, err = ws.Connect(ctx, nodes[0].Ws)
		if err != nil {
			panic(err)
		}
	}
	backend := &Backend{
		rpcClient:       rpcClient,
		wsClient:        wsClient,
		ctx:             ctx,
		logger:          utils.NewLog(config.LogPath, config.BackendLog),
		txLogger:        utils.NewLog(config.LogPath, config.SentTxHash),
		accountSubs:     make([]*ws.AccountSubscription, 0),
		cachedBlockHash: make([]solana.Hash, 0, 3),
		transaction:     transaction,
	}
	commandChans := make([]chan *Command, 0, len(transactionNodes))
	clients := make([]*rpc.Client, 0, len(transactionNodes))
	for _, node := range transactionNodes {
		commandChans = append(commandChans, make(chan *Command, 1024))
		clients = append(clients, rpc.New(node.Rpc))
	}
	backend.commandChans = commandChans
	backend.clients = clients
	return backend
}

func (backend *Backend) Start() {
	if !backend.transaction {
		return
	}
	backend.startExecutor()
	backend.wg.Add(1)
	go backend.CacheRecentBlockHash()
}

func (backend *Backend) Stop() {
	for _, accountSub := range backend.accountSubs {
		accountSub.Unsubscribe()
	}
	backend.wg.Wait()
}

func (backend *Backend) SetStore(store *store.Store) {
	backend.store = store
}

func (backend *Backend) Player() solana.PublicKey {
	return backend.player
}
