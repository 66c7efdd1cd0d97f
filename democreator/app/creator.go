package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/egaotan/system-program-demos/backend"
	"github.com/egaotan/system-program-demos/balancelisten"
	"github.com/egaotan/system-program-demos/config"
	"github.com/egaotan/system-program-demos/dingsdk"
	"github.com/egaotan/system-program-demos/networkdetect"
	"github.com/egaotan/system-program-demos/program"
	"github.com/egaotan/system-program-demos/runtime"
	"github.com/egaotan/system-program-demos/store"
	"github.com/egaotan/system-program-demos/sysdemo"
	"github.com/egaotan/system-program-demos/system"
	"github.com/egaotan/system-program-demos/utils"
	"github.com/gagliardetto/solana-go"
)

var (
	Init    = int32(0)
	Started = int32(1)
	Pause   = int32(2)
	Stopped = int32(3)
)

const LocalFee = uint64(5000)

type Creator struct {
	ctx           context.Context
	log           *log.Logger
	config        *config.Config
	wg            sync.WaitGroup
	status        int32
	backend       *backend.Backend
	system        *system.Program
	demo          *sysdemo.Program
	bank          *runtime.Bank
	store         *store.Store
	notify        *Notify
	balanceListen *balancelisten.BalanceListen
	nd            *networkdetect.NetworkDetector
	dsdk          *dingsdk.DingSdk
	httpServer    *http.Server
}

func NewCreator(ctx context.Context, cfg *config.Config) *Creator {
	creator := &Creator{
		ctx:    ctx,
		config: cfg,
		status: Init,
	}
	creator.log = utils.NewLog(config.LogPath, config.CreatorLog)
	programId := cfg.Program
	if programId.IsZero() {
		programId = program.SysDemo
	}
	if cfg.Local && len(cfg.Nodes) == 0 {
		cfg.Nodes = append(cfg.Nodes, &config.Node{Rpc: "http://127.0.0.1:8899", Usable: true})
	}
	if cfg.NetStatus && len(cfg.Nodes) > 1 {
		peers := make([]string, 0, len(cfg.Nodes))
		for _, node := range cfg.Nodes {
			peers = append(peers, node.Rpc)
		}
		best, ttl := networkdetect.DetectPeers(peers)
		creator.log.Printf("best node: %s, ttl: %d", best, ttl)
		for i, node := range cfg.Nodes {
			if node.Rpc == best && i != 0 {
				cfg.Nodes[0], cfg.Nodes[i] = cfg.Nodes[i], cfg.Nodes[0]
				break
			}
		}
	}
	creator.backend = backend.NewBackend(ctx, cfg.Nodes, !cfg.Local, cfg.TransactionNodes)
	creator.backend.ImportWallet(cfg.Key)
	creator.backend.SetPlayer(cfg.User)
	if cfg.DingUrl != "" {
		creator.dsdk = dingsdk.NewDingSdk(cfg.DingUrl)
	}
	if cfg.DBUrl != "" {
		creator.store = store.NewStore(ctx, cfg.DBUrl, cfg.DBScheme, cfg.DBUser, cfg.DBPasswd)
		creator.backend.SetStore(creator.store)
	}
	creator.system = system.NewProgram(ctx, creator.backend)
	creator.demo = sysdemo.NewProgram(programId, ctx, creator.backend)
	if cfg.Local {
		registry := runtime.NewRegistry()
		registry.Register(system.NewNative())
		registry.Register(sysdemo.NewNativeWithId(programId))
		creator.bank = runtime.NewBank(registry)
		creator.bank.SetLogger(creator.log)
		lamports := cfg.LocalLamports
		if lamports == 0 {
			lamports = 10000000000
		}
		creator.bank.SetAccount(cfg.User, runtime.NewAccount(lamports, program.System))
	}
	if creator.dsdk != nil {
		creator.notify = NewNotify(ctx, creator.dsdk)
		if cfg.BalanceFloor > 0 && !cfg.Local {
			creator.balanceListen = balancelisten.NewBalanceListen(ctx, creator.backend, cfg.User, cfg.BalanceFloor, creator.dsdk)
		}
		if cfg.NetStatus && len(cfg.Nodes) > 0 {
			creator.nd = networkdetect.NewNetworkDetector(cfg.Nodes[0].Rpc, creator.dsdk)
		}
	}
	return creator
}

func (creator *Creator) Service() {
	creator.Start()
	<-creator.ctx.Done()
	creator.Stop()
}

func (creator *Creator) Start() {
	if creator.store != nil {
		creator.store.Start()
	}
	creator.backend.Start()
	creator.system.Start()
	creator.demo.Start()
	if creator.notify != nil {
		creator.notify.Start()
	}
	if creator.balanceListen != nil {
		creator.balanceListen.Start()
	}
	if creator.nd != nil {
		creator.nd.Start()
	}
	creator.StartRPCServer()
	atomic.StoreInt32(&creator.status, Started)
	creator.log.Printf("account creator is started, program: %s", creator.demo.Id())
}

func (creator *Creator) Stop() {
	atomic.StoreInt32(&creator.status, Stopped)
	if creator.httpServer != nil {
		creator.httpServer.Shutdown(context.Background())
	}
	if creator.nd != nil {
		creator.nd.Stop()
	}
	creator.demo.Stop()
	creator.system.Stop()
	creator.backend.Stop()
	if creator.store != nil {
		creator.store.Stop()
	}
	creator.log.Printf("account creator is stopped")
}

func (creator *Creator) Initialize() (uint64, error) {
	if atomic.LoadInt32(&creator.status) != Started {
		return 0, fmt.Errorf("account creator is not started")
	}
	id := uint64(time.Now().UnixNano() / 1000)
	ins, err := creator.demo.InstructionInitialize()
	if err != nil {
		return 0, err
	}
	if creator.config.Local {
		return id, creator.executeLocal(id, []solana.Instruction{ins}, []solana.PublicKey{creator.config.User})
	}
	creator.backend.Commit(0, id, []solana.Instruction{ins}, creator.config.Simulate, nil, nil)
	return id, nil
}

// CreateAccount makes a fresh keypair and asks the demo program to create the
// account for it. The new key signs the transaction alongside the payer.
func (creator *Creator) CreateAccount(lamports uint64, space uint64, ownerId solana.PublicKey) (uint64, solana.PublicKey, error) {
	if atomic.LoadInt32(&creator.status) != Started {
		return 0, solana.PublicKey{}, fmt.Errorf("account creator is not started")
	}
	id := uint64(time.Now().UnixNano() / 1000)
	wallet := solana.NewWallet()
	newKey := wallet.PublicKey()
	creator.backend.ImportWallet(wallet.PrivateKey.String())
	creator.backend.SaveWallet()
	ins, err := creator.demo.InstructionCreateAccount(creator.config.User, newKey, lamports, space, ownerId)
	if err != nil {
		return 0, solana.PublicKey{}, err
	}
	if creator.store != nil {
		creator.store.StoreCommittedCreation(&store.CommittedCreation{
			Id:         id,
			Payer:      creator.config.User.String(),
			NewAccount: newKey.String(),
			Lamports:   lamports,
			Space:      space,
			Owner:      ownerId.String(),
		})
	}
	if creator.config.Local {
		err = creator.executeLocal(id, []solana.Instruction{ins},
			[]solana.PublicKey{creator.config.User, newKey})
		if err != nil {
			return id, newKey, err
		}
	} else {
		creator.backend.Commit(0, id, []solana.Instruction{ins}, creator.config.Simulate,
			[]solana.PublicKey{creator.config.User, newKey}, nil)
	}
	if creator.notify != nil {
		creator.notify.Commit(&CreationData{
			id:         id,
			payer:      creator.config.User,
			newAccount: newKey,
			lamports:   lamports,
			space:      space,
			owner:      ownerId,
		})
	}
	return id, newKey, nil
}

func (creator *Creator) executeLocal(id uint64, ins []solana.Instruction, signers []solana.PublicKey) error {
	result, err := creator.bank.ExecuteTransaction(&runtime.Transaction{
		Payer:        creator.config.User,
		Fee:          LocalFee,
		Signers:      signers,
		Instructions: ins,
	})
	for _, line := range result.Logs {
		creator.log.Printf("%s", line)
	}
	if err != nil {
		creator.log.Printf("local execute %d err: %s", id, err.Error())
		return err
	}
	creator.log.Printf("local execute %d success, slot: %d, units consumed: %d", id, result.Slot, result.UnitsConsumed)
	return nil
}
