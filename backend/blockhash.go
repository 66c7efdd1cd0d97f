package backend

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func (backend *Backend) CacheRecentBlockHash() {
	defer backend.wg.Done()
	fetch := func() {
		getRecentBlockHashResult, err := backend.rpcClient.GetRecentBlockhash(backend.ctx, rpc.CommitmentFinalized)
		if err != nil {
			backend.logger.Printf("GetRecentBlockhash err: %s", err.Error())
			return
		}
		backend.blockHashLock.Lock()
		defer backend.blockHashLock.Unlock()
		backend.cachedBlockHash = append(backend.cachedBlockHash, getRecentBlockHashResult.Value.Blockhash)
		if len(backend.cachedBlockHash) > 3 {
			backend.cachedBlockHash = backend.cachedBlockHash[len(backend.cachedBlockHash)-3:]
		}
	}
	fetch()
	ticker := time.NewTicker(time.Second * 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fetch()
		case <-backend.ctx.Done():
			return
		}
	}
}

func (backend *Backend) GetRecentBlockHash(level int) solana.Hash {
	backend.blockHashLock.Lock()
	defer backend.blockHashLock.Unlock()
	if len(backend.cachedBlockHash) == 0 {
		return solana.Hash{}
	}
	if level >= len(backend.cachedBlockHash) {
		level = len(backend.cachedBlockHash) - 1
	}
	return backend.cachedBlockHash[len(backend.cachedBlockHash)-1-level]
}
