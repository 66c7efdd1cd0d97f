package app

import (
	"math/big"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/egaotan/system-program-demos/program"
	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Lamports uint64 `json:"lamports"`
	Space    uint64 `json:"space"`
	Owner    string `json:"owner"`
}

type CommittedCreation struct {
	Id         uint64 `json:"id"`
	Time       string `json:"time"`
	Payer      string `json:"payer"`
	NewAccount string `json:"new_account"`
	Amount     string `json:"amount"`
	Space      uint64 `json:"space"`
	Owner      string `json:"owner"`
}

type ExecutedCreation struct {
	Id             uint64 `json:"id"`
	Time           string `json:"time"`
	SendTime       string `json:"send_time"`
	ResponseTime   string `json:"response_time"`
	FinishTime     string `json:"finish_time"`
	ExecutorId     int    `json:"executor_id"`
	ExecuteCounter int    `json:"execute_counter"`
	Signature      string `json:"signature"`
}

func (creator *Creator) StartRPCServer() {
	if creator.config.Listen == "" {
		return
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/api/status", creator.StatusReq)
	router.GET("/api/pause", creator.PauseReq)
	router.GET("/api/resume", creator.ResumeReq)
	router.POST("/api/initialize", creator.InitializeReq)
	router.POST("/api/createaccount", creator.CreateAccountReq)
	router.GET("/api/creation/:id", creator.CreationReq)
	creator.httpServer = &http.Server{
		Addr:    creator.config.Listen,
		Handler: router,
	}
	go func() {
		if err := creator.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			creator.log.Printf("http server err: %s", err.Error())
		}
	}()
}

func (creator *Creator) StatusReq(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  atomic.LoadInt32(&creator.status),
		"program": creator.demo.Id().String(),
		"payer":   creator.config.User.String(),
		"local":   creator.config.Local,
	})
}

func (creator *Creator) PauseReq(c *gin.Context) {
	atomic.StoreInt32(&creator.status, Pause)
	c.JSON(http.StatusOK, gin.H{"status": Pause})
}

func (creator *Creator) ResumeReq(c *gin.Context) {
	atomic.StoreInt32(&creator.status, Started)
	c.JSON(http.StatusOK, gin.H{"status": Started})
}

func (creator *Creator) InitializeReq(c *gin.Context) {
	id, err := creator.Initialize()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (creator *Creator) CreateAccountReq(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	ownerId := program.System
	if req.Owner != "" {
		var err error
		ownerId, err = solana.PublicKeyFromBase58(req.Owner)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
			return
		}
	}
	id, newKey, err := creator.CreateAccount(req.Lamports, req.Space, ownerId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"new_account": newKey.String(),
		"amount":      lamportsToSol(req.Lamports),
		"space":       req.Space,
		"owner":       ownerId.String(),
	})
}

func (creator *Creator) CreationReq(c *gin.Context) {
	if creator.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "store is not configured"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	committed := make([]*CommittedCreation, 0)
	if items, err := creator.store.GetCommittedCreation(id); err == nil {
		for _, item := range items {
			committed = append(committed, &CommittedCreation{
				Id:         item.Id,
				Time:       formatTime(item.Id),
				Payer:      item.Payer,
				NewAccount: item.NewAccount,
				Amount:     lamportsToSol(item.Lamports),
				Space:      item.Space,
				Owner:      item.Owner,
			})
		}
	}
	executed := make([]*ExecutedCreation, 0)
	if items, err := creator.store.GetExecutedCreation(id); err == nil {
		for _, item := range items {
			executed = append(executed, &ExecutedCreation{
				Id:             item.Id,
				Time:           formatTime(item.Id),
				SendTime:       formatTime(item.SendTime),
				ResponseTime:   formatTime(item.ResponseTime),
				FinishTime:     formatTime(item.FinishTime),
				ExecutorId:     item.ExecuteId,
				ExecuteCounter: item.ExecuteCounter,
				Signature:      item.Signature,
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"committed": committed,
		"executed":  executed,
	})
}

func formatTime(id uint64) string {
	if id == 0 {
		return ""
	}
	return time.Unix(int64(id)/1000000, int64(id)%1000000*1000).Format("2006-01-02 15:04:05.000000")
}

func lamportsToSol(lamports uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -9).StringFixed(9)
}
