package config

import (
	"github.com/gagliardetto/solana-go"
)

var (
	ConfigPath  = "./config/"
	ConfigFile  = ConfigPath + "config.json"
	LogPath     = "./logs/"
	BackendLog  = "backend"
	ExecutorLog = "executor"
	CreatorLog  = "creator"
	NetworkLog  = "network"
	SentTxHash  = "sent_tx"
)

type Node struct {
	Rpc    string `json:"rpc"`
	Ws     string `json:"ws"`
	Usable bool   `json:"usable"`
}

type Config struct {
	Nodes            []*Node          `json:"nodes"`
	TransactionNodes []*Node          `json:"transaction_nodes"`
	User             solana.PublicKey `json:"user"`
	Key              string           `json:"key"`
	Program          solana.PublicKey `json:"program"`
	Local            bool             `json:"local"`
	LocalLamports    uint64           `json:"local_lamports"`
	Simulate         bool             `json:"simulate"`
	NetStatus        bool             `json:"net_status"`
	WorkSpace        string           `json:"workspace"`
	DingUrl          string           `json:"ding-url"`
	DBUrl            string           `json:"db_url"`
	DBScheme         string           `json:"db_scheme"`
	DBUser           string           `json:"db_user"`
	DBPasswd         string           `json:"db_passwd"`
	Listen           string           `json:"listen"`
	BalanceFloor     uint64           `json:"balance_floor"`
}
