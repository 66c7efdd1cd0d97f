package store

type CommittedCreation struct {
	Id         uint64 `gorm:"primaryKey;type:bigint(20);not null"`
	Payer      string `gorm:"type:varchar(48);not null"`
	NewAccount string `gorm:"type:varchar(48);not null"`
	Lamports   uint64 `gorm:"type:bigint(20);not null"`
	Space      uint64 `gorm:"type:bigint(20);not null"`
	Owner      string `gorm:"type:varchar(48);not null"`
}

type ExecutedCreation struct {
	Id             uint64 `gorm:"primaryKey;type:bigint(20);not null"`
	ExecuteId      int    `gorm:"primaryKey;type:bigint(20);not null"`
	SendTime       uint64 `gorm:"type:bigint(20);not null"`
	ResponseTime   uint64 `gorm:"type:bigint(20);not null"`
	FinishTime     uint64 `gorm:"type:bigint(20);not null"`
	ExecuteCounter int    `gorm:"type:bigint(20);not null"`
	Signature      string `gorm:"type:varchar(120);not null"`
}
