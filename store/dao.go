package store

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Dao struct {
	db *gorm.DB
}

func NewDao(url, scheme, user, passwd string) *Dao {
	dao := &Dao{}
	Logger := logger.Default
	Logger = Logger.LogMode(logger.Info)
	db, err := gorm.Open(mysql.Open(user+":"+passwd+"@tcp("+url+")/"+
		scheme+"?charset=utf8"), &gorm.Config{Logger: Logger})
	if err != nil {
		panic(err)
	}
	err = db.Debug().AutoMigrate(&CommittedCreation{}, &ExecutedCreation{})
	if err != nil {
		panic(err)
	}
	dao.db = db
	return dao
}

func (dao *Dao) SaveCommittedCreation(creation *CommittedCreation) error {
	return dao.db.Create(creation).Error
}

func (dao *Dao) SaveExecutedCreation(creation *ExecutedCreation) error {
	return dao.db.Create(creation).Error
}

func (dao *Dao) SelectCommittedCreation(id uint64) ([]*CommittedCreation, error) {
	committedCreation := make([]*CommittedCreation, 0)
	res := dao.db.Where("id = ?", id).Find(&committedCreation)
	return committedCreation, res.Error
}

func (dao *Dao) SelectExecutedCreation(id uint64) ([]*ExecutedCreation, error) {
	executedCreation := make([]*ExecutedCreation, 0)
	res := dao.db.Where("id = ?", id).Find(&executedCreation)
	return executedCreation, res.Error
}
