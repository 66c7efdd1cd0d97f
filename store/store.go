package store

import (
	"context"
)

type Store struct {
	ctx           context.Context
	committedChan chan *CommittedCreation
	executedChan  chan *ExecutedCreation
	dao           *Dao
}

func NewStore(ctx context.Context, url, scheme, user, passwd string) *Store {
	s := &Store{
		ctx:           ctx,
		committedChan: make(chan *CommittedCreation, 32),
		executedChan:  make(chan *ExecutedCreation, 32),
	}
	s.dao = NewDao(url, scheme, user, passwd)
	return s
}

func (s *Store) Start() {
	go s.store()
}

func (s *Store) Stop() {

}

func (s *Store) store() {
	for {
		select {
		case creation := <-s.committedChan:
			s.dao.SaveCommittedCreation(creation)
		case creation := <-s.executedChan:
			s.dao.SaveExecutedCreation(creation)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Store) StoreCommittedCreation(creation *CommittedCreation) {
	s.committedChan <- creation
}

func (s *Store) StoreExecutedCreation(creation *ExecutedCreation) {
	s.executedChan <- creation
}

func (s *Store) GetCommittedCreation(id uint64) ([]*CommittedCreation, error) {
	return s.dao.SelectCommittedCreation(id)
}

func (s *Store) GetExecutedCreation(id uint64) ([]*ExecutedCreation, error) {
	return s.dao.SelectExecutedCreation(id)
}
