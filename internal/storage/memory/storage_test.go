package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/r6status/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Record tests

func (s *StorageSuite) TestSaveAndGetRecord() {
	record := &model.PlayerRecord{Username: "Alice", PINHash: "hash", CreatedAt: "2024-01-01T12:00:00.000Z"}

	err := s.storage.SaveRecord(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRecord(s.ctx, "ALICE")
	s.Require().NoError(err)
	s.Equal(*record, *retrieved)
}

func (s *StorageSuite) TestGetRecordNotFound() {
	_, err := s.storage.GetRecord(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetRecordReturnsCopy() {
	_ = s.storage.SaveRecord(s.ctx, &model.PlayerRecord{Username: "alice"})

	retrieved, _ := s.storage.GetRecord(s.ctx, "alice")
	retrieved.Active = true

	again, err := s.storage.GetRecord(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(again.Active)
}

func (s *StorageSuite) TestCreateRecordFailsIfExists() {
	s.Require().NoError(s.storage.CreateRecord(s.ctx, &model.PlayerRecord{Username: "bob", PINHash: "first"}))

	err := s.storage.CreateRecord(s.ctx, &model.PlayerRecord{Username: "Bob", PINHash: "second"})
	s.ErrorIs(err, model.ErrPlayerExists)

	retrieved, _ := s.storage.GetRecord(s.ctx, "bob")
	s.Equal("first", retrieved.PINHash)
}

func (s *StorageSuite) TestDeleteRecord() {
	_ = s.storage.SaveRecord(s.ctx, &model.PlayerRecord{Username: "alice"})

	err := s.storage.DeleteRecord(s.ctx, "Alice")
	s.Require().NoError(err)

	_, err = s.storage.GetRecord(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetRecords() {
	_ = s.storage.SaveRecord(s.ctx, &model.PlayerRecord{Username: "Alice"})
	_ = s.storage.SaveRecord(s.ctx, &model.PlayerRecord{Username: "bob"})

	records, err := s.storage.GetRecords(s.ctx, []string{"Alice", "ghost"})
	s.Require().NoError(err)
	s.Len(records, 1)
	s.Equal("Alice", records["alice"].Username)
}

// Roster tests

func (s *StorageSuite) TestAddListRemoveUsernames() {
	_ = s.storage.AddUsername(s.ctx, "Alice")
	_ = s.storage.AddUsername(s.ctx, "bob")
	_ = s.storage.AddUsername(s.ctx, "bob")

	usernames, err := s.storage.ListUsernames(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Alice", "bob"}, usernames)

	s.Require().NoError(s.storage.RemoveUsername(s.ctx, "Alice", "missing"))

	usernames, err = s.storage.ListUsernames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"bob"}, usernames)
}

func (s *StorageSuite) TestListUsernamesEmptyIsNotNil() {
	usernames, err := s.storage.ListUsernames(s.ctx)
	s.Require().NoError(err)
	s.NotNil(usernames)
	s.Empty(usernames)
}

func (s *StorageSuite) TestPingAndClose() {
	s.NoError(s.storage.Ping(s.ctx))
	s.NoError(s.storage.Close())
}
