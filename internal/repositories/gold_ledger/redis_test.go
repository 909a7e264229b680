package gold_ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/keyblasters/boostbot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 2, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) recordTransaction(id, userID string, txnType models.TransactionType, amount int64, realm string, at time.Time) {
	err := s.repo.RecordTransaction(context.Background(), &RecordTransactionInput{
		Transaction: &models.Transaction{
			ID:        id,
			Type:      txnType,
			UserID:    userID,
			AuthorID:  "author-id",
			Amount:    amount,
			GuildID:   "guild-1",
			Timestamp: at,
		},
		RealmName: realm,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestAddGetRemoveUser() {
	err := s.repo.AddUser(context.Background(), &AddUserInput{
		UserID:    "user-1",
		RealmName: "Draenor",
	})
	s.Require().NoError(err)

	output, err := s.repo.GetUserRealm(context.Background(), &GetUserRealmInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Draenor", output.RealmName)

	err = s.repo.RemoveUser(context.Background(), &RemoveUserInput{UserID: "user-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetUserRealm(context.Background(), &GetUserRealmInput{UserID: "user-1"})
	s.Require().ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestBalanceAccumulates() {
	s.recordTransaction("t1", "user-1", models.TransactionTypeAdd, 500, "", s.testNow)
	s.recordTransaction("t2", "user-1", models.TransactionTypeDeduct, -200, "", s.testNow.Add(time.Minute))

	output, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID:  "user-1",
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(300), output.Total)
}

func (s *RedisRepositoryTestSuite) TestBalanceZeroWithoutTransactions() {
	output, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID:  "nobody",
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), output.Total)
}

func (s *RedisRepositoryTestSuite) TestListTransactionsMostRecentFirst() {
	for i := 0; i < 5; i++ {
		s.recordTransaction(fmt.Sprintf("t%d", i), "user-1", models.TransactionTypeAdd, int64(i+1)*100, "", s.testNow.Add(time.Duration(i)*time.Minute))
	}

	output, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{
		UserID: "user-1",
		Limit:  3,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 3)
	s.Equal("t4", output.Transactions[0].ID)
	s.Equal("t3", output.Transactions[1].ID)
	s.Equal("t2", output.Transactions[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListTopBoosters() {
	s.recordTransaction("t1", "user-1", models.TransactionTypePayout, 300, "Draenor", s.testNow)
	s.recordTransaction("t2", "user-2", models.TransactionTypePayout, 500, "Kazzak", s.testNow)
	s.recordTransaction("t3", "user-1", models.TransactionTypePayout, 400, "Draenor", s.testNow)
	// non-payout transactions do not rank
	s.recordTransaction("t4", "user-3", models.TransactionTypeAdd, 10_000, "", s.testNow)

	output, err := s.repo.ListTopBoosters(context.Background(), &ListTopBoostersInput{
		GuildID: "guild-1",
		Limit:   10,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Boosters, 2)
	s.Equal(TopBooster{UserID: "user-1", Total: 700}, output.Boosters[0])
	s.Equal(TopBooster{UserID: "user-2", Total: 500}, output.Boosters[1])
}

func (s *RedisRepositoryTestSuite) TestListTopBoostersByRealm() {
	s.recordTransaction("t1", "user-1", models.TransactionTypePayout, 300, "Draenor", s.testNow)
	s.recordTransaction("t2", "user-2", models.TransactionTypePayout, 500, "Kazzak", s.testNow)

	output, err := s.repo.ListTopBoosters(context.Background(), &ListTopBoostersInput{
		GuildID:   "guild-1",
		RealmName: "Draenor",
		Limit:     10,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Boosters, 1)
	s.Equal("user-1", output.Boosters[0].UserID)
}
