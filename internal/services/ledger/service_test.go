package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/keyblasters/boostbot/internal/common/clock/mocks"
	uuidMocks "github.com/keyblasters/boostbot/internal/common/uuid/mocks"
	"github.com/keyblasters/boostbot/internal/models"
	"github.com/keyblasters/boostbot/internal/repositories/gold_ledger"
	repoMocks "github.com/keyblasters/boostbot/internal/repositories/gold_ledger/mocks"
)

type serviceTestSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	repo    *repoMocks.MockRepository
	clock   *clockMocks.MockClock
	uuidGen *uuidMocks.MockUUID
	svc     Service
	ctx     context.Context
	now     time.Time
}

func (s *serviceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repoMocks.NewMockRepository(s.ctrl)
	s.clock = clockMocks.NewMockClock(s.ctrl)
	s.uuidGen = uuidMocks.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	s.clock.EXPECT().Now().Return(s.now).AnyTimes()
	s.uuidGen.EXPECT().NewUUID().Return("txn-1").AnyTimes()

	svc, err := New(&Config{
		Repository:    s.repo,
		Clock:         s.clock,
		UUIDGenerator: s.uuidGen,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *serviceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *serviceTestSuite) TestRecordGoldAdd() {
	var recorded []*models.Transaction
	s.repo.EXPECT().
		RecordTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gold_ledger.RecordTransactionInput) error {
			recorded = append(recorded, input.Transaction)
			return nil
		}).
		Times(2)

	out, err := s.svc.RecordGold(s.ctx, &RecordGoldInput{
		Type: models.TransactionTypeAdd,
		Recipients: []Recipient{
			{UserID: "user-1", Mention: "<@user-1>"},
			{UserID: "user-2", Mention: "<@user-2>"},
		},
		AuthorID: "admin-1",
		Amount:   500,
		GuildID:  "guild-1",
		Comment:  "weekly bonus",
	})
	s.Require().NoError(err)
	s.Len(out.Transactions, 2)

	s.Require().Len(recorded, 2)
	s.Equal(int64(500), recorded[0].Amount)
	s.Equal("user-1", recorded[0].UserID)
	s.Equal("admin-1", recorded[0].AuthorID)
	s.Equal(s.now, recorded[0].Timestamp)
	s.Equal("weekly bonus", recorded[0].Comment)
}

func (s *serviceTestSuite) TestRecordGoldDeductStoresNegativeAmount() {
	s.repo.EXPECT().
		RecordTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gold_ledger.RecordTransactionInput) error {
			s.Equal(int64(-300), input.Transaction.Amount)
			return nil
		})

	_, err := s.svc.RecordGold(s.ctx, &RecordGoldInput{
		Type:       models.TransactionTypeDeduct,
		Recipients: []Recipient{{UserID: "user-1"}},
		AuthorID:   "admin-1",
		Amount:     300,
		GuildID:    "guild-1",
	})
	s.NoError(err)
}

func (s *serviceTestSuite) TestRecordGoldRejectsBadAmounts() {
	for _, amount := range []int64{0, -5, models.MaxGoldAmount + 1} {
		_, err := s.svc.RecordGold(s.ctx, &RecordGoldInput{
			Type:       models.TransactionTypeAdd,
			Recipients: []Recipient{{UserID: "user-1"}},
			Amount:     amount,
		})
		s.ErrorIs(err, ErrInvalidAmount)
	}
}

func (s *serviceTestSuite) TestRecordGoldRejectsEmptyRecipients() {
	_, err := s.svc.RecordGold(s.ctx, &RecordGoldInput{
		Type:   models.TransactionTypeAdd,
		Amount: 100,
	})
	s.ErrorIs(err, ErrNoRecipients)
}

func (s *serviceTestSuite) TestRecordGoldRejectsUnknownType() {
	_, err := s.svc.RecordGold(s.ctx, &RecordGoldInput{
		Type:       models.TransactionType("loan"),
		Recipients: []Recipient{{UserID: "user-1"}},
		Amount:     100,
	})
	s.Error(err)
}

func (s *serviceTestSuite) TestPayoutBoost() {
	boost := &models.Boost{
		UUID:      "boost-1",
		RealmName: "Draenor",
	}

	var realms []string
	s.repo.EXPECT().
		RecordTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gold_ledger.RecordTransactionInput) error {
			s.Equal(models.TransactionTypePayout, input.Transaction.Type)
			s.Equal("boost boost-1", input.Transaction.Comment)
			realms = append(realms, input.RealmName)
			return nil
		}).
		Times(2)

	out, err := s.svc.PayoutBoost(s.ctx, &PayoutBoostInput{
		Boost: boost,
		Lines: []models.PayoutLine{
			{UserID: "user-1", Amount: 200},
			{UserID: "user-2", Amount: 200},
		},
		AuthorID: "admin-1",
		GuildID:  "guild-1",
	})
	s.Require().NoError(err)
	s.Len(out.Transactions, 2)
	s.Equal([]string{"Draenor", "Draenor"}, realms)
}

func (s *serviceTestSuite) TestPayoutBoostFailsFast() {
	s.repo.EXPECT().
		RecordTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	_, err := s.svc.PayoutBoost(s.ctx, &PayoutBoostInput{
		Boost: &models.Boost{UUID: "boost-1"},
		Lines: []models.PayoutLine{
			{UserID: "user-1", Amount: 200},
			{UserID: "user-2", Amount: 200},
		},
	})
	s.Error(err)
}

func (s *serviceTestSuite) TestBalance() {
	s.repo.EXPECT().
		GetBalance(gomock.Any(), &gold_ledger.GetBalanceInput{
			UserID:  "user-1",
			GuildID: "guild-1",
		}).
		Return(&gold_ledger.GetBalanceOutput{Total: 1500}, nil)

	out, err := s.svc.Balance(s.ctx, &BalanceInput{UserID: "user-1", GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(int64(1500), out.Total)
}

func (s *serviceTestSuite) TestTopBoosters() {
	s.repo.EXPECT().
		ListTopBoosters(gomock.Any(), &gold_ledger.ListTopBoostersInput{
			GuildID:   "guild-1",
			RealmName: "Draenor",
			Limit:     5,
		}).
		Return(&gold_ledger.ListTopBoostersOutput{
			Boosters: []gold_ledger.TopBooster{
				{UserID: "user-1", Total: 700},
				{UserID: "user-2", Total: 500},
			},
		}, nil)

	out, err := s.svc.TopBoosters(s.ctx, &TopBoostersInput{
		GuildID:   "guild-1",
		RealmName: "Draenor",
		Limit:     5,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Boosters, 2)
	s.Equal("user-1", out.Boosters[0].UserID)
	s.Equal(int64(700), out.Boosters[0].Total)
}

func (s *serviceTestSuite) TestRegisterUserValidation() {
	s.Error(s.svc.RegisterUser(s.ctx, &RegisterUserInput{UserID: "user-1"}))
	s.Error(s.svc.RegisterUser(s.ctx, &RegisterUserInput{RealmName: "Draenor"}))
}

func TestService(t *testing.T) {
	suite.Run(t, new(serviceTestSuite))
}
