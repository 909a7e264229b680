package boost

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/keyblasters/boostbot/internal/common/uuid/mocks"
	"github.com/keyblasters/boostbot/internal/models"
	boostRepo "github.com/keyblasters/boostbot/internal/repositories/boost"
	repoMocks "github.com/keyblasters/boostbot/internal/repositories/boost/mocks"
)

type serviceTestSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	repo     *repoMocks.MockRepository
	uuidGen  *uuidMocks.MockUUID
	svc      Service
	ctx      context.Context
	nextUUID int
}

func (s *serviceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repoMocks.NewMockRepository(s.ctrl)
	s.uuidGen = uuidMocks.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.nextUUID = 0

	// Snapshot persistence is best effort and exercised separately.
	s.repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.repo.EXPECT().DeleteSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.uuidGen.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextUUID++
		return "boost-" + strconv.Itoa(s.nextUUID)
	}).AnyTimes()

	svc, err := New(&Config{
		CutTable: models.CutTable{
			models.DefaultCutKey: {Advertiser: 0.1, Management: 0.1},
			"Draenor":            {Advertiser: 0.2, Management: 0.1},
		},
		BlasterOnlyTicks:  3,
		TeamTakeHoldTicks: 2,
		Repository:        s.repo,
		UUIDGenerator:     s.uuidGen,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *serviceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *serviceTestSuite) createBoost(biggerAdvCuts bool) *models.Boost {
	out, err := s.svc.CreateBoost(s.ctx, &CreateBoostInput{
		AuthorID:                  "author-1",
		BoostAuthor:               "Author",
		Pot:                       1000,
		AdvertiserID:              "adv-1",
		AdvertiserMention:         "<@adv-1>",
		RealmName:                 "Draenor",
		Key:                       "+20 Mists",
		IncludeAdvertiserInPayout: true,
		BiggerAdvCuts:             biggerAdvCuts,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.RegisterMessage(s.ctx, &RegisterMessageInput{
		BoostID:   out.Boost.UUID,
		ChannelID: "chan-1",
		MessageID: "msg-" + out.Boost.UUID,
	}))

	return out.Boost
}

func (s *serviceTestSuite) addBooster(boostID string, b *models.Booster) *AddBoosterOutput {
	out, err := s.svc.AddBooster(s.ctx, &AddBoosterInput{
		BoostID:        boostID,
		Booster:        b,
		HasBlasterRank: true,
	})
	s.Require().NoError(err)
	return out
}

func (s *serviceTestSuite) fillRoster(boostID string) {
	s.addBooster(boostID, &models.Booster{UserID: "tank-1", IsTank: true, IsKeyholder: true})
	s.addBooster(boostID, &models.Booster{UserID: "healer-1", IsHealer: true})
	s.addBooster(boostID, &models.Booster{UserID: "dps-1", IsDPS: true})
	s.addBooster(boostID, &models.Booster{UserID: "dps-2", IsDPS: true})
}

func (s *serviceTestSuite) TestCreateBoostUsesDefaultRates() {
	b := s.createBoost(false)

	s.Equal(models.BoostStatusOpen, b.Status)
	s.Equal(0.1, b.AdvCut)
	s.Equal(0.1, b.MngCut)
	s.Equal(3, b.BlasterOnlyClock)
}

func (s *serviceTestSuite) TestCreateBoostUsesRealmRatesWhenBiggerAdvCuts() {
	b := s.createBoost(true)

	s.Equal(0.2, b.AdvCut)
	s.Equal(0.1, b.MngCut)
}

func (s *serviceTestSuite) TestCreateBoostRejectsNonPositivePot() {
	_, err := s.svc.CreateBoost(s.ctx, &CreateBoostInput{
		AuthorID: "author-1",
		Pot:      0,
	})
	s.Error(err)
}

func (s *serviceTestSuite) TestAddBoosterBlockedDuringBlasterWindow() {
	b := s.createBoost(false)

	out, err := s.svc.AddBooster(s.ctx, &AddBoosterInput{
		BoostID:        b.UUID,
		Booster:        &models.Booster{UserID: "tank-1", IsTank: true},
		HasBlasterRank: false,
	})
	s.Require().NoError(err)
	s.False(out.Updated)
	s.Empty(out.Boost.Boosters)
}

func (s *serviceTestSuite) TestAddBoosterAllowedForBlasterRank() {
	b := s.createBoost(false)

	out := s.addBooster(b.UUID, &models.Booster{UserID: "tank-1", IsTank: true})
	s.True(out.Updated)
	s.Len(out.Boost.Boosters, 1)
}

func (s *serviceTestSuite) TestAddBoosterAllowedForAnyoneAfterWindow() {
	b := s.createBoost(false)

	for i := 0; i < 3; i++ {
		_, err := s.svc.TickAll(s.ctx)
		s.Require().NoError(err)
	}

	out, err := s.svc.AddBooster(s.ctx, &AddBoosterInput{
		BoostID:        b.UUID,
		Booster:        &models.Booster{UserID: "tank-1", IsTank: true},
		HasBlasterRank: false,
	})
	s.Require().NoError(err)
	s.True(out.Updated)
}

func (s *serviceTestSuite) TestAddBoosterUnknownBoost() {
	_, err := s.svc.AddBooster(s.ctx, &AddBoosterInput{
		BoostID: "nope",
		Booster: &models.Booster{UserID: "tank-1", IsTank: true},
	})
	s.ErrorIs(err, ErrBoostNotFound)
}

func (s *serviceTestSuite) TestReturnedBoostIsACopy() {
	b := s.createBoost(false)
	s.addBooster(b.UUID, &models.Booster{UserID: "tank-1", IsTank: true})

	out, err := s.svc.GetBoost(s.ctx, &GetBoostInput{BoostID: b.UUID})
	s.Require().NoError(err)

	out.Boost.Boosters[0].IsTank = false
	out.Boost.Pot = 1

	again, err := s.svc.GetBoost(s.ctx, &GetBoostInput{BoostID: b.UUID})
	s.Require().NoError(err)
	s.True(again.Boost.Boosters[0].IsTank)
	s.Equal(int64(1000), again.Boost.Pot)
}

func (s *serviceTestSuite) TestRemoveBooster() {
	b := s.createBoost(false)
	s.addBooster(b.UUID, &models.Booster{UserID: "tank-1", IsTank: true})

	out, err := s.svc.RemoveBooster(s.ctx, &RemoveBoosterInput{
		BoostID: b.UUID,
		Booster: &models.Booster{UserID: "tank-1", IsTank: true},
	})
	s.Require().NoError(err)
	s.True(out.Updated)
	s.Empty(out.Boost.Boosters)
}

func (s *serviceTestSuite) TestStartBoostRequiresSeatedKeyholder() {
	b := s.createBoost(false)
	s.fillRoster(b.UUID)

	_, err := s.svc.StartBoost(s.ctx, &StartBoostInput{
		BoostID: b.UUID,
		UserID:  "healer-1",
	})
	s.ErrorIs(err, ErrNotKeyholder)

	out, err := s.svc.StartBoost(s.ctx, &StartBoostInput{
		BoostID: b.UUID,
		UserID:  "tank-1",
	})
	s.Require().NoError(err)
	s.True(out.Started)
	s.Equal(models.BoostStatusStarted, out.Boost.Status)
}

func (s *serviceTestSuite) TestProcessOpenBoostYieldsNoLines() {
	b := s.createBoost(false)

	out, err := s.svc.ProcessBoost(s.ctx, &ProcessBoostInput{BoostID: b.UUID})
	s.Require().NoError(err)
	s.Empty(out.Lines)
}

func (s *serviceTestSuite) TestProcessStartedBoost() {
	b := s.createBoost(false)
	s.fillRoster(b.UUID)

	_, err := s.svc.StartBoost(s.ctx, &StartBoostInput{BoostID: b.UUID, UserID: "tank-1"})
	s.Require().NoError(err)

	out, err := s.svc.ProcessBoost(s.ctx, &ProcessBoostInput{BoostID: b.UUID})
	s.Require().NoError(err)

	// pot 1000, 10% advertiser and 10% management: 200 per booster plus
	// the advertiser line
	s.Require().Len(out.Lines, 5)
	for _, line := range out.Lines[:4] {
		s.Equal(int64(200), line.Amount)
	}
	s.Equal("adv-1", out.Lines[4].UserID)
	s.Equal(int64(100), out.Lines[4].Amount)
}

func (s *serviceTestSuite) TestCloseBoostDropsItFromTheRegistry() {
	b := s.createBoost(false)

	out, err := s.svc.CloseBoost(s.ctx, &CloseBoostInput{BoostID: b.UUID})
	s.Require().NoError(err)
	s.Equal(models.BoostStatusClosed, out.Boost.Status)

	_, err = s.svc.GetBoost(s.ctx, &GetBoostInput{BoostID: b.UUID})
	s.ErrorIs(err, ErrBoostNotFound)

	_, err = s.svc.LookupByMessage(s.ctx, &LookupByMessageInput{MessageID: "msg-" + b.UUID})
	s.ErrorIs(err, ErrMessageNotFound)
}

func (s *serviceTestSuite) TestLookupByMessage() {
	b := s.createBoost(false)

	out, err := s.svc.LookupByMessage(s.ctx, &LookupByMessageInput{
		MessageID: "msg-" + b.UUID,
	})
	s.Require().NoError(err)
	s.Equal(b.UUID, out.Boost.UUID)
	s.Equal("chan-1", out.ChannelID)
}

func (s *serviceTestSuite) TestEditLifecycle() {
	b := s.createBoost(false)

	_, err := s.svc.UpdateBoost(s.ctx, &UpdateBoostInput{
		BoostID: b.UUID,
		Note:    strPtr("early"),
	})
	s.ErrorIs(err, ErrNotEditing)

	_, err = s.svc.BeginEdit(s.ctx, &BeginEditInput{BoostID: b.UUID})
	s.Require().NoError(err)

	_, err = s.svc.BeginEdit(s.ctx, &BeginEditInput{BoostID: b.UUID})
	s.ErrorIs(err, ErrEditInProgress)

	newPot := int64(2000)
	updated, err := s.svc.UpdateBoost(s.ctx, &UpdateBoostInput{
		BoostID: b.UUID,
		Pot:     &newPot,
		Note:    strPtr("updated note"),
	})
	s.Require().NoError(err)
	s.Equal(int64(2000), updated.Boost.Pot)
	s.Equal("updated note", updated.Boost.Note)
	s.Equal(models.BoostStatusEditing, updated.Boost.Status)

	done, err := s.svc.FinishEdit(s.ctx, &FinishEditInput{BoostID: b.UUID})
	s.Require().NoError(err)
	s.Equal(models.BoostStatusOpen, done.Boost.Status)
}

func (s *serviceTestSuite) TestUpdateRealmRecomputesRates() {
	b := s.createBoost(true)
	s.Equal(0.2, b.AdvCut)

	_, err := s.svc.BeginEdit(s.ctx, &BeginEditInput{BoostID: b.UUID})
	s.Require().NoError(err)

	updated, err := s.svc.UpdateBoost(s.ctx, &UpdateBoostInput{
		BoostID:   b.UUID,
		RealmName: strPtr("Silvermoon"),
	})
	s.Require().NoError(err)
	s.Equal(0.1, updated.Boost.AdvCut)
}

func (s *serviceTestSuite) TestTeamTakeExpiryEmitsRedisplay() {
	b := s.createBoost(false)

	out, err := s.svc.ClaimTeamTake(s.ctx, &ClaimTeamTakeInput{
		BoostID:       b.UUID,
		Team:          &models.RoleRef{ID: "team-1", Name: "Team One"},
		TeamMemberIDs: map[string]struct{}{},
	})
	s.Require().NoError(err)
	s.True(out.Claimed)

	first, err := s.svc.TickAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(filterEvents(first.Events, TickEventRedisplay))

	second, err := s.svc.TickAll(s.ctx)
	s.Require().NoError(err)
	events := filterEvents(second.Events, TickEventRedisplay)
	s.Require().Len(events, 1)
	s.Equal(b.UUID, events[0].BoostID)
	s.Nil(events[0].Boost.TeamTake)
}

func (s *serviceTestSuite) TestBlasterWindowClosedEvent() {
	b := s.createBoost(false)

	var closed []TickEvent
	for i := 0; i < 3; i++ {
		out, err := s.svc.TickAll(s.ctx)
		s.Require().NoError(err)
		closed = append(closed, filterEvents(out.Events, TickEventBlasterWindowClosed)...)
	}

	s.Require().Len(closed, 1)
	s.Equal(b.UUID, closed[0].BoostID)
	s.Equal(0, closed[0].Boost.BlasterOnlyClock)

	// the window only closes once
	out, err := s.svc.TickAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(filterEvents(out.Events, TickEventBlasterWindowClosed))
}

func (s *serviceTestSuite) TestTickAllStartsFullRoster() {
	b := s.createBoost(false)
	s.fillRoster(b.UUID)

	out, err := s.svc.TickAll(s.ctx)
	s.Require().NoError(err)

	events := filterEvents(out.Events, TickEventStarted)
	s.Require().Len(events, 1)
	s.Equal(models.BoostStatusStarted, events[0].Boost.Status)

	// a started boost never starts again
	out, err = s.svc.TickAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(filterEvents(out.Events, TickEventStarted))
}

func (s *serviceTestSuite) TestRestoreBoosts() {
	s.repo.EXPECT().ListSnapshots(gomock.Any()).Return(&boostRepo.ListSnapshotsOutput{
		Snapshots: []*boostRepo.Snapshot{
			{
				ChannelID: "chan-9",
				MessageID: "msg-9",
				Boost: &models.Boost{
					UUID:   "restored-1",
					Pot:    5000,
					Status: models.BoostStatusOpen,
				},
			},
			{
				ChannelID: "chan-9",
				MessageID: "msg-10",
				Boost: &models.Boost{
					UUID:            "restored-2",
					Status:          models.BoostStatusEditing,
					SuspendedStatus: models.BoostStatusStarted,
				},
			},
		},
	}, nil)

	out, err := s.svc.RestoreBoosts(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, out.Restored)

	got, err := s.svc.GetBoost(s.ctx, &GetBoostInput{BoostID: "restored-1"})
	s.Require().NoError(err)
	s.Equal(int64(5000), got.Boost.Pot)
	s.Equal("chan-9", got.ChannelID)

	byMsg, err := s.svc.LookupByMessage(s.ctx, &LookupByMessageInput{MessageID: "msg-10"})
	s.Require().NoError(err)
	s.Equal(models.BoostStatusStarted, byMsg.Boost.Status)
}

func filterEvents(events []TickEvent, kind TickEventKind) []TickEvent {
	var matched []TickEvent
	for _, ev := range events {
		if ev.Kind == kind {
			matched = append(matched, ev)
		}
	}
	return matched
}

func strPtr(s string) *string {
	return &s
}

func TestService(t *testing.T) {
	suite.Run(t, new(serviceTestSuite))
}
