package boost

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/keyblasters/boostbot/internal/models"
)

type redisRepositoryTestSuite struct {
	suite.Suite

	mini *miniredis.Miniredis
	repo Repository
	ctx  context.Context
}

func (s *redisRepositoryTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := redis.NewClient(&redis.Options{
		Addr: mini.Addr(),
	})

	repo, err := NewRedis(&Config{
		Client: client,
	})
	s.Require().NoError(err)

	s.repo = repo
	s.ctx = context.Background()
}

func (s *redisRepositoryTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *redisRepositoryTestSuite) snapshot(uuid string) *Snapshot {
	return &Snapshot{
		ChannelID: "chan-1",
		MessageID: "msg-" + uuid,
		Boost: &models.Boost{
			UUID:      uuid,
			AuthorID:  "author-1",
			Pot:       100000,
			RealmName: "Draenor",
			Status:    models.BoostStatusOpen,
		},
	}
}

func (s *redisRepositoryTestSuite) TestSaveAndList() {
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{
		Snapshot: s.snapshot("boost-1"),
	}))
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{
		Snapshot: s.snapshot("boost-2"),
	}))

	out, err := s.repo.ListSnapshots(s.ctx)
	s.Require().NoError(err)
	s.Len(out.Snapshots, 2)

	ids := make(map[string]*Snapshot)
	for _, snap := range out.Snapshots {
		ids[snap.Boost.UUID] = snap
	}

	s.Require().Contains(ids, "boost-1")
	s.Equal("chan-1", ids["boost-1"].ChannelID)
	s.Equal("msg-boost-1", ids["boost-1"].MessageID)
	s.Equal(int64(100000), ids["boost-1"].Boost.Pot)
}

func (s *redisRepositoryTestSuite) TestSaveOverwrites() {
	snap := s.snapshot("boost-1")
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{Snapshot: snap}))

	snap.Boost.Status = models.BoostStatusStarted
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{Snapshot: snap}))

	out, err := s.repo.ListSnapshots(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Snapshots, 1)
	s.Equal(models.BoostStatusStarted, out.Snapshots[0].Boost.Status)
}

func (s *redisRepositoryTestSuite) TestDeleteSnapshot() {
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{
		Snapshot: s.snapshot("boost-1"),
	}))

	s.Require().NoError(s.repo.DeleteSnapshot(s.ctx, &DeleteSnapshotInput{
		BoostID: "boost-1",
	}))

	out, err := s.repo.ListSnapshots(s.ctx)
	s.Require().NoError(err)
	s.Empty(out.Snapshots)
}

func (s *redisRepositoryTestSuite) TestDeleteMissingIsNoError() {
	s.NoError(s.repo.DeleteSnapshot(s.ctx, &DeleteSnapshotInput{
		BoostID: "nope",
	}))
}

func (s *redisRepositoryTestSuite) TestListSkipsDanglingIndexEntries() {
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{
		Snapshot: s.snapshot("boost-1"),
	}))

	// Drop the body but leave the index entry behind.
	s.mini.Del(snapshotKeyPrefix + "boost-1")

	out, err := s.repo.ListSnapshots(s.ctx)
	s.Require().NoError(err)
	s.Empty(out.Snapshots)
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, new(redisRepositoryTestSuite))
}
