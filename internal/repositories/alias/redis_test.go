package alias

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGetAlias() {
	err := s.repo.SetAlias(context.Background(), &SetAliasInput{
		Alias:     "silver",
		RealmName: "Silvermoon",
	})
	s.Require().NoError(err)

	output, err := s.repo.GetAlias(context.Background(), &GetAliasInput{
		Alias: "silver",
	})
	s.Require().NoError(err)
	s.Equal("Silvermoon", output.RealmName)
}

func (s *RedisRepositoryTestSuite) TestGetAliasNotFound() {
	_, err := s.repo.GetAlias(context.Background(), &GetAliasInput{
		Alias: "missing",
	})
	s.Require().ErrorIs(err, ErrAliasNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetAliasExisting() {
	err := s.repo.SetAlias(context.Background(), &SetAliasInput{
		Alias:     "dra",
		RealmName: "Draenor",
	})
	s.Require().NoError(err)

	err = s.repo.SetAlias(context.Background(), &SetAliasInput{
		Alias:     "dra",
		RealmName: "Dragonblight",
	})
	s.Require().ErrorIs(err, ErrAliasExists)

	// overwrite replaces the stored realm
	err = s.repo.SetAlias(context.Background(), &SetAliasInput{
		Alias:     "dra",
		RealmName: "Dragonblight",
		Overwrite: true,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetAlias(context.Background(), &GetAliasInput{Alias: "dra"})
	s.Require().NoError(err)
	s.Equal("Dragonblight", output.RealmName)
}

func (s *RedisRepositoryTestSuite) TestListAliases() {
	for alias, realm := range map[string]string{"tm": "Tarren Mill", "kz": "Kazzak"} {
		s.Require().NoError(s.repo.SetAlias(context.Background(), &SetAliasInput{
			Alias:     alias,
			RealmName: realm,
		}))
	}

	output, err := s.repo.ListAliases(context.Background(), &ListAliasesInput{})
	s.Require().NoError(err)
	s.Equal(map[string]string{"tm": "Tarren Mill", "kz": "Kazzak"}, output.Aliases)
}
