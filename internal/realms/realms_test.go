package realms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	aliasRepo "github.com/keyblasters/boostbot/internal/repositories/alias"
	aliasMocks "github.com/keyblasters/boostbot/internal/repositories/alias/mocks"
)

type ResolverTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockAliasRepo *aliasMocks.MockRepository
	resolver      *Resolver
	ctx           context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAliasRepo = aliasMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	resolver, err := NewResolver(&Config{
		AliasRepo: s.mockAliasRepo,
	})
	s.Require().NoError(err)
	s.resolver = resolver
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestResolveCanonicalName() {
	realm, err := s.resolver.Resolve(s.ctx, "Silvermoon")
	s.Require().NoError(err)
	s.Equal("Silvermoon", realm)
}

func (s *ResolverTestSuite) TestResolveAlias() {
	s.mockAliasRepo.EXPECT().
		GetAlias(s.ctx, &aliasRepo.GetAliasInput{Alias: "tm"}).
		Return(&aliasRepo.GetAliasOutput{RealmName: "Tarren Mill"}, nil)

	realm, err := s.resolver.Resolve(s.ctx, "tm")
	s.Require().NoError(err)
	s.Equal("Tarren Mill", realm)
}

func (s *ResolverTestSuite) TestResolveUnknownSuggests() {
	s.mockAliasRepo.EXPECT().
		GetAlias(s.ctx, gomock.Any()).
		Return(nil, aliasRepo.ErrAliasNotFound)

	_, err := s.resolver.Resolve(s.ctx, "Silvermon")

	var unknownErr *UnknownRealmError
	s.Require().ErrorAs(err, &unknownErr)
	s.Equal("Silvermon", unknownErr.Name)
	s.Equal("Silvermoon", unknownErr.Suggestion)
}

func (s *ResolverTestSuite) TestSetAliasValidatesRealm() {
	err := s.resolver.SetAlias(s.ctx, "nowhere", "Atlantis", false)

	var unknownErr *UnknownRealmError
	s.Require().ErrorAs(err, &unknownErr)
}

func (s *ResolverTestSuite) TestSetAliasPassesThroughExists() {
	s.mockAliasRepo.EXPECT().
		SetAlias(s.ctx, &aliasRepo.SetAliasInput{Alias: "dra", RealmName: "Draenor"}).
		Return(aliasRepo.ErrAliasExists)

	err := s.resolver.SetAlias(s.ctx, "dra", "Draenor", false)
	s.Require().ErrorIs(err, aliasRepo.ErrAliasExists)
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("Kazzak") {
		t.Error("Kazzak should be a known realm")
	}
	if IsKnown("kazzak") {
		t.Error("realm names are case sensitive")
	}
}
