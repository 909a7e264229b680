package boost

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
	"github.com/keyblasters/boostbot/internal/common/uuid"
	"github.com/keyblasters/boostbot/internal/models"
	boostRepo "github.com/keyblasters/boostbot/internal/repositories/boost"
)

// entry pairs a tracked boost with its own lock and the message it is
// rendered on. Every mutation of the boost happens with mu held.
type entry struct {
	mu sync.Mutex

	boost     *models.Boost
	channelID string
	messageID string
}

type service struct {
	cutTable          models.CutTable
	blasterOnlyTicks  int
	teamTakeHoldTicks int

	repo          boostRepo.Repository
	uuidGenerator uuid.UUID

	// mu guards the maps. The per-boost lock lives on the entry.
	mu        sync.RWMutex
	boosts    map[string]*entry
	byMessage map[string]string
}

// Config is the configuration for the boost service.
type Config struct {
	// CutTable maps realms to cut rates. Must contain the default entry.
	CutTable models.CutTable

	// BlasterOnlyTicks is the length of the privileged sign-up window in
	// scheduler ticks. Zero uses the default.
	BlasterOnlyTicks int

	// TeamTakeHoldTicks is the length of a team reservation in scheduler
	// ticks.
	TeamTakeHoldTicks int

	// Repository persists boost snapshots across restarts.
	Repository boostRepo.Repository

	// UUIDGenerator may be nil, in which case random UUIDs are used.
	UUIDGenerator uuid.UUID
}

// New creates a new boost service.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("cfg cannot be nil")
	}

	if cfg.CutTable == nil {
		return nil, errors.New("cfg.CutTable cannot be nil")
	}

	if _, ok := cfg.CutTable[models.DefaultCutKey]; !ok {
		return nil, errors.New("cfg.CutTable must contain the default entry")
	}

	if cfg.Repository == nil {
		return nil, errors.New("cfg.Repository cannot be nil")
	}

	if cfg.TeamTakeHoldTicks <= 0 {
		return nil, errors.New("cfg.TeamTakeHoldTicks must be positive")
	}

	blasterTicks := cfg.BlasterOnlyTicks
	if blasterTicks == 0 {
		blasterTicks = models.DefaultBlasterOnlyTicks
	}

	uuidImpl := cfg.UUIDGenerator
	if uuidImpl == nil {
		uuidImpl = uuid.New()
	}

	return &service{
		cutTable:          cfg.CutTable,
		blasterOnlyTicks:  blasterTicks,
		teamTakeHoldTicks: cfg.TeamTakeHoldTicks,
		repo:              cfg.Repository,
		uuidGenerator:     uuidImpl,
		boosts:            make(map[string]*entry),
		byMessage:         make(map[string]string),
	}, nil
}

func (s *service) CreateBoost(ctx context.Context, input *CreateBoostInput) (*CreateBoostOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.AuthorID == "" {
		return nil, errors.New("input.AuthorID cannot be empty")
	}

	if input.Pot <= 0 {
		return nil, errors.New("input.Pot must be positive")
	}

	rates := s.cutTable.RatesFor(input.RealmName, input.BiggerAdvCuts)

	b := &models.Boost{
		UUID:                      s.uuidGenerator.NewUUID(),
		AuthorID:                  input.AuthorID,
		BoostAuthor:               input.BoostAuthor,
		Pot:                       input.Pot,
		AdvertiserID:              input.AdvertiserID,
		AdvertiserMention:         input.AdvertiserMention,
		AdvertiserName:            input.AdvertiserName,
		RealmName:                 input.RealmName,
		CharacterToWhisper:        input.CharacterToWhisper,
		Key:                       input.Key,
		ArmorStack:                input.ArmorStack,
		Pings:                     input.Pings,
		BoostsNumber:              input.BoostsNumber,
		Note:                      input.Note,
		PastTeamTakes:             make(map[string]struct{}),
		Status:                    models.BoostStatusOpen,
		BlasterOnlyClock:          s.blasterOnlyTicks,
		IncludeAdvertiserInPayout: input.IncludeAdvertiserInPayout,
		BiggerAdvCuts:             input.BiggerAdvCuts,
		AdvCut:                    rates.Advertiser,
		MngCut:                    rates.Management,
	}

	s.mu.Lock()
	s.boosts[b.UUID] = &entry{boost: b}
	s.mu.Unlock()

	logger.Info("boost created",
		zap.String("boost_id", b.UUID),
		zap.String("author_id", b.AuthorID),
		zap.Int64("pot", b.Pot),
		zap.String("realm", b.RealmName))

	return &CreateBoostOutput{Boost: b.Clone()}, nil
}

func (s *service) RegisterMessage(ctx context.Context, input *RegisterMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input.ChannelID and input.MessageID cannot be empty")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.channelID = input.ChannelID
	e.messageID = input.MessageID
	s.saveSnapshotLocked(ctx, e)
	e.mu.Unlock()

	s.mu.Lock()
	s.byMessage[input.MessageID] = input.BoostID
	s.mu.Unlock()

	return nil
}

func (s *service) RestoreBoosts(ctx context.Context) (*RestoreBoostsOutput, error) {
	listed, err := s.repo.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	out := &RestoreBoostsOutput{}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snap := range listed.Snapshots {
		if snap.Boost == nil || snap.Boost.UUID == "" {
			continue
		}

		// A boost stuck in editing at crash time resumes in its suspended
		// state; nobody is left to finish the edit.
		if snap.Boost.Status == models.BoostStatusEditing {
			snap.Boost.FinishEdit()
		}

		s.boosts[snap.Boost.UUID] = &entry{
			boost:     snap.Boost,
			channelID: snap.ChannelID,
			messageID: snap.MessageID,
		}
		if snap.MessageID != "" {
			s.byMessage[snap.MessageID] = snap.Boost.UUID
		}
		out.Restored++
	}

	logger.Info("boosts restored", zap.Int("count", out.Restored))

	return out, nil
}

func (s *service) AddBooster(ctx context.Context, input *AddBoosterInput) (*AddBoosterOutput, error) {
	if input == nil || input.Booster == nil {
		return nil, errors.New("input and input.Booster cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.boost.BlasterOnlyClock > 0 && !input.HasBlasterRank {
		return &AddBoosterOutput{Updated: false, Boost: e.boost.Clone()}, nil
	}

	updated := e.boost.AddBooster(input.Booster)
	if updated {
		s.saveSnapshotLocked(ctx, e)
	}

	return &AddBoosterOutput{Updated: updated, Boost: e.boost.Clone()}, nil
}

func (s *service) RemoveBooster(ctx context.Context, input *RemoveBoosterInput) (*RemoveBoosterOutput, error) {
	if input == nil || input.Booster == nil {
		return nil, errors.New("input and input.Booster cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	updated := e.boost.RemoveBooster(input.Booster)
	if updated {
		s.saveSnapshotLocked(ctx, e)
	}

	return &RemoveBoosterOutput{Updated: updated, Boost: e.boost.Clone()}, nil
}

func (s *service) ClaimTeamTake(ctx context.Context, input *ClaimTeamTakeInput) (*ClaimTeamTakeOutput, error) {
	if input == nil || input.Team == nil {
		return nil, errors.New("input and input.Team cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	claimed := e.boost.ClaimTeamTake(input.Team, input.TeamMemberIDs, s.teamTakeHoldTicks)
	if claimed {
		s.saveSnapshotLocked(ctx, e)
		logger.Info("team take claimed",
			zap.String("boost_id", input.BoostID),
			zap.String("team", input.Team.Name))
	}

	return &ClaimTeamTakeOutput{Claimed: claimed, Boost: e.boost.Clone()}, nil
}

func (s *service) StartBoost(ctx context.Context, input *StartBoostInput) (*StartBoostOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !isSeatedKeyholder(e.boost, input.UserID) {
		return nil, ErrNotKeyholder
	}

	started := e.boost.StartBoost()
	if started {
		s.saveSnapshotLocked(ctx, e)
		logger.Info("boost started", zap.String("boost_id", input.BoostID))
	}

	return &StartBoostOutput{Started: started, Boost: e.boost.Clone()}, nil
}

func isSeatedKeyholder(b *models.Boost, userID string) bool {
	for _, seated := range b.Boosters {
		if seated.UserID == userID {
			return seated.IsKeyholder
		}
	}
	return false
}

func (s *service) ProcessBoost(ctx context.Context, input *ProcessBoostInput) (*ProcessBoostOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return &ProcessBoostOutput{
		Lines: e.boost.Process(),
		Boost: e.boost.Clone(),
	}, nil
}

func (s *service) CloseBoost(ctx context.Context, input *CloseBoostInput) (*CloseBoostOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.boost.Close()
	messageID := e.messageID
	closed := e.boost.Clone()
	e.mu.Unlock()

	s.mu.Lock()
	delete(s.boosts, input.BoostID)
	if messageID != "" {
		delete(s.byMessage, messageID)
	}
	s.mu.Unlock()

	if err := s.repo.DeleteSnapshot(ctx, &boostRepo.DeleteSnapshotInput{BoostID: input.BoostID}); err != nil {
		logger.Warn("failed to delete boost snapshot",
			zap.String("boost_id", input.BoostID),
			zap.Error(err))
	}

	logger.Info("boost closed", zap.String("boost_id", input.BoostID))

	return &CloseBoostOutput{Boost: closed}, nil
}

func (s *service) BeginEdit(ctx context.Context, input *BeginEditInput) (*BeginEditOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.boost.BeginEdit() {
		return nil, ErrEditInProgress
	}
	s.saveSnapshotLocked(ctx, e)

	return &BeginEditOutput{Boost: e.boost.Clone()}, nil
}

func (s *service) UpdateBoost(ctx context.Context, input *UpdateBoostInput) (*UpdateBoostOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.boost
	if b.Status != models.BoostStatusEditing {
		return nil, ErrNotEditing
	}

	if input.Pot != nil {
		if *input.Pot <= 0 {
			return nil, errors.New("input.Pot must be positive")
		}
		b.Pot = *input.Pot
	}
	if input.RealmName != nil {
		b.RealmName = *input.RealmName
		rates := s.cutTable.RatesFor(b.RealmName, b.BiggerAdvCuts)
		b.AdvCut = rates.Advertiser
		b.MngCut = rates.Management
	}
	if input.CharacterToWhisper != nil {
		b.CharacterToWhisper = *input.CharacterToWhisper
	}
	if input.Key != nil {
		b.Key = *input.Key
	}
	if input.Note != nil {
		b.Note = *input.Note
	}
	if input.Pings != nil {
		b.Pings = *input.Pings
	}
	if input.BoostsNumber != nil {
		b.BoostsNumber = *input.BoostsNumber
	}
	if input.AdvertiserID != nil {
		b.AdvertiserID = *input.AdvertiserID
	}
	if input.AdvertiserMention != nil {
		b.AdvertiserMention = *input.AdvertiserMention
	}
	if input.AdvertiserName != nil {
		b.AdvertiserName = *input.AdvertiserName
	}
	if input.SetArmorStack {
		b.ArmorStack = input.ArmorStack
	}

	s.saveSnapshotLocked(ctx, e)

	return &UpdateBoostOutput{Boost: b.Clone()}, nil
}

func (s *service) FinishEdit(ctx context.Context, input *FinishEditInput) (*FinishEditOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.boost.FinishEdit()
	s.saveSnapshotLocked(ctx, e)

	return &FinishEditOutput{Boost: e.boost.Clone()}, nil
}

func (s *service) GetBoost(ctx context.Context, input *GetBoostInput) (*GetBoostOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.entryFor(input.BoostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return &GetBoostOutput{
		Boost:     e.boost.Clone(),
		ChannelID: e.channelID,
		MessageID: e.messageID,
	}, nil
}

func (s *service) LookupByMessage(ctx context.Context, input *LookupByMessageInput) (*LookupByMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.RLock()
	boostID, ok := s.byMessage[input.MessageID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrMessageNotFound
	}

	e, err := s.entryFor(boostID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return &LookupByMessageOutput{
		Boost:     e.boost.Clone(),
		ChannelID: e.channelID,
	}, nil
}

func (s *service) TickAll(ctx context.Context) (*TickAllOutput, error) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.boosts))
	for _, e := range s.boosts {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := &TickAllOutput{}
	for _, e := range entries {
		s.tickOne(ctx, e, out)
	}

	return out, nil
}

// tickOne advances one boost's clocks. A panic in one boost must not stop
// the scheduler from ticking the rest.
func (s *service) tickOne(ctx context.Context, e *entry, out *TickAllOutput) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while ticking boost", zap.Any("panic", r))
		}
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	windowWasOpen := e.boost.BlasterOnlyClock > 0
	redisplay := e.boost.ClockTick()
	windowClosed := windowWasOpen && e.boost.BlasterOnlyClock == 0
	started := e.boost.StartBoost()

	if !redisplay && !windowClosed && !started {
		return
	}

	s.saveSnapshotLocked(ctx, e)

	if redisplay {
		out.Events = append(out.Events, TickEvent{
			Kind:      TickEventRedisplay,
			BoostID:   e.boost.UUID,
			ChannelID: e.channelID,
			MessageID: e.messageID,
			Boost:     e.boost.Clone(),
		})
	}
	if windowClosed {
		out.Events = append(out.Events, TickEvent{
			Kind:      TickEventBlasterWindowClosed,
			BoostID:   e.boost.UUID,
			ChannelID: e.channelID,
			MessageID: e.messageID,
			Boost:     e.boost.Clone(),
		})
	}
	if started {
		logger.Info("boost started", zap.String("boost_id", e.boost.UUID))
		out.Events = append(out.Events, TickEvent{
			Kind:      TickEventStarted,
			BoostID:   e.boost.UUID,
			ChannelID: e.channelID,
			MessageID: e.messageID,
			Boost:     e.boost.Clone(),
		})
	}
}

// entryFor looks up a tracked boost by ID.
func (s *service) entryFor(boostID string) (*entry, error) {
	if boostID == "" {
		return nil, errors.New("boost ID cannot be empty")
	}

	s.mu.RLock()
	e, ok := s.boosts[boostID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrBoostNotFound
	}

	return e, nil
}

// saveSnapshotLocked persists the boost. The caller holds e.mu. A failed
// save is logged and otherwise ignored; the in-memory state stays
// authoritative.
func (s *service) saveSnapshotLocked(ctx context.Context, e *entry) {
	if e.messageID == "" {
		return
	}

	err := s.repo.SaveSnapshot(ctx, &boostRepo.SaveSnapshotInput{
		Snapshot: &boostRepo.Snapshot{
			ChannelID: e.channelID,
			MessageID: e.messageID,
			Boost:     e.boost.Clone(),
		},
	})
	if err != nil {
		logger.Warn("failed to save boost snapshot",
			zap.String("boost_id", e.boost.UUID),
			zap.Error(err))
	}
}
