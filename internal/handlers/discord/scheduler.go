package discord

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
	boostService "github.com/keyblasters/boostbot/internal/services/boost"
	"github.com/keyblasters/boostbot/internal/services/tracker"
)

// runScheduler drives the timed parts of the bot: boost countdowns and
// reaction tracking sessions. It runs until ctx is cancelled.
func (b *Bot) runScheduler(ctx context.Context) {
	defer close(b.schedulerDone)

	ticker := time.NewTicker(b.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.tick(ctx)
		}
	}
}

func (b *Bot) tick(ctx context.Context) {
	out, err := b.boostService.TickAll(ctx)
	if err != nil {
		logger.Error("boost tick failed", zap.Error(err))
	} else {
		for _, event := range out.Events {
			b.handleTickEvent(event)
		}
	}

	for _, session := range b.trackerSvc.Expire() {
		b.announceTrackerExpiry(session)
	}
}

func (b *Bot) handleTickEvent(event boostService.TickEvent) {
	if event.MessageID != "" {
		if _, err := b.session.ChannelMessageEditEmbed(event.ChannelID, event.MessageID, b.buildBoostEmbed(event.Boost)); err != nil {
			logger.Error("failed to redisplay boost",
				zap.Error(err),
				zap.String("boost_id", event.BoostID))
		}
	}

	switch event.Kind {
	case boostService.TickEventBlasterWindowClosed:
		if _, err := b.session.ChannelMessageSend(event.ChannelID, "Blaster-only window closed, sign-ups are open to all boosters."); err != nil {
			logger.Error("failed to announce window close",
				zap.Error(err),
				zap.String("boost_id", event.BoostID))
		}
	case boostService.TickEventStarted:
		mentions := make([]string, 0, len(event.Boost.Boosters))
		for _, booster := range event.Boost.Boosters {
			mentions = append(mentions, booster.Mention)
		}
		content := "Boost " + event.Boost.UUID + " started: " + strings.Join(mentions, " ")
		if _, err := b.session.ChannelMessageSend(event.ChannelID, content); err != nil {
			logger.Error("failed to announce boost start",
				zap.Error(err),
				zap.String("boost_id", event.BoostID))
		}
	}
}

func (b *Bot) announceTrackerExpiry(session *tracker.Session) {
	content := "Tracking finished.\n" + formatTrackedSessions([]*tracker.Session{session})
	if _, err := b.session.ChannelMessageSend(session.ChannelID, content); err != nil {
		logger.Error("failed to post tracking summary",
			zap.Error(err),
			zap.String("message_id", session.MessageID))
	}
}
