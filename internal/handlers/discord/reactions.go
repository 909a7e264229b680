package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
	"github.com/keyblasters/boostbot/internal/models"
	boostService "github.com/keyblasters/boostbot/internal/services/boost"
	"github.com/keyblasters/boostbot/internal/services/ledger"
)

// role keys of Config.RoleEmojis
const (
	roleKeyTank      = "tank"
	roleKeyHealer    = "healer"
	roleKeyDPS       = "dps"
	roleKeyKeyholder = "keyholder"
)

// emojiRoleKey maps a reaction emoji back to its configured role key, or the
// process marker.
func (b *Bot) emojiRoleKey(emoji *discordgo.Emoji) (string, bool) {
	name := emoji.APIName()
	if name == b.config.ProcessEmoji {
		return "process", true
	}
	for key, configured := range b.config.RoleEmojis {
		if name == configured {
			return key, true
		}
	}
	return "", false
}

// boosterFromReaction builds the single-role claim a reaction stands for.
func boosterFromReaction(userID, mention, roleKey string) *models.Booster {
	booster := &models.Booster{
		UserID:  userID,
		Mention: mention,
	}
	switch roleKey {
	case roleKeyTank:
		booster.IsTank = true
	case roleKeyHealer:
		booster.IsHealer = true
	case roleKeyDPS:
		booster.IsDPS = true
	case roleKeyKeyholder:
		booster.IsKeyholder = true
	}
	return booster
}

func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	ctx := context.Background()

	b.trackerSvc.RecordAdded(r.MessageID, r.UserID, r.Emoji.APIName())

	lookup, err := b.boostService.LookupByMessage(ctx, &boostService.LookupByMessageInput{
		MessageID: r.MessageID,
	})
	if errors.Is(err, boostService.ErrMessageNotFound) {
		return
	}
	if err != nil {
		logger.Error("boost lookup failed", zap.Error(err))
		return
	}

	roleKey, known := b.emojiRoleKey(&r.Emoji)
	if !known {
		return
	}

	member := r.Member
	if member == nil {
		member, err = s.GuildMember(r.GuildID, r.UserID)
		if err != nil {
			logger.Error("failed to fetch member", zap.Error(err))
			return
		}
	}

	if roleKey == "process" {
		b.processBoostReaction(ctx, s, r, member, lookup.Boost)
		return
	}

	if !b.isBooster(s, r.GuildID, member) {
		_ = s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.APIName(), r.UserID)
		return
	}

	// armor stack boosts only admit members of the stacked role, except on
	// the tank and healer slots
	armorStack := lookup.Boost.ArmorStack
	if armorStack != nil && roleKey != roleKeyTank && roleKey != roleKeyHealer && !memberHasRoleID(member, armorStack.ID) {
		b.dmUser(s, r.UserID, "You need to have the "+armorStack.Name+" role to sign up for this boost!")
		_ = s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.APIName(), r.UserID)
		return
	}

	mention := "<@" + r.UserID + ">"
	out, err := b.boostService.AddBooster(ctx, &boostService.AddBoosterInput{
		BoostID:        lookup.Boost.UUID,
		Booster:        boosterFromReaction(r.UserID, mention, roleKey),
		HasBlasterRank: b.isBlaster(s, r.GuildID, member),
	})
	if err != nil {
		logger.Error("failed to add booster", zap.Error(err))
		return
	}

	if out.Updated {
		_, _ = s.ChannelMessageEditEmbed(r.ChannelID, r.MessageID, b.buildBoostEmbed(out.Boost))
	}
}

func (b *Bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	ctx := context.Background()

	b.trackerSvc.RecordRemoved(r.MessageID, r.UserID, r.Emoji.APIName())

	lookup, err := b.boostService.LookupByMessage(ctx, &boostService.LookupByMessageInput{
		MessageID: r.MessageID,
	})
	if errors.Is(err, boostService.ErrMessageNotFound) {
		return
	}
	if err != nil {
		logger.Error("boost lookup failed", zap.Error(err))
		return
	}

	roleKey, known := b.emojiRoleKey(&r.Emoji)
	if !known || roleKey == "process" {
		return
	}

	member, err := s.GuildMember(r.GuildID, r.UserID)
	if err != nil {
		logger.Error("failed to fetch member", zap.Error(err))
		return
	}
	if !b.isBooster(s, r.GuildID, member) {
		return
	}

	mention := "<@" + r.UserID + ">"
	out, err := b.boostService.RemoveBooster(ctx, &boostService.RemoveBoosterInput{
		BoostID: lookup.Boost.UUID,
		Booster: boosterFromReaction(r.UserID, mention, roleKey),
	})
	if err != nil {
		logger.Error("failed to remove booster", zap.Error(err))
		return
	}

	if out.Updated {
		_, _ = s.ChannelMessageEditEmbed(r.ChannelID, r.MessageID, b.buildBoostEmbed(out.Boost))
	}
}

// processBoostReaction pays out a started boost. The boost is only closed
// after every payout transaction is stored, so a ledger failure leaves it
// open for a retry.
func (b *Bot) processBoostReaction(ctx context.Context, s *discordgo.Session, r *discordgo.MessageReactionAdd, member *discordgo.Member, boost *models.Boost) {
	if !b.isManagement(s, r.GuildID, member) && r.UserID != boost.AdvertiserID {
		_ = s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.APIName(), r.UserID)
		return
	}

	out, err := b.boostService.ProcessBoost(ctx, &boostService.ProcessBoostInput{
		BoostID: boost.UUID,
	})
	if err != nil {
		logger.Error("failed to process boost", zap.Error(err))
		return
	}

	if len(out.Lines) == 0 {
		_, _ = s.ChannelMessageSend(r.ChannelID, "Boost "+boost.UUID+" is still open and cannot be processed.")
		return
	}

	_, err = b.ledgerService.PayoutBoost(ctx, &ledger.PayoutBoostInput{
		Boost:    out.Boost,
		Lines:    out.Lines,
		AuthorID: r.UserID,
		GuildID:  r.GuildID,
	})
	if err != nil {
		logger.Error("payout failed, boost stays open",
			zap.String("boost_id", boost.UUID),
			zap.Error(err))
		_, _ = s.ChannelMessageSend(r.ChannelID, "Payout of boost "+boost.UUID+" failed, try again: "+err.Error())
		return
	}

	closed, err := b.boostService.CloseBoost(ctx, &boostService.CloseBoostInput{BoostID: boost.UUID})
	if err != nil {
		logger.Error("failed to close boost", zap.Error(err))
		return
	}

	_, _ = s.ChannelMessageEditEmbed(r.ChannelID, r.MessageID, b.buildBoostEmbed(closed.Boost))
	_, _ = s.ChannelMessageSendEmbed(r.ChannelID, buildPayoutEmbed(closed.Boost, out.Lines))
}

// redisplayBoost re-renders a boost's embed from its current state.
func (b *Bot) redisplayBoost(ctx context.Context, s *discordgo.Session, boostID string) error {
	current, err := b.boostService.GetBoost(ctx, &boostService.GetBoostInput{BoostID: boostID})
	if err != nil {
		return err
	}
	if current.MessageID == "" {
		return nil
	}

	_, err = s.ChannelMessageEditEmbed(current.ChannelID, current.MessageID, b.buildBoostEmbed(current.Boost))
	return err
}

// dmUser sends a direct message, best effort.
func (b *Bot) dmUser(s *discordgo.Session, userID, content string) {
	dm, err := s.UserChannelCreate(userID)
	if err != nil {
		return
	}
	_, _ = s.ChannelMessageSend(dm.ID, content)
}
