package discord

import (
	"context"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
)

// commandContext carries everything a command handler needs from one message.
type commandContext struct {
	ctx     context.Context
	session *discordgo.Session
	message *discordgo.MessageCreate

	// args are the whitespace-split tokens after the command name
	args []string
}

type commandHandler func(c *commandContext) error

// commandTable maps command names (and their short aliases) to handlers.
func (b *Bot) commandTable() map[string]commandHandler {
	table := map[string]commandHandler{}

	register := func(handler commandHandler, names ...string) {
		for _, name := range names {
			table[name] = handler
		}
	}

	register(b.handleGold, "gold", "g")
	register(b.handleBalance, "balance", "bal", "b")
	register(b.handleAdminBalance, "abalance", "abal", "ab")
	register(b.handleListTransactions, "list-transactions", "lt")
	register(b.handleAdminListTransactions, "alist-transactions", "alt")
	register(b.handleTop, "top", "t")
	register(b.handleRealmTop, "realm-top", "rtop", "rt")
	register(b.handleAlias, "alias")
	register(b.handleRemoveUser, "remove-user", "ru")
	register(b.handleTrack, "track")
	register(b.handleListTracked, "list-tracked")
	register(b.handleBoostWizard, "boost")
	register(b.handleStartBoost, "start-boost")
	register(b.handleTeamTake, "take")
	register(b.handleCancelBoost, "cancel-boost")
	register(b.handleEditBoost, "edit-boost")
	register(b.handleAbout, "about")

	return table
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx := context.Background()

	// an active wizard consumes its author's messages first
	if b.feedWizard(ctx, s, m) {
		return
	}

	if !strings.HasPrefix(m.Content, b.config.Prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, b.config.Prefix))
	if len(fields) == 0 {
		return
	}

	handler, ok := b.commands[strings.ToLower(fields[0])]
	if !ok {
		return
	}

	err := handler(&commandContext{
		ctx:     ctx,
		session: s,
		message: m,
		args:    fields[1:],
	})
	if err != nil {
		logger.Error("command failed",
			zap.String("command", fields[0]),
			zap.String("author_id", m.Author.ID),
			zap.Error(err))

		_, _ = s.ChannelMessageSend(m.ChannelID, "Command failed: "+err.Error())
	}
}

// reply sends a plain message to the command's channel.
func (c *commandContext) reply(content string) error {
	_, err := c.session.ChannelMessageSend(c.message.ChannelID, content)
	return err
}

// replyEmbed sends a description-only embed used for confirmations.
func (c *commandContext) replyEmbed(description string) error {
	_, err := c.session.ChannelMessageSendEmbed(c.message.ChannelID, &discordgo.MessageEmbed{
		Description: description,
	})
	return err
}

var (
	userMentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)
	roleMentionPattern = regexp.MustCompile(`^<@&(\d+)>$`)
)

// parseUserMention extracts the user ID from a <@id> token.
func parseUserMention(token string) (string, bool) {
	match := userMentionPattern.FindStringSubmatch(token)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// parseRoleMention extracts the role ID from a <@&id> token.
func parseRoleMention(token string) (string, bool) {
	match := roleMentionPattern.FindStringSubmatch(token)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// parseNickRealm extracts the realm from a "<character>-<realm>" nickname.
func parseNickRealm(nick string) (string, bool) {
	idx := strings.LastIndex(nick, "-")
	if idx <= 0 || idx == len(nick)-1 {
		return "", false
	}
	return nick[idx+1:], true
}

// messageIDFromURL takes the trailing ID of a Discord message URL. A bare
// message ID passes through unchanged.
func messageIDFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return url
	}
	return url[idx+1:]
}
