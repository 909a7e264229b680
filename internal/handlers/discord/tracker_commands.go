package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/keyblasters/boostbot/internal/services/tracker"
)

// handleTrack starts reaction tracking on a message.
//
// Format: track <message-url> [hours]
func (b *Bot) handleTrack(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 1 {
		return errors.New("expected a message url")
	}

	messageID := messageIDFromURL(c.args[0])

	var ttl time.Duration
	if len(c.args) > 1 {
		hours, err := strconv.Atoi(c.args[1])
		if err != nil || hours < 1 {
			return fmt.Errorf("%s is not a valid number of hours", c.args[1])
		}
		ttl = time.Duration(hours) * time.Hour
	}

	if err := b.trackerSvc.Track(messageID, c.message.ChannelID, ttl); err != nil {
		return err
	}

	return c.replyEmbed("Tracking message " + messageID + ".")
}

// handleListTracked DMs the author the current tracking data, optionally for
// a single message.
func (b *Bot) handleListTracked(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	var sessions []*tracker.Session
	if len(c.args) > 0 {
		session, err := b.trackerSvc.List(messageIDFromURL(c.args[0]))
		if err != nil {
			return err
		}
		sessions = append(sessions, session)
	} else {
		sessions = b.trackerSvc.Sessions()
	}

	content := formatTrackedSessions(sessions)
	if content == "" {
		content = "There are no messages currently tracked."
	}

	dm, err := c.session.UserChannelCreate(c.message.Author.ID)
	if err != nil {
		return err
	}
	_, err = c.session.ChannelMessageSend(dm.ID, content)
	return err
}

func formatTrackedSessions(sessions []*tracker.Session) string {
	var lines []string
	for _, session := range sessions {
		lines = append(lines, "Message "+session.MessageID+":")
		for _, ev := range session.Events {
			lines = append(lines, fmt.Sprintf("  %s <@%s> %s %s",
				ev.At.Format(time.DateTime), ev.UserID, ev.Kind, ev.Emoji))
		}
	}
	return strings.Join(lines, "\n")
}
