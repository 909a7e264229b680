package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/keyblasters/boostbot/internal/models"
	boostService "github.com/keyblasters/boostbot/internal/services/boost"
)

// handleTeamTake reserves a boost's roster for a team role.
//
// Format: take <boost-id> <@&team-role>
func (b *Bot) handleTeamTake(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 2 {
		return errors.New("expected: take <boost-id> <@&team-role>")
	}

	roleID, ok := parseRoleMention(c.args[1])
	if !ok {
		return fmt.Errorf("%s is not a role mention", c.args[1])
	}

	role, err := c.session.State.Role(c.message.GuildID, roleID)
	if err != nil {
		return fmt.Errorf("failed to look up role: %w", err)
	}

	memberIDs, err := b.roleMemberIDs(c, roleID)
	if err != nil {
		return err
	}

	out, err := b.boostService.ClaimTeamTake(c.ctx, &boostService.ClaimTeamTakeInput{
		BoostID: c.args[0],
		Team: &models.RoleRef{
			ID:      role.ID,
			Name:    role.Name,
			Mention: role.Mention(),
		},
		TeamMemberIDs: memberIDs,
	})
	if err != nil {
		return err
	}

	if !out.Claimed {
		return c.reply("This boost cannot be taken by " + role.Name + ".")
	}

	if err := b.redisplayBoost(c.ctx, c.session, out.Boost.UUID); err != nil {
		return err
	}

	return c.replyEmbed(fmt.Sprintf("Boost %s reserved for %s.", out.Boost.UUID, role.Mention()))
}

// roleMemberIDs collects the IDs of every guild member holding the role.
func (b *Bot) roleMemberIDs(c *commandContext, roleID string) (map[string]struct{}, error) {
	memberIDs := make(map[string]struct{})

	after := ""
	for {
		members, err := c.session.GuildMembers(c.message.GuildID, after, 1000)
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}
		if len(members) == 0 {
			break
		}

		for _, member := range members {
			if memberHasRoleID(member, roleID) && member.User != nil {
				memberIDs[member.User.ID] = struct{}{}
			}
		}
		after = members[len(members)-1].User.ID

		if len(members) < 1000 {
			break
		}
	}

	return memberIDs, nil
}

// handleStartBoost starts a fully seated boost ahead of the next tick. Only
// the seated keyholder may force the start.
//
// Format: start-boost <boost-id>
func (b *Bot) handleStartBoost(c *commandContext) error {
	if len(c.args) < 1 {
		return errors.New("expected a boost id")
	}

	out, err := b.boostService.StartBoost(c.ctx, &boostService.StartBoostInput{
		BoostID: c.args[0],
		UserID:  c.message.Author.ID,
	})
	if err != nil {
		return err
	}

	if !out.Started {
		return c.reply("Boost " + c.args[0] + " is not ready to start.")
	}

	if err := b.redisplayBoost(c.ctx, c.session, c.args[0]); err != nil {
		return err
	}

	return c.replyEmbed("Boost " + c.args[0] + " started.")
}

// handleCancelBoost closes a boost without paying it out.
//
// Format: cancel-boost <boost-id>
func (b *Bot) handleCancelBoost(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 1 {
		return errors.New("expected a boost id")
	}

	ref, err := b.boostService.GetBoost(c.ctx, &boostService.GetBoostInput{BoostID: c.args[0]})
	if err != nil {
		return err
	}

	out, err := b.boostService.CloseBoost(c.ctx, &boostService.CloseBoostInput{BoostID: c.args[0]})
	if err != nil {
		return err
	}

	if ref.MessageID != "" {
		_, _ = c.session.ChannelMessageEditEmbed(ref.ChannelID, ref.MessageID, b.buildBoostEmbed(out.Boost))
	}

	return c.replyEmbed("Boost " + out.Boost.UUID + " cancelled.")
}

// handleEditBoost applies a single field edit to a boost.
//
// Format: edit-boost <boost-id> <field> <value...> where field is one of
// pot, realm, key, whisper, note, pings, boosts-number, advertiser,
// armor-stack.
func (b *Bot) handleEditBoost(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 3 {
		return errors.New("expected: edit-boost <boost-id> <field> <value>")
	}

	boostID := c.args[0]
	field := strings.ToLower(c.args[1])
	value := strings.Join(c.args[2:], " ")

	update := &boostService.UpdateBoostInput{BoostID: boostID}
	switch field {
	case "pot":
		pot, err := models.ParseGoldAmount(value)
		if err != nil {
			return err
		}
		update.Pot = &pot
	case "realm":
		realmName, err := b.resolver.Resolve(c.ctx, value)
		if err != nil {
			return err
		}
		update.RealmName = &realmName
	case "key":
		update.Key = &value
	case "whisper":
		update.CharacterToWhisper = &value
	case "note":
		update.Note = &value
	case "pings":
		update.Pings = &value
	case "boosts-number":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s is not a valid boost count", value)
		}
		update.BoostsNumber = &n
	case "advertiser":
		userID, ok := parseUserMention(value)
		if !ok {
			return fmt.Errorf("%s is not a user mention", value)
		}
		member, err := c.session.GuildMember(c.message.GuildID, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch member: %w", err)
		}
		name := displayName(member)
		update.AdvertiserID = &userID
		update.AdvertiserMention = &value
		update.AdvertiserName = &name
	case "armor-stack":
		update.SetArmorStack = true
		if roleID, ok := parseRoleMention(value); ok {
			role, err := c.session.State.Role(c.message.GuildID, roleID)
			if err != nil {
				return fmt.Errorf("failed to look up role: %w", err)
			}
			update.ArmorStack = &models.RoleRef{
				ID:      role.ID,
				Name:    role.Name,
				Mention: role.Mention(),
			}
		} else if !strings.EqualFold(value, "no") {
			return fmt.Errorf(`%s is not a role mention or "no"`, value)
		}
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	if _, err := b.boostService.BeginEdit(c.ctx, &boostService.BeginEditInput{BoostID: boostID}); err != nil {
		return err
	}

	_, updateErr := b.boostService.UpdateBoost(c.ctx, update)

	// always resume, even when the update failed
	if _, err := b.boostService.FinishEdit(c.ctx, &boostService.FinishEditInput{BoostID: boostID}); err != nil {
		return err
	}
	if updateErr != nil {
		return updateErr
	}

	if err := b.redisplayBoost(c.ctx, c.session, boostID); err != nil {
		return err
	}

	return c.replyEmbed(fmt.Sprintf("Boost %s updated: %s.", boostID, field))
}
