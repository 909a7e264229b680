package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
	"github.com/keyblasters/boostbot/internal/models"
	boostService "github.com/keyblasters/boostbot/internal/services/boost"
)

// wizard steps, in prompt order
const (
	stepPot = iota
	stepAdvertiser
	stepAdvertiserPayout
	stepRealm
	stepBiggerAdvCuts
	stepInitialBoosters
	stepBoosterRoles
	stepBoosterKeyholder
	stepKey
	stepArmorStack
	stepBoostsNumber
	stepWhisper
	stepPings
	stepNote
)

// wizardSession collects the boost fields through sequential prompts in the
// channel where the wizard was started.
type wizardSession struct {
	mu sync.Mutex

	authorID  string
	channelID string
	guildID   string
	step      int
	timer     *time.Timer

	input boostService.CreateBoostInput

	// pendingBoosters are mentions still waiting for their role prompt
	pendingBoosters []string
	boosters        []*models.Booster
	hasKeyholder    bool
}

// handleBoostWizard starts the boost creation conversation.
func (b *Bot) handleBoostWizard(c *commandContext) error {
	allowed := b.isManagement(c.session, c.message.GuildID, c.message.Member) ||
		b.memberHasAnyRank(c.session, c.message.GuildID, c.message.Member, []string{b.config.AdvertiserRank})
	if !allowed {
		return errors.New("you are not allowed to use this command")
	}

	b.wizardMu.Lock()
	defer b.wizardMu.Unlock()

	if _, busy := b.wizards[c.message.Author.ID]; busy {
		return errors.New("you already have a boost creation in progress")
	}

	w := &wizardSession{
		authorID:  c.message.Author.ID,
		channelID: c.message.ChannelID,
		guildID:   c.message.GuildID,
		step:      stepPot,
	}
	w.input.AuthorID = c.message.Author.ID
	w.input.BoostAuthor = displayName(c.message.Member)
	w.timer = time.AfterFunc(b.config.WizardStepTimeout, func() {
		b.expireWizard(c.message.Author.ID)
	})
	b.wizards[c.message.Author.ID] = w

	return c.reply("Boost pot size?")
}

// expireWizard cancels a wizard whose author stopped answering.
func (b *Bot) expireWizard(authorID string) {
	b.wizardMu.Lock()
	w, ok := b.wizards[authorID]
	if ok {
		delete(b.wizards, authorID)
	}
	b.wizardMu.Unlock()

	if !ok {
		return
	}

	_, _ = b.session.ChannelMessageSend(w.channelID,
		fmt.Sprintf("Got no response in %s, canceling boost creation.", b.config.WizardStepTimeout))
}

// feedWizard routes a message into the author's active wizard. It reports
// whether the message was consumed.
func (b *Bot) feedWizard(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) bool {
	b.wizardMu.Lock()
	w, ok := b.wizards[m.Author.ID]
	b.wizardMu.Unlock()

	if !ok || w.channelID != m.ChannelID {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	content := strings.TrimSpace(m.Content)
	if strings.EqualFold(content, "cancel") {
		b.finishWizard(w)
		_, _ = s.ChannelMessageSend(w.channelID, "Boost creation cancelled.")
		return true
	}

	w.timer.Reset(b.config.WizardStepTimeout)

	prompt, done, err := b.advanceWizard(ctx, s, w, content)
	if err != nil {
		_, _ = s.ChannelMessageSend(w.channelID, err.Error())
		return true
	}

	if done {
		b.finishWizard(w)
		if err := b.publishBoost(ctx, s, w); err != nil {
			logger.Error("failed to publish boost", zap.Error(err))
			_, _ = s.ChannelMessageSend(w.channelID, "Failed to create the boost: "+err.Error())
		}
		return true
	}

	if prompt != "" {
		_, _ = s.ChannelMessageSend(w.channelID, prompt)
	}
	return true
}

// finishWizard removes the session and stops its timeout timer.
func (b *Bot) finishWizard(w *wizardSession) {
	w.timer.Stop()

	b.wizardMu.Lock()
	delete(b.wizards, w.authorID)
	b.wizardMu.Unlock()
}

// advanceWizard applies one answer. It returns the next prompt, or done when
// every field is collected. A returned error is shown to the author and the
// current step repeats.
func (b *Bot) advanceWizard(ctx context.Context, s *discordgo.Session, w *wizardSession, answer string) (string, bool, error) {
	switch w.step {
	case stepPot:
		pot, err := models.ParseGoldAmount(answer)
		if err != nil {
			return "", false, err
		}
		w.input.Pot = pot
		w.step = stepAdvertiser
		return "Boost advertiser?", false, nil

	case stepAdvertiser:
		userID, ok := parseUserMention(answer)
		if !ok {
			return "", false, fmt.Errorf("%s is not a user mention", answer)
		}
		member, err := s.GuildMember(w.guildID, userID)
		if err != nil {
			return "", false, fmt.Errorf("failed to fetch member: %w", err)
		}
		w.input.AdvertiserID = userID
		w.input.AdvertiserMention = answer
		w.input.AdvertiserName = displayName(member)
		w.step = stepAdvertiserPayout
		return "Include the advertiser in the payout? [y]es/[n]o", false, nil

	case stepAdvertiserPayout:
		w.input.IncludeAdvertiserInPayout = answer == "y" || answer == "yes"
		w.step = stepRealm
		return "Realm name?", false, nil

	case stepRealm:
		realmName, err := b.resolver.Resolve(ctx, answer)
		if err != nil {
			return "", false, err
		}
		w.input.RealmName = realmName
		w.step = stepBiggerAdvCuts
		return "Bigger advertiser cuts? [y]es/[n]o", false, nil

	case stepBiggerAdvCuts:
		w.input.BiggerAdvCuts = answer == "y" || answer == "yes"
		w.step = stepInitialBoosters
		return `Want to have anyone already signed for the boost? Use mentions or "no".`, false, nil

	case stepInitialBoosters:
		for _, token := range strings.Fields(answer) {
			if _, ok := parseUserMention(token); ok {
				w.pendingBoosters = append(w.pendingBoosters, token)
			}
		}
		if len(w.pendingBoosters) == 0 {
			w.step = stepKey
			return "Dungeon key?", false, nil
		}
		w.step = stepBoosterRoles
		return "Role for " + w.pendingBoosters[0] + "? One or more from: tank/dps/healer", false, nil

	case stepBoosterRoles:
		booster, err := b.parseWizardBooster(s, w, answer)
		if err != nil {
			return "", false, err
		}
		w.boosters = append(w.boosters, booster)
		if !w.hasKeyholder {
			w.step = stepBoosterKeyholder
			return "Keyholder? [y]es/[n]o", false, nil
		}
		return b.nextBoosterPrompt(w), false, nil

	case stepBoosterKeyholder:
		if answer == "y" || answer == "yes" {
			w.boosters[len(w.boosters)-1].IsKeyholder = true
			w.hasKeyholder = true
		}
		return b.nextBoosterPrompt(w), false, nil

	case stepKey:
		w.input.Key = answer
		w.step = stepArmorStack
		return `Armor stack? Use role mention or "no".`, false, nil

	case stepArmorStack:
		if roleID, ok := parseRoleMention(answer); ok {
			role, err := s.State.Role(w.guildID, roleID)
			if err != nil {
				return "", false, fmt.Errorf("failed to look up role: %w", err)
			}
			w.input.ArmorStack = &models.RoleRef{
				ID:      role.ID,
				Name:    role.Name,
				Mention: role.Mention(),
			}
		}
		w.step = stepBoostsNumber
		return "Number of boosts?", false, nil

	case stepBoostsNumber:
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 {
			return "", false, fmt.Errorf("%s is not a number", answer)
		}
		w.input.BoostsNumber = n
		w.step = stepWhisper
		return "Character to whisper?", false, nil

	case stepWhisper:
		w.input.CharacterToWhisper = answer
		w.step = stepPings
		return `Roles to ping? Use mentions or "no".`, false, nil

	case stepPings:
		if !strings.EqualFold(answer, "no") {
			w.input.Pings = answer
		}
		w.step = stepNote
		return `Anything else to add? If not type "no".`, false, nil

	case stepNote:
		if answer != "no" && answer != "n" {
			w.input.Note = answer
		}
		return "", true, nil
	}

	return "", false, fmt.Errorf("unexpected wizard step %d", w.step)
}

// parseWizardBooster builds a booster from the pending mention and the
// answered role list.
func (b *Bot) parseWizardBooster(s *discordgo.Session, w *wizardSession, answer string) (*models.Booster, error) {
	mention := w.pendingBoosters[0]
	userID, _ := parseUserMention(mention)

	booster := &models.Booster{
		UserID:  userID,
		Mention: mention,
	}
	for _, token := range strings.Fields(strings.ToLower(answer)) {
		switch token {
		case "tank":
			booster.IsTank = true
		case "healer":
			booster.IsHealer = true
		case "dps":
			booster.IsDPS = true
		default:
			return nil, fmt.Errorf("%s is not one of tank/dps/healer", token)
		}
	}
	if !booster.HasCombatRole() {
		return nil, errors.New("at least one of tank/dps/healer is required")
	}

	w.pendingBoosters = w.pendingBoosters[1:]
	return booster, nil
}

// nextBoosterPrompt advances past the answered booster.
func (b *Bot) nextBoosterPrompt(w *wizardSession) string {
	if len(w.pendingBoosters) > 0 {
		w.step = stepBoosterRoles
		return "Role for " + w.pendingBoosters[0] + "? One or more from: tank/dps/healer"
	}
	w.step = stepKey
	return "Dungeon key?"
}

// publishBoost creates the boost, renders it, and seeds the reaction
// controls.
func (b *Bot) publishBoost(ctx context.Context, s *discordgo.Session, w *wizardSession) error {
	created, err := b.boostService.CreateBoost(ctx, &w.input)
	if err != nil {
		return err
	}
	boostID := created.Boost.UUID

	// seed the pre-signed roster
	for _, booster := range w.boosters {
		_, err := b.boostService.AddBooster(ctx, &boostService.AddBoosterInput{
			BoostID:        boostID,
			Booster:        booster,
			HasBlasterRank: true,
		})
		if err != nil {
			return err
		}
	}

	current, err := b.boostService.GetBoost(ctx, &boostService.GetBoostInput{BoostID: boostID})
	if err != nil {
		return err
	}

	if current.Boost.Pings != "" {
		_, _ = s.ChannelMessageSend(w.channelID, current.Boost.Pings)
	}

	msg, err := s.ChannelMessageSendEmbed(w.channelID, b.buildBoostEmbed(current.Boost))
	if err != nil {
		return err
	}

	err = b.boostService.RegisterMessage(ctx, &boostService.RegisterMessageInput{
		BoostID:   boostID,
		ChannelID: w.channelID,
		MessageID: msg.ID,
	})
	if err != nil {
		return err
	}

	for _, key := range []string{roleKeyTank, roleKeyHealer, roleKeyDPS, roleKeyKeyholder} {
		if err := s.MessageReactionAdd(w.channelID, msg.ID, b.config.RoleEmojis[key]); err != nil {
			logger.Warn("failed to seed reaction", zap.String("emoji", key), zap.Error(err))
		}
	}
	if err := s.MessageReactionAdd(w.channelID, msg.ID, b.config.ProcessEmoji); err != nil {
		logger.Warn("failed to seed process reaction", zap.Error(err))
	}

	return nil
}
