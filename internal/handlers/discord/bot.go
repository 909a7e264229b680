package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
	"github.com/keyblasters/boostbot/internal/realms"
	boostService "github.com/keyblasters/boostbot/internal/services/boost"
	"github.com/keyblasters/boostbot/internal/services/ledger"
	"github.com/keyblasters/boostbot/internal/services/tracker"
)

const (
	defaultPrefix       = "!"
	defaultTickInterval = 5 * time.Second
	defaultWizardStep   = 60 * time.Second
)

// Default rank names, overridable through Config.
var (
	defaultManagementRanks = []string{"Management", "Support"}
	defaultBoosterRanks    = []string{
		"M+Booster", "M+Blaster", "Advertiser", "Trial Advertiser",
		"Alliance Booster", "SL Booster", "SL Blaster",
	}
	defaultBlasterRanks = []string{"M+Blaster", "SL Blaster"}
)

// Bot wires Discord events to the boost, ledger, and tracker services.
type Bot struct {
	session *discordgo.Session
	config  *Config

	boostService  boostService.Service
	ledgerService ledger.Service
	trackerSvc    *tracker.Service
	resolver      *realms.Resolver

	commands map[string]commandHandler

	// wizards in progress, keyed by the author's user ID
	wizardMu sync.Mutex
	wizards  map[string]*wizardSession

	stopScheduler context.CancelFunc
	schedulerDone chan struct{}
}

// Config holds the configuration for the bot.
type Config struct {
	// Token is the Discord bot token
	Token string

	// Prefix is the command prefix; defaults to "!"
	Prefix string

	// ManagementRanks may issue admin commands
	ManagementRanks []string

	// BoosterRanks may sign up for boosts and read balances
	BoosterRanks []string

	// BlasterRanks may sign up while the privileged window is open
	BlasterRanks []string

	// AdvertiserRank may run the boost wizard in addition to management
	AdvertiserRank string

	// RoleEmojis maps the role keys tank, healer, dps, and keyholder to
	// the emoji used on boost messages. Custom emojis use "name:id".
	RoleEmojis map[string]string

	// ProcessEmoji triggers the payout of a started boost
	ProcessEmoji string

	// TickInterval is the scheduler cadence; defaults to 5s
	TickInterval time.Duration

	// WizardStepTimeout bounds each wizard prompt; defaults to 60s
	WizardStepTimeout time.Duration

	// BoostService manages boost lifecycles
	BoostService boostService.Service

	// LedgerService manages gold
	LedgerService ledger.Service

	// TrackerService records reactions on watched messages
	TrackerService *tracker.Service

	// Resolver validates realm names
	Resolver *realms.Resolver
}

// New creates a new Discord bot.
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("cfg cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("cfg.Token cannot be empty")
	}

	if cfg.BoostService == nil {
		return nil, errors.New("cfg.BoostService cannot be nil")
	}

	if cfg.LedgerService == nil {
		return nil, errors.New("cfg.LedgerService cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("cfg.TrackerService cannot be nil")
	}

	if cfg.Resolver == nil {
		return nil, errors.New("cfg.Resolver cannot be nil")
	}

	if len(cfg.RoleEmojis) == 0 {
		return nil, errors.New("cfg.RoleEmojis cannot be empty")
	}
	for _, key := range []string{roleKeyTank, roleKeyHealer, roleKeyDPS, roleKeyKeyholder} {
		if cfg.RoleEmojis[key] == "" {
			return nil, fmt.Errorf("cfg.RoleEmojis is missing the %q entry", key)
		}
	}

	if cfg.ProcessEmoji == "" {
		return nil, errors.New("cfg.ProcessEmoji cannot be empty")
	}

	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.WizardStepTimeout <= 0 {
		cfg.WizardStepTimeout = defaultWizardStep
	}
	if len(cfg.ManagementRanks) == 0 {
		cfg.ManagementRanks = defaultManagementRanks
	}
	if len(cfg.BoosterRanks) == 0 {
		cfg.BoosterRanks = defaultBoosterRanks
	}
	if len(cfg.BlasterRanks) == 0 {
		cfg.BlasterRanks = defaultBlasterRanks
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	bot := &Bot{
		session:       session,
		config:        cfg,
		boostService:  cfg.BoostService,
		ledgerService: cfg.LedgerService,
		trackerSvc:    cfg.TrackerService,
		resolver:      cfg.Resolver,
		wizards:       make(map[string]*wizardSession),
	}
	bot.commands = bot.commandTable()

	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleReactionAdd)
	session.AddHandler(bot.handleReactionRemove)

	return bot, nil
}

// Start opens the Discord connection, restores persisted boosts, and starts
// the scheduler loop.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	restored, err := b.boostService.RestoreBoosts(ctx)
	if err != nil {
		logger.Error("failed to restore boosts", zap.Error(err))
	} else if restored.Restored > 0 {
		logger.Info("restored open boosts", zap.Int("count", restored.Restored))
	}

	schedulerCtx, cancel := context.WithCancel(context.Background())
	b.stopScheduler = cancel
	b.schedulerDone = make(chan struct{})
	go b.runScheduler(schedulerCtx)

	logger.Info("bot is running")
	return nil
}

// Stop shuts down the scheduler and the Discord connection.
func (b *Bot) Stop() error {
	if b.stopScheduler != nil {
		b.stopScheduler()
		<-b.schedulerDone
	}

	return b.session.Close()
}

// memberHasAnyRank reports whether the member holds any of the named guild
// roles. Rank configuration is by role name, matching how operators manage
// the guild.
func (b *Bot) memberHasAnyRank(s *discordgo.Session, guildID string, member *discordgo.Member, rankNames []string) bool {
	if member == nil {
		return false
	}

	named := make(map[string]struct{}, len(rankNames))
	for _, name := range rankNames {
		named[name] = struct{}{}
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			continue
		}
		if _, ok := named[role.Name]; ok {
			return true
		}
	}

	return false
}

func (b *Bot) isManagement(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	return b.memberHasAnyRank(s, guildID, member, b.config.ManagementRanks)
}

func (b *Bot) isBooster(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	return b.memberHasAnyRank(s, guildID, member, b.config.BoosterRanks)
}

func (b *Bot) isBlaster(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	return b.memberHasAnyRank(s, guildID, member, b.config.BlasterRanks)
}

// memberHasRoleID reports whether the member holds the given role ID.
func memberHasRoleID(member *discordgo.Member, roleID string) bool {
	if member == nil {
		return false
	}
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

// displayName prefers the guild nickname over the account name.
func displayName(member *discordgo.Member) string {
	if member == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		return member.User.Username
	}
	return ""
}
