package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/logger"
	"github.com/keyblasters/boostbot/internal/handlers/discord"
	"github.com/keyblasters/boostbot/internal/models"
	"github.com/keyblasters/boostbot/internal/realms"
	aliasRepo "github.com/keyblasters/boostbot/internal/repositories/alias"
	boostRepo "github.com/keyblasters/boostbot/internal/repositories/boost"
	"github.com/keyblasters/boostbot/internal/repositories/gold_ledger"
	boostService "github.com/keyblasters/boostbot/internal/services/boost"
	ledgerService "github.com/keyblasters/boostbot/internal/services/ledger"
	trackerService "github.com/keyblasters/boostbot/internal/services/tracker"
)

type config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Rank names as they appear on the guild's roles. Empty lists fall
	// back to the bot's defaults.
	ManagementRanks []string `env:"MNG_RANKS" envSeparator:","`
	BoosterRanks    []string `env:"BOOSTER_RANKS" envSeparator:","`
	BlasterRanks    []string `env:"BLASTER_RANKS" envSeparator:","`
	AdvertiserRank  string   `env:"ADVERTISER_RANK" envDefault:"Advertiser"`

	// Custom emojis use the "name:id" form, unicode emojis are used as is.
	TankEmoji      string `env:"TANK_EMOJI" envDefault:"\U0001F6E1️"`
	HealerEmoji    string `env:"HEALER_EMOJI" envDefault:"\U0001F48A"`
	DPSEmoji       string `env:"DPS_EMOJI" envDefault:"⚔️"`
	KeyholderEmoji string `env:"KEYHOLDER_EMOJI" envDefault:"\U0001F5DD️"`
	ProcessEmoji   string `env:"PROCESS_EMOJI" envDefault:"✅"`

	// Default payout fractions, plus optional per-realm advertiser
	// overrides used when a boost opts into bigger advertiser cuts.
	AdvertiserCut       float64            `env:"ADVERTISER_CUT" envDefault:"0.1"`
	ManagementCut       float64            `env:"MANAGEMENT_CUT" envDefault:"0.1"`
	RealmAdvertiserCuts map[string]float64 `env:"REALM_ADVERTISER_CUTS" envSeparator:"," envKeyValSeparator:":"`

	TickInterval      time.Duration `env:"TICK_INTERVAL" envDefault:"5s"`
	WizardStepTimeout time.Duration `env:"WIZARD_STEP_TIMEOUT" envDefault:"60s"`
	BlasterOnlyTicks  int           `env:"BLASTER_ONLY_TICKS" envDefault:"0"`
	TeamTakeHoldTicks int           `env:"TEAM_TAKE_HOLD_TICKS" envDefault:"60"`
	TrackerTTL        time.Duration `env:"TRACKER_TTL" envDefault:"24h"`
}

func main() {
	// A missing .env file is fine, real deployments use the environment.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		logger.Init(true)
		logger.Fatal("failed to parse configuration", zap.Error(err))
	}

	logger.Init(cfg.Debug)
	defer logger.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	ledgerRepo, err := gold_ledger.NewRedis(&gold_ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create gold ledger repository", zap.Error(err))
	}

	aliases, err := aliasRepo.NewRedis(&aliasRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create alias repository", zap.Error(err))
	}

	boostSnapshots, err := boostRepo.NewRedis(&boostRepo.Config{
		Client: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create boost repository", zap.Error(err))
	}

	resolver, err := realms.NewResolver(&realms.Config{
		AliasRepo: aliases,
	})
	if err != nil {
		logger.Fatal("failed to create realm resolver", zap.Error(err))
	}

	boostSvc, err := boostService.New(&boostService.Config{
		CutTable:          buildCutTable(cfg),
		BlasterOnlyTicks:  cfg.BlasterOnlyTicks,
		TeamTakeHoldTicks: cfg.TeamTakeHoldTicks,
		Repository:        boostSnapshots,
	})
	if err != nil {
		logger.Fatal("failed to create boost service", zap.Error(err))
	}

	ledgerSvc, err := ledgerService.New(&ledgerService.Config{
		Repository: ledgerRepo,
	})
	if err != nil {
		logger.Fatal("failed to create ledger service", zap.Error(err))
	}

	trackerSvc, err := trackerService.New(&trackerService.Config{
		TTL: cfg.TrackerTTL,
	})
	if err != nil {
		logger.Fatal("failed to create tracker service", zap.Error(err))
	}

	bot, err := discord.New(&discord.Config{
		Token:           cfg.DiscordToken,
		Prefix:          cfg.CommandPrefix,
		ManagementRanks: cfg.ManagementRanks,
		BoosterRanks:    cfg.BoosterRanks,
		BlasterRanks:    cfg.BlasterRanks,
		AdvertiserRank:  cfg.AdvertiserRank,
		RoleEmojis: map[string]string{
			"tank":      cfg.TankEmoji,
			"healer":    cfg.HealerEmoji,
			"dps":       cfg.DPSEmoji,
			"keyholder": cfg.KeyholderEmoji,
		},
		ProcessEmoji:      cfg.ProcessEmoji,
		TickInterval:      cfg.TickInterval,
		WizardStepTimeout: cfg.WizardStepTimeout,
		BoostService:      boostSvc,
		LedgerService:     ledgerSvc,
		TrackerService:    trackerSvc,
		Resolver:          resolver,
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(context.Background()); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}

// buildCutTable assembles the realm cut table from the default rates and the
// per-realm advertiser overrides.
func buildCutTable(cfg config) models.CutTable {
	table := models.CutTable{
		models.DefaultCutKey: {
			Advertiser: cfg.AdvertiserCut,
			Management: cfg.ManagementCut,
		},
	}
	for realm, advCut := range cfg.RealmAdvertiserCuts {
		table[realm] = models.CutRates{
			Advertiser: advCut,
			Management: cfg.ManagementCut,
		}
	}
	return table
}
