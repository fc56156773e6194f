package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/config"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/narration"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/repositories/characters"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file
	if _, err := config.LoadDotEnv(); err != nil {
		log.Printf("Failed to load .env file: %v", err)
		return 1
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providerConfig := &services.ProviderConfig{
		Roller: dice.NewRandomRoller(&dice.RandomRollerConfig{
			Seed:   cfg.Battle.Seed,
			Logger: logger.Named("dice"),
		}),
		Logger: logger,
	}

	// Optional Redis roster
	if redisClient := connectRedis(ctx, cfg.Redis.URL, logger); redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("error closing redis connection", zap.Error(err))
			}
		}()
		providerConfig.CharacterRepository = characters.NewRedis(redisClient)
	}

	narrator := narration.NewNarrator(os.Stdout)
	bus := events.NewBus(logger.Named("events"))
	bus.SubscribeAll(narrator)

	providerConfig.Events = bus
	providerConfig.Narrator = narrator

	provider := services.NewProvider(providerConfig)

	if _, err := provider.BattleService.Run(ctx); err != nil {
		logger.Error("battle aborted", zap.Error(err))
		return 1
	}

	return 0
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

// connectRedis returns nil when no URL is set or Redis is unreachable,
// leaving the roster in memory.
func connectRedis(ctx context.Context, url string, logger *zap.Logger) *redis.Client {
	if url == "" {
		logger.Debug("no REDIS_URL found, using in-memory roster")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("failed to parse redis url, falling back to in-memory roster", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to connect to redis, falling back to in-memory roster",
			zap.String("addr", opts.Addr),
			zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("using redis for persistence", zap.String("addr", opts.Addr))
	return client
}
