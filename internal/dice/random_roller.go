package dice

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// randomRoller implements Roller on top of one seeded generator.
// The generator is not safe for concurrent use, so draws are serialized.
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
	logger *zap.Logger
}

// RandomRollerConfig holds configuration for the random roller
type RandomRollerConfig struct {
	// Seed makes the sequence reproducible. Zero seeds from the clock.
	Seed   int64
	Logger *zap.Logger
}

// NewRandomRoller creates a roller seeded once for the life of the process
func NewRandomRoller(cfg *RandomRollerConfig) Roller {
	var seed int64
	logger := zap.NewNop()
	if cfg != nil {
		seed = cfg.Seed
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Debug("seeded random roller", zap.Int64("seed", seed))

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	r.mu.Lock()
	rolls := make([]int, count)
	rawTotal := 0
	for i := range rolls {
		rolls[i] = r.random.Intn(sides) + 1
		rawTotal += rolls[i]
	}
	r.mu.Unlock()

	r.logger.Debug("rolled dice",
		zap.Int("count", count),
		zap.Int("sides", sides),
		zap.Ints("rolls", rolls),
		zap.Int("bonus", bonus),
		zap.Int("total", rawTotal+bonus))

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}
