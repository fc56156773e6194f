package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import (
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
)

// Roller is the single source of randomness for the whole battle.
// Every probability decision draws from one injected Roller so tests
// can script the outcome.
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains the detail of one roll
type RollResult struct {
	Total    int   // RawTotal + Bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of the dice without the bonus
}

// Between draws uniformly from the inclusive range [low, high] by
// rolling one die of (high-low+1) sides offset by low-1.
func Between(roller Roller, low, high int) (int, error) {
	if roller == nil {
		return 0, rpgerr.InvalidArgument("roller is required")
	}
	if low > high {
		return 0, rpgerr.InvalidArgumentf("invalid range [%d, %d]", low, high)
	}

	result, err := roller.Roll(1, high-low+1, low-1)
	if err != nil {
		return 0, rpgerr.Wrapf(err, "failed to roll between %d and %d", low, high)
	}

	return result.Total, nil
}

func validate(count, sides int) error {
	if count < 1 {
		return rpgerr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return rpgerr.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}
