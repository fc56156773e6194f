package mockdice

import (
	"fmt"
	"sync"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
)

type scriptedRoll struct {
	value int
	total bool // value is the bonus-inclusive result of a single die
}

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []scriptedRoll
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetRolls replaces the script with raw die faces
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = m.rolls[:0]
	for _, r := range rolls {
		m.rolls = append(m.rolls, scriptedRoll{value: r})
	}
	m.rollIndex = 0
}

// SetTotals replaces the script with final results, which reads better
// for range draws: SetTotals(15) makes dice.Between(r, 1, 100) return 15.
func (m *ManualMockRoller) SetTotals(totals ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = m.rolls[:0]
	for _, t := range totals {
		m.rolls = append(m.rolls, scriptedRoll{value: t, total: true})
	}
	m.rollIndex = 0
}

// Remaining returns how many scripted rolls have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) next() (scriptedRoll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return scriptedRoll{}, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		scripted, err := m.next()
		if err != nil {
			return nil, err
		}

		face := scripted.value
		if scripted.total {
			if count != 1 {
				return nil, fmt.Errorf("scripted total %d used for a %dd%d roll", scripted.value, count, sides)
			}
			face = scripted.value - bonus
		}
		if face < 1 || face > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d+%d", scripted.value, sides, bonus)
		}

		rolls[i] = face
		rawTotal += face
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}
