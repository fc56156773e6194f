// Package narration turns battle events into the console story.
package narration

import (
	"fmt"
	"io"
	"sync"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
)

// ListenerID identifies the narrator on the event bus
const ListenerID = "narrator"

// Narrator writes one or more lines per event. It runs last so other
// listeners can adjust an event before it is told.
type Narrator struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNarrator creates a narrator writing to out
func NewNarrator(out io.Writer) *Narrator {
	return &Narrator{out: out}
}

func (n *Narrator) ID() string    { return ListenerID }
func (n *Narrator) Priority() int { return 1000 }

// Say writes a scripted line that no event stands behind
func (n *Narrator) Say(format string, args ...any) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintf(n.out, format+"\n", args...)
	return err
}

// Status writes the status line of each subject
func (n *Narrator) Status(subjects ...fmt.Stringer) error {
	for _, s := range subjects {
		if err := n.Say("%s", s.String()); err != nil {
			return err
		}
	}
	return nil
}

// HandleEvent implements events.EventListener
func (n *Narrator) HandleEvent(event events.Event) error {
	lines := Lines(event)
	for _, line := range lines {
		if err := n.Say("%s", line); err != nil {
			return fmt.Errorf("failed to narrate %s: %w", event.GetType(), err)
		}
	}
	return nil
}

// Lines renders an event as console lines. Unknown events render nothing.
func Lines(event events.Event) []string {
	switch e := event.(type) {
	case *events.AttackEvent:
		return attackLines(e)
	case *events.ExplorationEvent:
		return explorationLines(e)
	case *events.LootEvent:
		return lootLines(e)
	case *events.ProgressEvent:
		return progressLines(e)
	}
	return nil
}

func attackLines(e *events.AttackEvent) []string {
	switch e.GetType() {
	case events.EventTypeEnemyAttack:
		return []string{fmt.Sprintf("The %s lunges at %s and deals %d damage!", e.Attacker, e.Target, e.Damage)}
	case events.EventTypeCriticalHit:
		return []string{fmt.Sprintf("With a powerful swing, %s lands a critical blow!", e.Attacker)}
	case events.EventTypeMeleeHit:
		return []string{fmt.Sprintf("%s strikes %s and inflicts %d damage!", e.Attacker, e.Target, e.Damage)}
	case events.EventTypeRangedHit:
		return []string{fmt.Sprintf("%s skillfully aims an arrow and hits %s for %d damage!", e.Attacker, e.Target, e.Damage)}
	case events.EventTypeRangedMiss:
		return []string{fmt.Sprintf("%s fires an arrow, but it misses its mark!", e.Attacker)}
	}
	return nil
}

func explorationLines(e *events.ExplorationEvent) []string {
	name := e.Character.Name
	switch e.GetType() {
	case events.EventTypeTreasureFound:
		return []string{fmt.Sprintf("As %s moves forward, they discover a hidden treasure chest!", name)}
	case events.EventTypeTrapSprung:
		return []string{
			fmt.Sprintf("While exploring, %s accidentally steps into a trap!", name),
			fmt.Sprintf("%s suffers %d damage from the trap.", name, e.Damage),
		}
	case events.EventTypeUneventful:
		return []string{fmt.Sprintf("%s continues onward without incident.", name)}
	}
	return nil
}

func lootLines(e *events.LootEvent) []string {
	switch e.GetType() {
	case events.EventTypeItemDropped:
		return []string{fmt.Sprintf("As the dust settles, a shimmering item is revealed: %s", e.Item)}
	case events.EventTypeNothingDropped:
		return []string{"The battlefield is empty... No items were found."}
	case events.EventTypeItemUsed:
		if potion, ok := e.Item.(*entities.HealthPotion); ok {
			return []string{fmt.Sprintf("The potion glows as %s drinks it, restoring %d HP.", e.Character.Name, potion.Restore)}
		}
		return []string{fmt.Sprintf("%s uses the %s.", e.Character.Name, e.Item.GetName())}
	}
	return nil
}

func progressLines(e *events.ProgressEvent) []string {
	switch e.GetType() {
	case events.EventTypeLevelUp:
		return []string{fmt.Sprintf("%s leveled up to %d!", e.Character.Name, e.Level)}
	case events.EventTypeQuestCompleted:
		return []string{
			fmt.Sprintf("The quest %q is complete!", e.Quest.Description),
			fmt.Sprintf("You receive %d EXP as a reward!", e.Reward),
		}
	}
	return nil
}
