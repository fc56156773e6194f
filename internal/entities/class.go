package entities

// Class is the archetype of a character. The set is closed.
type Class string

const (
	// ClassAdventurer is the generic base archetype with even growth
	ClassAdventurer Class = "adventurer"
	ClassWarrior    Class = "warrior"
	ClassWizard     Class = "wizard"
	ClassArcher     Class = "archer"
)

// Growth is the attribute gain per level for a class. Starting
// attributes are level × growth.
type Growth struct {
	Power     int `json:"power"`
	Knowledge int `json:"knowledge"`
	Luck      int `json:"luck"`
}

var classGrowth = map[Class]Growth{
	ClassAdventurer: {Power: 5, Knowledge: 5, Luck: 5},
	ClassWarrior:    {Power: 10, Knowledge: 5, Luck: 5},
	ClassWizard:     {Power: 5, Knowledge: 10, Luck: 7},
	ClassArcher:     {Power: 7, Knowledge: 5, Luck: 10},
}

var classTitles = map[Class]string{
	ClassWarrior: "Warrior",
	ClassWizard:  "Wizard",
	ClassArcher:  "Archer",
}

// IsValid reports whether c is one of the known classes
func (c Class) IsValid() bool {
	_, ok := classGrowth[c]
	return ok
}

// Growth returns the per-level attribute increments for the class.
// Unknown classes fall back to the generic adventurer growth.
func (c Class) Growth() Growth {
	if g, ok := classGrowth[c]; ok {
		return g
	}
	return classGrowth[ClassAdventurer]
}

// Title is the display prefix for status lines, empty for adventurers
func (c Class) Title() string {
	return classTitles[c]
}
