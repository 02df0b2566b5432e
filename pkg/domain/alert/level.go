package alert

// Level is the urgency of a sighting alert. Comparison is by declared
// ordinal position within the fixed sequence, not by any numeric field.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

var levelOrder = []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical}

// Ordinal returns the level's position in the fixed ordering. Unknown levels
// rank below low so they never satisfy a minimum-level filter.
func (l Level) Ordinal() int {
	for i, known := range levelOrder {
		if known == l {
			return i
		}
	}
	return -1
}

// AtLeast reports whether l ranks at or above min.
func (l Level) AtLeast(min Level) bool {
	return l.Ordinal() >= min.Ordinal()
}

func (l Level) Valid() bool {
	return l.Ordinal() >= 0
}
