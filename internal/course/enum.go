package course

// Level partitions a course's modules into difficulty tiers.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var AllLevels = []Level{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
}

func (l Level) IsValid() bool {
	for _, v := range AllLevels {
		if l == v {
			return true
		}
	}
	return false
}
