package engine

import "strings"

// ParseStat parses user input to a Stat.
// Supported: full names plus the str/agi/int/vit/cha abbreviations.
func ParseStat(input string) (Stat, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "strength", "str":
		return StatStrength, true
	case "agility", "agi":
		return StatAgility, true
	case "intelligence", "int":
		return StatIntelligence, true
	case "vitality", "vit":
		return StatVitality, true
	case "charisma", "cha":
		return StatCharisma, true
	default:
		return "", false
	}
}

// ParseCategory parses a catalog category name.
func ParseCategory(input string) (Category, bool) {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	return c, c.IsValid()
}

// ParseDifficulty parses a catalog difficulty name.
func ParseDifficulty(input string) (Difficulty, bool) {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	return d, d.IsValid()
}
