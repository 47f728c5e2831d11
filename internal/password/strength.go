package password

import "unicode/utf8"

// Tier is a qualitative strength rating.
type Tier uint8

const (
	Weak Tier = iota
	Medium
	Strong
)

type tierInfo struct {
	label     string
	class     string
	minLength int
}

var tiers = [...]tierInfo{
	Weak:   {label: "Weak", class: "weak", minLength: 0},
	Medium: {label: "Medium", class: "medium", minLength: 8},
	Strong: {label: "Strong", class: "strong", minLength: 12},
}

func (t Tier) info() tierInfo {
	if int(t) < len(tiers) {
		return tiers[t]
	}
	return tiers[Weak]
}

// Label is the human readable name of the tier.
func (t Tier) Label() string { return t.info().label }

// Class is a lowercase key suitable for styling.
func (t Tier) Class() string { return t.info().class }

// MinLength is the shortest password that can reach the tier. It is
// descriptive only; Score applies its own length gates.
func (t Tier) MinLength() int { return t.info().minLength }

func (t Tier) String() string { return t.Class() }

// Analysis breaks a score down into its parts.
type Analysis struct {
	Length      int
	LengthScore int
	HasUpper    bool
	HasLower    bool
	HasDigit    bool
	HasOther    bool
	Diversity   int
	TotalScore  int
	Tier        Tier
}

// Score rates a password. It never fails; an empty password is Weak.
func Score(pw string) Tier {
	return Analyze(pw).Tier
}

// Analyze computes the length and diversity scores for pw and the tier
// they lead to. Length is measured in runes. Any rune outside A-Z, a-z and
// 0-9 counts as a symbol.
func Analyze(pw string) Analysis {
	a := Analysis{Length: utf8.RuneCountInString(pw)}
	if a.Length == 0 {
		return a
	}

	switch {
	case a.Length >= 12:
		a.LengthScore = 2
	case a.Length >= 8:
		a.LengthScore = 1
	}

	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			a.HasUpper = true
		case r >= 'a' && r <= 'z':
			a.HasLower = true
		case r >= '0' && r <= '9':
			a.HasDigit = true
		default:
			a.HasOther = true
		}
	}
	for _, has := range []bool{a.HasUpper, a.HasLower, a.HasDigit, a.HasOther} {
		if has {
			a.Diversity++
		}
	}

	a.TotalScore = a.LengthScore + a.Diversity

	switch {
	case a.TotalScore >= 5 && a.Length >= 12:
		a.Tier = Strong
	case a.TotalScore >= 3 && a.Length >= 8:
		a.Tier = Medium
	default:
		a.Tier = Weak
	}
	return a
}
