package password

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// Estimate is a pattern-aware guessability estimate. It is informational
// and does not influence Score.
type Estimate struct {
	Score       int     // 0 (trivial) to 4 (very hard)
	EntropyBits float64
	CrackTime   string
}

// maxEstimateLength bounds the matcher's work on hostile input.
const maxEstimateLength = 256

// EstimateStrength runs zxcvbn over pw. Inputs such as a username can be
// passed so that passwords containing them are penalised.
func EstimateStrength(pw string, userInputs ...string) Estimate {
	if pw == "" {
		return Estimate{CrackTime: "instant"}
	}
	if r := []rune(pw); len(r) > maxEstimateLength {
		pw = string(r[:maxEstimateLength])
	}
	res := zxcvbn.PasswordStrength(pw, userInputs)
	return Estimate{
		Score:       res.Score,
		EntropyBits: res.Entropy,
		CrackTime:   res.CrackTimeDisplay,
	}
}
