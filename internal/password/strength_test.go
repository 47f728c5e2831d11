package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want Tier
	}{
		{name: "empty", pw: "", want: Weak},
		{name: "eight lowercase", pw: "abcdefgh", want: Weak},
		{name: "nine chars three classes", pw: "Abcdefgh1", want: Medium},
		{name: "twelve chars four classes", pw: "Abcdefgh123!", want: Strong},
		{name: "short but diverse", pw: "Ab1!", want: Weak},
		{name: "seven chars four classes", pw: "Abc123!", want: Weak},
		{name: "eight chars two classes", pw: "abcdefg1", want: Medium},
		{name: "eleven chars four classes capped at medium", pw: "Abcdefg123!", want: Medium},
		{name: "twelve chars two classes", pw: "abcdefghijk1", want: Medium},
		{name: "twelve chars three classes", pw: "Abcdefghijk1", want: Strong},
		{name: "long single class", pw: strings.Repeat("a", 40), want: Medium},
		{name: "whitespace counts as symbol", pw: "abc defgh12", want: Medium},
		{name: "unicode counts as symbol", pw: "Passwörter12", want: Strong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.pw))
		})
	}
}

func TestAnalyzeBreakdown(t *testing.T) {
	tests := []struct {
		pw        string
		length    int
		lenScore  int
		diversity int
		total     int
	}{
		{pw: "", length: 0},
		{pw: "abcdefgh", length: 8, lenScore: 1, diversity: 1, total: 2},
		{pw: "Abcdefgh1", length: 9, lenScore: 1, diversity: 3, total: 4},
		{pw: "Abcdefgh123!", length: 12, lenScore: 2, diversity: 4, total: 6},
		{pw: "日本語", length: 3, lenScore: 0, diversity: 1, total: 1},
	}

	for _, tt := range tests {
		a := Analyze(tt.pw)
		assert.Equal(t, tt.length, a.Length, tt.pw)
		assert.Equal(t, tt.lenScore, a.LengthScore, tt.pw)
		assert.Equal(t, tt.diversity, a.Diversity, tt.pw)
		assert.Equal(t, tt.total, a.TotalScore, tt.pw)
		assert.Equal(t, Score(tt.pw), a.Tier, tt.pw)
	}
}

func TestScoreIsPure(t *testing.T) {
	for _, pw := range []string{"", "abcdefgh", "Abcdefgh1", "Abcdefgh123!"} {
		assert.Equal(t, Score(pw), Score(pw))
	}
}

func TestTierMetadata(t *testing.T) {
	assert.Equal(t, "Weak", Weak.Label())
	assert.Equal(t, "Medium", Medium.Label())
	assert.Equal(t, "Strong", Strong.Label())

	assert.Equal(t, 0, Weak.MinLength())
	assert.Equal(t, 8, Medium.MinLength())
	assert.Equal(t, 12, Strong.MinLength())

	assert.Equal(t, "strong", Strong.String())
	assert.Equal(t, "weak", Tier(42).Class())
}

func TestGeneratedPasswordsScore(t *testing.T) {
	pw, err := Generate(16, AllSelected(), nil)
	assert.NoError(t, err)
	assert.Equal(t, Strong, Score(pw))

	pw, err = Generate(8, NewSelection(Lowercase), nil)
	assert.NoError(t, err)
	assert.Equal(t, Weak, Score(pw))
}

func TestEstimateStrength(t *testing.T) {
	empty := EstimateStrength("")
	assert.Equal(t, 0, empty.Score)
	assert.Zero(t, empty.EntropyBits)

	weak := EstimateStrength("password")
	strong := EstimateStrength("q8#Vt!2mZr@Lw9&xP4")

	assert.GreaterOrEqual(t, weak.Score, 0)
	assert.LessOrEqual(t, strong.Score, 4)
	assert.Greater(t, strong.EntropyBits, weak.EntropyBits)
	assert.NotEmpty(t, strong.CrackTime)

	long := EstimateStrength(strings.Repeat("Ab1!", 200))
	assert.LessOrEqual(t, long.Score, 4)
}
