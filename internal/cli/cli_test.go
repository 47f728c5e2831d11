package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/password"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerateDefaults(t *testing.T) {
	out, err := run(t, "", "generate")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 16)
}

func TestGenerateCountAndLength(t *testing.T) {
	out, err := run(t, "", "generate", "-l", "10", "-c", "4")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 4)
	for _, pw := range got {
		assert.Len(t, pw, 10)
	}
}

func TestGenerateClassFlags(t *testing.T) {
	out, err := run(t, "", "generate", "-l", "40", "--symbols=false", "--uppercase=false")
	require.NoError(t, err)

	pw := lines(out)[0]
	for _, ch := range pw {
		assert.Truef(t, (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9'), "unexpected %q in %q", ch, pw)
	}
}

func TestGenerateOnly(t *testing.T) {
	out, err := run(t, "", "generate", "-l", "30", "--only", "digits")
	require.NoError(t, err)

	pw := lines(out)[0]
	assert.Len(t, pw, 30)
	assert.Empty(t, strings.Trim(pw, password.Digit.Alphabet()))
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no classes", args: []string{"--uppercase=false", "--lowercase=false", "--numbers=false", "--symbols=false"}, want: password.ErrInvalidSelection},
		{name: "too short", args: []string{"-l", "3"}, want: password.ErrLengthInsufficient},
		{name: "too long", args: []string{"-l", "1000"}, want: password.ErrLengthOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", append([]string{"generate"}, tt.args...)...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := run(t, "", "generate", "--only", "emoji")
	assert.Error(t, err)

	_, err = run(t, "", "generate", "--seed", "x", "--weak")
	assert.Error(t, err)

	_, err = run(t, "", "generate", "-c", "0")
	assert.Error(t, err)
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	a, err := run(t, "", "generate", "--seed", "fixture", "-c", "3")
	require.NoError(t, err)
	b, err := run(t, "", "generate", "--seed", "fixture", "-c", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateWithStrength(t *testing.T) {
	out, err := run(t, "", "generate", "-l", "16", "--strength")
	require.NoError(t, err)

	fields := strings.Split(lines(out)[0], "\t")
	require.Len(t, fields, 2)
	assert.Equal(t, "Strong", fields[1])
}

func TestStrengthArgument(t *testing.T) {
	out, err := run(t, "", "strength", "Abcdefgh1")
	require.NoError(t, err)
	assert.Contains(t, out, "Strength:    Medium")
	assert.Contains(t, out, "Total score: 4")
}

func TestStrengthStdin(t *testing.T) {
	out, err := run(t, "Abcdefgh123!\n", "strength")
	require.NoError(t, err)
	assert.Contains(t, out, "Strength:    Strong")

	out, err = run(t, "", "strength")
	require.NoError(t, err)
	assert.Contains(t, out, "Strength:    Weak")
}

func TestStrengthJSON(t *testing.T) {
	out, err := run(t, "", "strength", "--json", "abcdefgh")
	require.NoError(t, err)

	var resp model.StrengthResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "weak", resp.Tier)
	assert.Equal(t, 2, resp.TotalScore)
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "", "token", "--subject", "ci")
	assert.Error(t, err)
}

func TestTokenMintsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	out, err := run(t, "", "token", "--subject", "ci", "--ttl", "5m")
	require.NoError(t, err)

	claims, err := crypto.ValidateToken(strings.TrimSpace(out), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, "ci", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, time.Minute)
}
