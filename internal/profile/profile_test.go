package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultsMode(t *testing.T) {
	p := &Profile{Mode: "bogus", Data: t.TempDir()}
	err := p.Validate()
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Mode)
}

func TestValidateSQLiteDSN(t *testing.T) {
	dir := t.TempDir()
	p := &Profile{Mode: "dev", Data: dir}
	err := p.Validate()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", p.Driver)
	assert.Contains(t, p.DSN, "agendapilot_dev.db")
}

func TestValidatePostgresRequiresDSN(t *testing.T) {
	p := &Profile{Mode: "dev", Driver: "postgres", Data: t.TempDir()}
	err := p.Validate()
	assert.Error(t, err)
}

func TestIsLLMEnabled(t *testing.T) {
	p := &Profile{}
	assert.False(t, p.IsLLMEnabled())
	p.LLMAPIKey = "sk-test"
	assert.True(t, p.IsLLMEnabled())
}
