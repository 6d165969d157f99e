package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validgen/validgen/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "_valid.gen", cfg.OutputSuffix)
	assert.Equal(t, "validate", cfg.ValidateTag)
	assert.Equal(t, "modify", cfg.ModifyTag)
	assert.True(t, cfg.StampCommit)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.OutputSuffix = "_valid.gen.go"
	assert.ErrorContains(t, cfg.Validate(), "must not include the .go extension")

	cfg = domain.DefaultConfig()
	cfg.OutputSuffix = "_validators"
	assert.ErrorContains(t, cfg.Validate(), "must mark files as generated")

	cfg = domain.DefaultConfig()
	cfg.ValidateTag = "rules"
	cfg.ModifyTag = "rules"
	assert.ErrorContains(t, cfg.Validate(), "must be distinct")
}

func TestConfig_OutputFor(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "user_valid.gen.go", cfg.OutputFor("user.go"))
	assert.Equal(t, "internal/api/user_valid.gen.go", cfg.OutputFor("internal/api/user.go"))
}
