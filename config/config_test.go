package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MONGODB_URI", "DATABASE_URL", "ENVIRONMENT", "PORT", "FEEDBACK_SCHEMA", "DATABASE_NAME"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DefaultMongoURI, cfg.Database.URI)
	assert.False(t, cfg.Database.URIFromEnv)
	assert.Equal(t, "fossclubsrm", cfg.Database.Name)
	assert.Equal(t, SchemaSimple, cfg.Feedback.Schema)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigMongoURIResolution(t *testing.T) {
	t.Run("MONGODB_URI preferred", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGODB_URI", "mongodb://primary:27017/forms")
		t.Setenv("DATABASE_URL", "mongodb://secondary:27017/forms")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://primary:27017/forms", cfg.Database.URI)
		assert.True(t, cfg.Database.URIFromEnv)
	})

	t.Run("DATABASE_URL fallback", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "mongodb://secondary:27017/forms")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://secondary:27017/forms", cfg.Database.URI)
		assert.True(t, cfg.Database.URIFromEnv)
	})

	t.Run("local default", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultMongoURI, cfg.Database.URI)
		assert.False(t, cfg.Database.URIFromEnv)
	})
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoadConfigFeedbackSchemaVariants(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEEDBACK_SCHEMA", "extended")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SchemaExtended, cfg.Feedback.Schema)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("bad environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENVIRONMENT", "staging")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad schema variant", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("FEEDBACK_SCHEMA", "merged")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
