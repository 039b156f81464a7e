package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	m "crusher.dev/pkg/crusher/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "crusher", configBaseName)
	assert.Equal(t, "crusher.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "keep-going", keepGoingFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "crush.parallel", parallelConfigKey)
	assert.Equal(t, "crush.keep_going", keepGoingConfigKey)
	assert.Equal(t, "input.extension", extensionConfigKey)
	assert.Equal(t, "rs", defaultExtension)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "CRUSHER", envPrefix)
	assert.Equal(t, m.DefaultVariantPrefix, defaultPrefix)
	assert.Equal(t, string(m.StrategyStruct), defaultStrategy)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultExtension, viper.GetString(extensionConfigKey))
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"mixed case warning", " Warning ", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage uses default", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_Verbose(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "crusher.log"), true)

	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}
