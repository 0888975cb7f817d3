package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "Noto Sans CJK SC", cfg.FontName)
	assert.Equal(t, 24, cfg.FontSize)
	assert.Equal(t, "FFFFFF", cfg.FontColor)
	assert.Equal(t, 50, cfg.MaxLength)
	assert.Equal(t, 8*time.Second, cfg.MaxDuration)
	assert.Equal(t, "yt-dlp", cfg.YtDlpPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BURNSUB_FONT_NAME", "Arial")
	t.Setenv("BURNSUB_FONT_SIZE", "32")
	t.Setenv("BURNSUB_FONT_COLOR", "00FF00")
	t.Setenv("BURNSUB_MAX_LENGTH", "40")
	t.Setenv("BURNSUB_MAX_DURATION", "10")
	t.Setenv("BURNSUB_YTDLP_PATH", "/opt/bin/yt-dlp")

	cfg := Load()

	assert.Equal(t, "Arial", cfg.FontName)
	assert.Equal(t, 32, cfg.FontSize)
	assert.Equal(t, "00FF00", cfg.FontColor)
	assert.Equal(t, 40, cfg.MaxLength)
	assert.Equal(t, 10*time.Second, cfg.MaxDuration)
	assert.Equal(t, "/opt/bin/yt-dlp", cfg.YtDlpPath)
}

func TestLoadIgnoresInvalidIntegers(t *testing.T) {
	t.Setenv("BURNSUB_FONT_SIZE", "not-a-number")
	t.Setenv("BURNSUB_MAX_LENGTH", "-5")

	cfg := Load()

	assert.Equal(t, 24, cfg.FontSize)
	assert.Equal(t, 50, cfg.MaxLength)
}
