package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide defaults, fixed at startup.
//
// Environment Variables:
// - BURNSUB_FONT_NAME: subtitle font (default: Noto Sans CJK SC)
// - BURNSUB_FONT_SIZE: subtitle font size (default: 24)
// - BURNSUB_FONT_COLOR: subtitle color, hex RGB (default: FFFFFF)
// - BURNSUB_MAX_LENGTH: max runes per cue before splitting (default: 50)
// - BURNSUB_MAX_DURATION: max cue duration in seconds (default: 8)
// - BURNSUB_YTDLP_PATH: yt-dlp binary (default: yt-dlp from PATH)
type Config struct {
	FontName    string
	FontSize    int
	FontColor   string
	MaxLength   int
	MaxDuration time.Duration
	YtDlpPath   string
}

// Load reads configuration from the environment, loading a .env file
// from the working directory first if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		FontName:    getEnv("BURNSUB_FONT_NAME", "Noto Sans CJK SC"),
		FontSize:    getEnvInt("BURNSUB_FONT_SIZE", 24),
		FontColor:   getEnv("BURNSUB_FONT_COLOR", "FFFFFF"),
		MaxLength:   getEnvInt("BURNSUB_MAX_LENGTH", 50),
		MaxDuration: time.Duration(getEnvInt("BURNSUB_MAX_DURATION", 8)) * time.Second,
		YtDlpPath:   getEnv("BURNSUB_YTDLP_PATH", "yt-dlp"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
