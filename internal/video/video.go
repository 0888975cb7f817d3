package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/howie/burin-subtitle/internal/ffmpeg"
)

// styling for burned-in subtitles
type EmbedOptions struct {
	FontName  string
	FontSize  int
	FontColor string // hex RGB, e.g. "FFFFFF"
}

func DefaultEmbedOptions() EmbedOptions {
	return EmbedOptions{
		FontName:  "Noto Sans CJK SC",
		FontSize:  24,
		FontColor: "FFFFFF",
	}
}

// defines interface for video processing operations
type Processor interface {
	// renders subtitles into the video frames
	Burn(
		ctx context.Context,
		videoPath, subtitlePath, outputPath string,
		opts EmbedOptions,
	) error

	// converts a timed-text file to SRT
	ConvertToSRT(ctx context.Context, inputPath, outputPath string) error
}

// default implementation using ffmpeg
type DefaultProcessor struct{}

func NewProcessor() *DefaultProcessor {
	return &DefaultProcessor{}
}

// renders subtitles into the video frames, copying the audio stream
func (p *DefaultProcessor) Burn(
	ctx context.Context,
	videoPath, subtitlePath, outputPath string,
	opts EmbedOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"vf":  subtitleFilter(subtitlePath, opts),
		"c:a": "copy",
		"y":   "",
	}

	err = ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg burn-in failed: %w", err)
	}

	return nil
}

// converts a timed-text file (e.g. VTT) to SRT
func (p *DefaultProcessor) ConvertToSRT(
	ctx context.Context,
	inputPath, outputPath string,
) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", inputPath)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	err = ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{"y": ""}).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("subtitle conversion failed: %w", err)
	}

	return nil
}

// builds the subtitles video filter with an ASS force_style override
func subtitleFilter(subtitlePath string, opts EmbedOptions) string {
	return fmt.Sprintf(
		"subtitles=%s:force_style='%s'",
		subtitlePath,
		forceStyle(opts),
	)
}

func forceStyle(opts EmbedOptions) string {
	var parts []string
	if opts.FontName != "" {
		parts = append(parts, "Fontname="+opts.FontName)
	}
	if opts.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("Fontsize=%d", opts.FontSize))
	}
	if opts.FontColor != "" {
		parts = append(parts, "PrimaryColour=&H"+opts.FontColor)
	}
	return strings.Join(parts, ",")
}
