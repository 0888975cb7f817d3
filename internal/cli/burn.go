package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/howie/burin-subtitle/internal/config"
	"github.com/howie/burin-subtitle/internal/fetch"
	"github.com/howie/burin-subtitle/internal/subtitle"
	"github.com/howie/burin-subtitle/internal/video"
	"github.com/spf13/cobra"
)

func runBurn(cmd *cobra.Command, args []string) error {
	source := args[0]
	subtitlePath := args[1]
	outputPath := args[2]
	ctx := context.Background()

	cfg := config.Load()

	fontSize, _ := cmd.Flags().GetInt("font-size")
	fontColor, _ := cmd.Flags().GetString("font-color")
	fontName, _ := cmd.Flags().GetString("font-name")

	if !cmd.Flags().Changed("font-size") {
		fontSize = cfg.FontSize
	}
	if !cmd.Flags().Changed("font-color") {
		fontColor = cfg.FontColor
	}
	if fontName == "" {
		fontName = cfg.FontName
	}

	videoPath := source
	if fetch.IsRemote(source) {
		logger.Infow("Downloading remote video",
			"url", source,
		)

		downloader := fetch.NewDownloader(cfg.YtDlpPath, ".")
		result, err := downloader.Download(ctx, source)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		logger.Infow("Download complete",
			"title", result.Title,
			"path", result.Path,
		)
		videoPath = result.Path
	} else if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	processor := video.NewProcessor()

	srtPath := subtitlePath
	if strings.EqualFold(filepath.Ext(subtitlePath), ".vtt") {
		srtPath = strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath)) + ".srt"

		logger.Infow("Converting subtitles to SRT",
			"input", subtitlePath,
			"output", srtPath,
		)

		if err := processor.ConvertToSRT(ctx, subtitlePath, srtPath); err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
	}

	trackProcessor := subtitle.NewProcessor()
	trackProcessor.MaxLength = cfg.MaxLength
	trackProcessor.MaxDuration = cfg.MaxDuration

	processedPath, err := trackProcessor.ProcessFile(srtPath)
	if err != nil {
		return fmt.Errorf("subtitle processing failed: %w", err)
	}

	logger.Infow("Subtitles re-segmented",
		"path", processedPath,
	)

	if duration, err := video.GetDuration(videoPath); err == nil {
		logger.Debugw("Video probed",
			"duration", duration.String(),
		)
	}

	opts := video.EmbedOptions{
		FontName:  fontName,
		FontSize:  fontSize,
		FontColor: fontColor,
	}

	logger.Infow("Burning subtitles",
		"video", videoPath,
		"subtitles", processedPath,
		"output", outputPath,
		"font", fontName,
		"font_size", fontSize,
	)

	if err := processor.Burn(ctx, videoPath, processedPath, outputPath, opts); err != nil {
		return fmt.Errorf("burn-in failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Video written successfully: %s\n", absOutput)

	return nil
}
