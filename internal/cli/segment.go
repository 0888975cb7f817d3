package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/howie/burin-subtitle/internal/subtitle"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [subtitle_file]",
	Short: "Re-segment over-long cues in an SRT file",
	Long: `Re-split cues whose text exceeds the length limit into smaller,
naturally-breaking cues with evenly redistributed timestamps, and write
the result next to the input as <name>_processed.srt.

Examples:
  burnsub segment subs.srt
  burnsub segment subs.srt --max-length 40`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().
		Int("max-length", subtitle.DefaultMaxLength, "Maximum runes per cue before splitting")
	segmentCmd.Flags().
		Int("max-duration", int(subtitle.DefaultMaxDuration/time.Second), "Maximum cue duration in seconds")
}

func runSegment(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", subtitlePath)
	}

	maxLength, _ := cmd.Flags().GetInt("max-length")
	maxDuration, _ := cmd.Flags().GetInt("max-duration")

	processor := subtitle.NewProcessor()
	processor.MaxLength = maxLength
	processor.MaxDuration = time.Duration(maxDuration) * time.Second

	logger.Infow("Re-segmenting subtitles",
		"input", subtitlePath,
		"max_length", maxLength,
	)

	processedPath, err := processor.ProcessFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("subtitle processing failed: %w", err)
	}

	absOutput, _ := filepath.Abs(processedPath)
	fmt.Printf("Subtitles processed successfully: %s\n", absOutput)

	return nil
}
