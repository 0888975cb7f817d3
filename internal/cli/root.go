package cli

import (
	"github.com/howie/burin-subtitle/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "burnsub [source] [subtitle] [output]",
	Short: "Burn subtitles into a video file",
	Long: `Burnsub renders a subtitle file permanently into a video's frames.

The source may be a local video file or a URL, in which case the video
is downloaded first. VTT subtitles are converted to SRT automatically.
Before burning, over-long cues are re-split at natural punctuation
breaks with their timestamps evenly redistributed.

Examples:
  burnsub video.mp4 subs.srt output.mp4
  burnsub https://www.youtube.com/watch?v=ID subs.vtt output.mp4
  burnsub video.mp4 subs.srt output.mp4 --font-size 28 --font-color 00FFFF`,
	Args: cobra.ExactArgs(3),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runBurn,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().
		Int("font-size", 24, "Subtitle font size")
	rootCmd.Flags().
		String("font-color", "FFFFFF", "Subtitle color as hex RGB")
	rootCmd.Flags().
		String("font-name", "", "Subtitle font name (default from config)")
}
