package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/howie/burin-subtitle/internal/config"
	"github.com/howie/burin-subtitle/internal/fetch"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download a remote video without burning subtitles",
	Long: `Download the video at the given URL into the current directory
using yt-dlp and print the resulting file path.

Examples:
  burnsub fetch https://www.youtube.com/watch?v=ID`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := args[0]

	if !fetch.IsRemote(url) {
		return fmt.Errorf("not a URL: %s", url)
	}

	cfg := config.Load()

	logger.Infow("Downloading remote video",
		"url", url,
	)

	downloader := fetch.NewDownloader(cfg.YtDlpPath, ".")
	result, err := downloader.Download(context.Background(), url)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	absPath, _ := filepath.Abs(result.Path)
	fmt.Printf("Video downloaded successfully: %s\n", absPath)
	fmt.Printf("  Title: %s\n", result.Title)

	return nil
}
