package fetch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// downloaded video info
type Result struct {
	Path  string
	Title string // best-effort display title
}

// Downloader fetches remote videos through yt-dlp.
type Downloader struct {
	YtDlpPath string
	OutputDir string
}

func NewDownloader(ytDlpPath, outputDir string) *Downloader {
	if ytDlpPath == "" {
		ytDlpPath = "yt-dlp"
	}
	if outputDir == "" {
		outputDir = "."
	}
	return &Downloader{
		YtDlpPath: ytDlpPath,
		OutputDir: outputDir,
	}
}

// IsRemote reports whether the source argument is a URL rather than a
// local file path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://")
}

// Download fetches the video at url as MP4 into the output directory.
// The result path and title are read from yt-dlp's stdout; failures
// are surfaced without retrying.
func (d *Downloader) Download(ctx context.Context, url string) (*Result, error) {
	outTemplate := filepath.Join(d.OutputDir, "%(title)s.%(ext)s")

	cmd := exec.CommandContext(ctx, d.YtDlpPath,
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		"-o", outTemplate,
		"--restrict-filenames",
		"--no-simulate",
		"--print", "title",
		"--print", "after_move:filepath",
		url,
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	title, path, err := parsePrintOutput(&stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	safePath := filepath.Join(
		filepath.Dir(path),
		SanitizeFilename(filepath.Base(path)),
	)
	if safePath != path {
		if err := os.Rename(path, safePath); err != nil {
			return nil, fmt.Errorf("failed to rename downloaded file: %w", err)
		}
		path = safePath
	}

	return &Result{Path: path, Title: title}, nil
}

// yt-dlp prints one line per --print flag, in order: title, filepath
func parsePrintOutput(out *bytes.Buffer) (title, path string, err error) {
	var lines []string
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return "", "", fmt.Errorf("unexpected yt-dlp output: %q", out.String())
	}

	title = lines[len(lines)-2]
	path = lines[len(lines)-1]
	if _, statErr := os.Stat(path); statErr != nil {
		return "", "", fmt.Errorf("downloaded file missing: %w", statErr)
	}
	return title, path, nil
}
