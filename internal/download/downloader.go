// Package download acquires the audio track of a video via yt-dlp.
package download

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/observability"
	"github.com/skillsenselab/yt-transcriber/internal/process"
)

// audioExtensions is the artifact probe order after a successful download.
// yt-dlp names the file by actual container format, so the acquirer checks
// candidates in priority order.
var audioExtensions = []string{"m4a", "mp3", "webm", "opus"}

// Artifact is a downloaded audio file on local disk.
type Artifact struct {
	Path string
}

// runner abstracts subprocess execution for testability.
type runner interface {
	Run(ctx context.Context, cmd process.Command) (*process.Result, error)
}

// execRunner executes commands through the process package.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, cmd process.Command) (*process.Result, error) {
	return process.Run(ctx, cmd)
}

// Downloader fetches audio tracks into the scratch directory.
type Downloader struct {
	cfg Config
	run runner
	log *logger.Logger
}

// New creates a Downloader. The config should have defaults applied and be
// validated before this call.
func New(cfg Config, log *logger.Logger) *Downloader {
	return newDownloader(cfg, log, execRunner{})
}

func newDownloader(cfg Config, log *logger.Logger, r runner) *Downloader {
	return &Downloader{
		cfg: cfg,
		run: r,
		log: log.WithComponent("downloader"),
	}
}

// TempDir returns the scratch directory artifacts are written to.
func (d *Downloader) TempDir() string {
	return d.cfg.TempDir
}

// EnsureTempDir creates the scratch directory if it does not exist.
func (d *Downloader) EnsureTempDir() error {
	if err := os.MkdirAll(d.cfg.TempDir, 0o755); err != nil {
		return fmt.Errorf("creating temp dir %s: %w", d.cfg.TempDir, err)
	}
	return nil
}

// CheckHealth reports whether the yt-dlp binary is resolvable. The scratch
// directory is created at startup, so the binary is the only runtime
// dependency worth probing.
func (d *Downloader) CheckHealth(ctx context.Context) observability.Health {
	if _, err := exec.LookPath(d.cfg.BinaryPath); err != nil {
		return observability.Health{
			Name:    "downloader",
			Status:  observability.HealthStatusDown,
			Message: err.Error(),
		}
	}
	return observability.Health{
		Name:    "downloader",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"binary": d.cfg.BinaryPath},
	}
}

// Fetch downloads the best audio track for url, writing the artifact under
// basePath with an extension chosen by yt-dlp. The subprocess is limited to
// the configured wall-clock timeout; on expiry its process group is killed
// and the returned error reports the timeout.
func (d *Downloader) Fetch(ctx context.Context, url, basePath string) (Artifact, error) {
	args := d.args(url, basePath)

	d.log.Info("Running yt-dlp", map[string]interface{}{
		"url":  url,
		"args": strings.Join(args, " "),
	})

	res, err := d.run.Run(ctx, process.Command{
		Binary:  d.cfg.BinaryPath,
		Args:    args,
		Timeout: d.cfg.Timeout,
	})
	if err != nil {
		return Artifact{}, d.fetchError(ctx, res, err)
	}

	d.log.Debug("yt-dlp output", map[string]interface{}{
		"stdout": strings.TrimSpace(string(res.Stdout)),
	})
	d.log.Info("Download completed", map[string]interface{}{
		"url":         url,
		"duration_ms": res.Duration.Milliseconds(),
	})

	return d.findArtifact(basePath)
}

// args builds the fixed yt-dlp argument set for one download.
func (d *Downloader) args(url, basePath string) []string {
	return []string{
		"--no-warnings",
		"--format", "bestaudio[ext=m4a]",
		"--extract-audio",
		"--audio-format", "m4a",
		"--output", basePath + ".%(ext)s",
		"--socket-timeout", strconv.Itoa(d.cfg.SocketTimeout),
		"--retries", strconv.Itoa(d.cfg.Retries),
		"--user-agent", d.cfg.UserAgent,
		"--cookies", d.cfg.CookiesFile,
		url,
	}
}

// fetchError maps a failed yt-dlp run onto the download error taxonomy.
func (d *Downloader) fetchError(ctx context.Context, res *process.Result, err error) error {
	if res != nil && res.TimedOut {
		d.log.Error("yt-dlp timed out", map[string]interface{}{
			"timeout": d.cfg.Timeout.String(),
		})
		return apperrors.DownloadTimeout().WithCause(err)
	}
	if ctx.Err() != nil {
		return apperrors.Download("Download canceled").WithCause(ctx.Err())
	}

	stderr := ""
	exitCode := -1
	if res != nil {
		stderr = strings.TrimSpace(string(res.Stderr))
		exitCode = res.ExitCode
	}
	if stderr == "" {
		stderr = err.Error()
	}

	d.log.Error("yt-dlp failed", map[string]interface{}{
		"exit_code": exitCode,
		"stderr":    stderr,
	})
	return apperrors.Download(fmt.Sprintf("yt-dlp error: %s", stderr)).
		WithDetail("exit_code", exitCode).
		WithCause(err)
}

// findArtifact probes the known extensions for the downloaded file.
func (d *Downloader) findArtifact(basePath string) (Artifact, error) {
	for _, ext := range audioExtensions {
		candidate := basePath + "." + ext
		if _, err := os.Stat(candidate); err == nil {
			d.log.Info("Found downloaded audio file", map[string]interface{}{
				"path": candidate,
			})
			return Artifact{Path: candidate}, nil
		}
	}
	return Artifact{}, apperrors.Download(fmt.Sprintf("Downloaded audio file not found for: %s", basePath))
}
