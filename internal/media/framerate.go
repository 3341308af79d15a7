// Package media reads stream metadata from the video a subtitle belongs to.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ErrNoVideoStream is returned when the probed file has no usable video track.
var ErrNoVideoStream = errors.New("no video stream with a frame rate")

const probeTimeout = 30 * time.Second

// ProbeFunc runs ffprobe on path and returns its JSON report.
type ProbeFunc func(ctx context.Context, path string) (string, error)

// FFprobe asks ffprobe, found on PATH, for the first video stream.
func FFprobe(ctx context.Context, path string) (string, error) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return "", fmt.Errorf("ffprobe not found on PATH: %w", err)
	}

	timeout := probeTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}

	out, err := ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{
		"select_streams": "v:0",
		"v":              "quiet",
	})
	if err != nil {
		return "", fmt.Errorf("ffprobe failed: %w", err)
	}
	return out, nil
}

// FrameRateProber resolves the frame rate of a video file.
type FrameRateProber struct {
	probe ProbeFunc
}

// NewFrameRateProber uses FFprobe when probe is nil.
func NewFrameRateProber(probe ProbeFunc) *FrameRateProber {
	if probe == nil {
		probe = FFprobe
	}
	return &FrameRateProber{probe: probe}
}

// frames per second of the first video stream in path
func (p *FrameRateProber) FrameRate(ctx context.Context, path string) (float64, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, fmt.Errorf("video file not found: %s", path)
	}

	report, err := p.probe(ctx, path)
	if err != nil {
		return 0, err
	}
	return FrameRateFromReport(report)
}

// FrameRateFromReport reads r_frame_rate of the first video stream in an
// ffprobe JSON report, falling back to avg_frame_rate.
func FrameRateFromReport(report string) (float64, error) {
	if !gjson.Valid(report) {
		return 0, errors.New("failed to parse ffprobe output: invalid JSON")
	}

	stream := gjson.Get(report, `streams.#(codec_type=="video")`)
	if !stream.Exists() {
		return 0, ErrNoVideoStream
	}

	for _, field := range []string{"r_frame_rate", "avg_frame_rate"} {
		rate, err := ParseRate(stream.Get(field).String())
		if err == nil && rate > 0 {
			return rate, nil
		}
	}
	return 0, ErrNoVideoStream
}

// ParseRate reads an ffprobe rate such as "24000/1001" or a plain number.
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty frame rate")
	}

	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
	}
	if !found {
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("invalid frame rate %q: zero denominator", s)
	}
	return n / d, nil
}
