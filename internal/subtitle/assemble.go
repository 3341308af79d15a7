package subtitle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options control one parse session.
type Options struct {
	// grammar name, "" or "auto" to probe
	Format string
	// declared source frame rate, used when >= 1.0
	FPS float64
	// forced frame rate, takes precedence over FPS when >= 1.0
	FPSOverride float64
	// shifts every cue after parsing
	Delay time.Duration
	// source character set for Open; "" sniffs a byte order mark and
	// otherwise assumes UTF-8
	Encoding string
	// nil discards session logs
	Logger *zap.SugaredLogger
}

// Assemble drives p over c until the input is exhausted and returns the cues
// in the order the grammar produced them. A cancelled context abandons the
// whole session.
func Assemble(ctx context.Context, c *Cursor, p Parser, st *State) ([]Cue, error) {
	cues := make([]Cue, 0, 64)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cue, err := p.ParseCue(c, st, len(cues))
		if errors.Is(err, io.EOF) {
			return cues, nil
		}
		if err != nil {
			return nil, err
		}
		cues = append(cues, cue)
	}
}

// Parse runs a full session over r: load, select or probe the grammar,
// assemble the cues and apply the delay.
func Parse(ctx context.Context, r io.Reader, opts Options) (*Subtitle, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	logger = logger.With("session", uuid.NewString())

	format, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	cursor, err := Load(r)
	if err != nil {
		return nil, err
	}

	if format == FormatUnknown {
		logger.Debugw("Autodetecting subtitle format", "lines", cursor.Len())
		format = Probe(cursor)
		if format == FormatUnknown {
			return nil, fmt.Errorf(
				"%w: no signature in the first %d lines",
				ErrUnrecognizedFormat,
				probeLineLimit,
			)
		}
	}
	logger.Debugw("Detected subtitle format", "format", format.DisplayName())

	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	st := NewState(format, opts.FPS, opts.FPSOverride)
	cues, err := Assemble(ctx, cursor, parser, st)
	if err != nil {
		return nil, err
	}

	if opts.Delay != 0 {
		applyDelay(cues, opts.Delay)
	}

	logger.Debugw("Loaded subtitles",
		"format", format.DisplayName(),
		"cues", len(cues),
		"discarded_lines", st.Discarded(),
		"header_bytes", len(st.Header()),
		"frame_duration", st.FrameDuration().String(),
	)

	return &Subtitle{
		Cues:   cues,
		Format: format,
		Header: st.Header(),
	}, nil
}

// stop times stay zero when the grammar left them unknown
func applyDelay(cues []Cue, delay time.Duration) {
	for i := range cues {
		cues[i].Start += delay
		if cues[i].Stop > 0 {
			cues[i].Stop += delay
		}
	}
}
