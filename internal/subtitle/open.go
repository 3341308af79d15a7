package subtitle

import (
	"context"
	"fmt"
	"os"

	"github.com/mgpai22/subdemux/internal/charset"
)

// Open parses the subtitle file at path, decoding it per opts.Encoding.
func Open(ctx context.Context, path string, opts Options) (*Subtitle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader, err := charset.NewReader(file, opts.Encoding)
	if err != nil {
		return nil, err
	}

	sub, err := Parse(ctx, reader, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return sub, nil
}
