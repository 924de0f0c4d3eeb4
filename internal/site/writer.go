package site

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agentstation/teammap/internal/codec"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

// Writer writes rendered pages under a directory.
type Writer struct {
	dir    string
	logger *zerolog.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithWriterLogger sets the writer's logger.
func WithWriterLogger(logger *zerolog.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string, opts ...WriterOption) (*Writer, error) {
	if dir == "" {
		return nil, errors.NewConfigError("site", "output directory is required", nil)
	}
	w := &Writer{dir: dir}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write writes every page, each through a temp file and rename. Pages are
// checked before the first write so a bad path writes nothing.
func (w *Writer) Write(ctx context.Context, pages []Page) (int, error) {
	logger := w.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	for _, p := range pages {
		if p.Path == "" || filepath.Base(p.Path) != p.Path || p.Path == "." || p.Path == ".." {
			return 0, errors.NewValidationError("path", p.Path, "page path must be a plain file name")
		}
	}

	written := 0
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := codec.WriteAtomic(filepath.Join(w.dir, p.Path), p.Body); err != nil {
			return written, err
		}
		written++
		logger.Debug().Str("page", p.Path).Msg("wrote page")
	}

	logger.Info().Int("pages", written).Str("dir", w.dir).Msg("site written")
	return written, nil
}
