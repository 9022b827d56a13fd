package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// Source yields the raw, line-delimited word list of one language.
type Source interface {
	// Name identifies the source in errors and logs (usually a path).
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource reads a word list from disk. Files ending in ".gz" or ".xz"
// are decompressed transparently; anything else is read as plain text.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

// Open opens the file and wraps it in the matching decompressor.
func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".gz":
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &stackedReader{Reader: gzr, closers: []io.Closer{gzr, f}}, nil
	case ".xz":
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		// xz reader doesn't need closing
		return &stackedReader{Reader: xzr, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// StringSource is an in-memory word list, one word per line.
type StringSource string

func (s StringSource) Name() string { return "<memory>" }

func (s StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

// Lines builds a StringSource from individual lines.
func Lines(lines ...string) StringSource {
	return StringSource(strings.Join(lines, "\n"))
}

// FileSources maps configured language codes to file sources.
func FileSources(paths map[string]string) map[domain.Language]Source {
	sources := make(map[domain.Language]Source, len(paths))
	for lang, path := range paths {
		sources[domain.Language(lang)] = FileSource{Path: path}
	}
	return sources
}

// stackedReader reads from a decompressor and closes every layer,
// decompressor first.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (r *stackedReader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
