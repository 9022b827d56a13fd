package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

const (
	// maxLineSize bounds a single line; longer lines fail the load.
	maxLineSize = 1 << 20

	// ctxCheckEvery is how many lines are read between cancellation checks.
	ctxCheckEvery = 4096
)

var (
	errInvalidUTF8     = errors.New("invalid UTF-8")
	errInvalidLanguage = errors.New("invalid language identifier")

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// LoadStats describes how one word list was turned into a dictionary.
type LoadStats struct {
	Source     string `json:"source"`
	Lines      int    `json:"lines"`
	Blank      int    `json:"blank"`
	Duplicates int    `json:"duplicates"`
	Words      int    `json:"words"`
	// Digest is the hex BLAKE3-256 of the decoded source bytes.
	Digest string `json:"digest"`
}

// Load reads every source and builds the store. Languages are loaded
// concurrently; the first failure cancels the rest and is returned as a
// *domain.LoadError. A store is returned only if every source loaded.
func Load(ctx context.Context, sources map[domain.Language]Source) (*Store, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	sets := make(map[domain.Language]*wordSet, len(sources))

	for lang, src := range sources {
		g.Go(func() error {
			if !lang.IsValid() {
				return &domain.LoadError{Language: lang, Source: src.Name(), Err: errInvalidLanguage}
			}

			set, err := loadSet(gctx, src)
			if err != nil {
				return &domain.LoadError{Language: lang, Source: src.Name(), Err: err}
			}

			mu.Lock()
			sets[lang] = set
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Store{sets: sets}, nil
}

// loadSet reads a single line-delimited source into a normalized word set.
func loadSet(ctx context.Context, src Source) (*wordSet, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	hasher := blake3.New()
	scanner := bufio.NewScanner(io.TeeReader(rc, hasher))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	stats := LoadStats{Source: src.Name()}
	index := make(map[string]struct{})

	for scanner.Scan() {
		stats.Lines++
		if stats.Lines%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := scanner.Bytes()
		if stats.Lines == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		if !utf8.Valid(line) {
			return nil, fmt.Errorf("line %d: %w", stats.Lines, errInvalidUTF8)
		}

		word := domain.Normalize(string(line))
		if word == "" {
			stats.Blank++
			continue
		}
		if _, dup := index[word]; dup {
			stats.Duplicates++
			continue
		}
		index[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", stats.Lines+1, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sorted := make([]string, 0, len(index))
	for w := range index {
		sorted = append(sorted, w)
	}
	slices.Sort(sorted)

	stats.Words = len(sorted)
	stats.Digest = hex.EncodeToString(hasher.Sum(nil))

	return &wordSet{index: index, sorted: sorted, stats: stats}, nil
}
