package dictionary

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func xzBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = xw.Write(data)
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	return buf.Bytes()
}

// failingSource fails on Open.
type failingSource struct{ err error }

func (s failingSource) Name() string                 { return "failing" }
func (s failingSource) Open() (io.ReadCloser, error) { return nil, s.err }

func TestLoad_NormalizesAndSkipsBlank(t *testing.T) {
	t.Parallel()

	store, err := Load(context.Background(), map[domain.Language]Source{
		"it": Lines("Casa", "gatto", "", "  "),
	})
	require.NoError(t, err)

	got, err := store.PrefixSearch("it", "", 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"casa", "gatto"}, got)

	stats, ok := store.Stats("it")
	require.True(t, ok)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 2, stats.Blank)
	assert.Equal(t, 0, stats.Duplicates)
	assert.Equal(t, 2, stats.Words)
	assert.Len(t, stats.Digest, 64)
}

func TestLoad_DuplicatesCollapse(t *testing.T) {
	t.Parallel()

	store, err := Load(context.Background(), map[domain.Language]Source{
		"en": Lines("House", "house", " HOUSE ", "home"),
	})
	require.NoError(t, err)

	n, _ := store.Count("en")
	assert.Equal(t, 2, n)

	stats, _ := store.Stats("en")
	assert.Equal(t, 2, stats.Duplicates)
}

func TestLoad_CRLFAndBOM(t *testing.T) {
	t.Parallel()

	store, err := Load(context.Background(), map[domain.Language]Source{
		"it": StringSource("\ufeffAmore\r\nbacio\r\n\r\n"),
	})
	require.NoError(t, err)

	got, err := store.PrefixSearch("it", "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"amore", "bacio"}, got)
}

func TestLoad_EmptySourceIsNotAnError(t *testing.T) {
	t.Parallel()

	store, err := Load(context.Background(), map[domain.Language]Source{
		"it": StringSource(""),
	})
	require.NoError(t, err)

	n, ok := store.Count("it")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	got, err := store.PrefixSearch("it", "", 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_InvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), map[domain.Language]Source{
		"it": StringSource("casa\n\xff\xfe\n"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.ErrorIs(t, err, errInvalidUTF8)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), map[domain.Language]Source{
		"it": FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var le *domain.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, domain.Language("it"), le.Language)
}

func TestLoad_OneFailingLanguageFailsAll(t *testing.T) {
	t.Parallel()

	store, err := Load(context.Background(), map[domain.Language]Source{
		"it": Lines("casa"),
		"en": failingSource{err: errors.New("permission denied")},
	})
	require.Error(t, err)
	assert.Nil(t, store)

	var le *domain.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, domain.Language("en"), le.Language)
}

func TestLoad_InvalidLanguageIdentifier(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), map[domain.Language]Source{
		"IT": Lines("casa"),
	})
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoad_LineTooLong(t *testing.T) {
	t.Parallel()

	long := bytes.Repeat([]byte("a"), maxLineSize+1)
	_, err := Load(context.Background(), map[domain.Language]Source{
		"it": StringSource(string(long)),
	})
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, map[domain.Language]Source{
		"it": Lines("casa"),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_NoSources(t *testing.T) {
	t.Parallel()

	store, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, store.Languages())
}

func TestLoad_CompressedFilesMatchPlain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := []byte("Sole\nsera\n\nsedia\nsasso\n")

	plain := writeFile(t, dir, "ita.txt", raw)
	gz := writeFile(t, dir, "ita.txt.gz", gzipBytes(t, raw))
	xzPath := writeFile(t, dir, "ita.txt.xz", xzBytes(t, raw))

	var want []string
	var wantDigest string
	for i, path := range []string{plain, gz, xzPath} {
		store, err := Load(context.Background(), map[domain.Language]Source{
			"it": FileSource{Path: path},
		})
		require.NoError(t, err, path)

		got, err := store.PrefixSearch("it", "", 100)
		require.NoError(t, err)
		stats, _ := store.Stats("it")

		if i == 0 {
			want, wantDigest = got, stats.Digest
			assert.Equal(t, []string{"sasso", "sedia", "sera", "sole"}, want)
			continue
		}
		assert.Equal(t, want, got, path)
		assert.Equal(t, wantDigest, stats.Digest, "digest covers decoded bytes: %s", path)
		assert.Equal(t, path, stats.Source)
	}
}

func TestLoad_CorruptGzip(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "ita.txt.gz", []byte("not gzip at all"))

	_, err := Load(context.Background(), map[domain.Language]Source{
		"it": FileSource{Path: path},
	})
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoad_DigestIsStable(t *testing.T) {
	t.Parallel()

	load := func(src Source) string {
		store, err := Load(context.Background(), map[domain.Language]Source{"it": src})
		require.NoError(t, err)
		stats, _ := store.Stats("it")
		return stats.Digest
	}

	a := load(Lines("casa", "gatto"))
	b := load(Lines("casa", "gatto"))
	c := load(Lines("gatto", "casa"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "digest covers the source bytes, not the set")
}

func TestFileSources(t *testing.T) {
	t.Parallel()

	sources := FileSources(map[string]string{"it": "db/ita.txt", "en": "db/eng.txt.gz"})

	require.Len(t, sources, 2)
	assert.Equal(t, "db/ita.txt", sources["it"].Name())
	assert.Equal(t, "db/eng.txt.gz", sources["en"].Name())
}
