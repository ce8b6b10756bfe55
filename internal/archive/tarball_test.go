// ABOUTME: Tests for tarball packing and unpacking.
// ABOUTME: Covers layout, entry naming and path traversal rejection.

package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func entryNames(t *testing.T, archivePath string) []string {
	t.Helper()
	f, err := os.Open(archivePath)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	sort.Strings(names)
	return names
}

func TestPackEntryNames(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"deck":           "snapshot",
		"storage/a1.jpg": "jpeg bytes",
		"storage/b2":     "no extension",
	})
	dst := filepath.Join(t.TempDir(), "out.tar.gz")

	require.NoError(t, Pack(src, dst))

	require.Equal(t, []string{
		"./",
		"./deck",
		"./storage/",
		"./storage/a1.jpg",
		"./storage/b2",
	}, entryNames(t, dst))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"deck":           "snapshot",
		"storage/a1.jpg": "0123456789",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))
	tarball := filepath.Join(t.TempDir(), "out.tar.gz")
	require.NoError(t, Pack(src, tarball))

	dst := filepath.Join(t.TempDir(), "nested", "unpacked")
	require.NoError(t, Unpack(tarball, dst))

	data, err := os.ReadFile(filepath.Join(dst, "storage", "a1.jpg"))
	require.NoError(t, err)
	require.Equal(t, "0123456789", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "deck"))
	require.NoError(t, err)
	require.Equal(t, "snapshot", string(data))

	info, err := os.Stat(filepath.Join(dst, "empty"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestUnpackRejectsTraversal(t *testing.T) {
	tarball := filepath.Join(t.TempDir(), "evil.tar.gz")
	f, err := os.Create(tarball)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	body := []byte("pwned")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Mode:     0644,
		Size:     int64(len(body)),
		Typeflag: tar.TypeReg,
	}))
	_, err = tw.Write(body)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	parent := t.TempDir()
	dst := filepath.Join(parent, "dst")
	err = Unpack(tarball, dst)
	require.ErrorIs(t, err, ErrUnsafePath)

	_, statErr := os.Stat(filepath.Join(parent, "escape.txt"))
	require.True(t, os.IsNotExist(statErr))
}

func TestUnpackMissingArchive(t *testing.T) {
	err := Unpack(filepath.Join(t.TempDir(), "missing.tar.gz"), t.TempDir())
	require.Error(t, err)
}

func TestUnpackNotGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "plain.deck")
	require.NoError(t, os.WriteFile(p, []byte("definitely not gzip"), 0644))

	require.Error(t, Unpack(p, t.TempDir()))
}
