package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rget/pkg/export"
)

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nbb\n", string(export.Render([]string{"a", "bb"})))
	assert.Empty(t, export.Render(nil))
}

func TestLocalExporter(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "out.txt")

		exp, err := export.NewLocalExporter(path)
		require.NoError(t, err)

		res, err := exp.Export(context.Background(), []string{"123", "456"})
		require.NoError(t, err)
		assert.Equal(t, path, res.Location)
		assert.Equal(t, int64(8), res.Size)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "123\n456\n", string(data))
	})

	t.Run("replaces previous contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("old contents that are longer\n"), 0o644))

		exp, err := export.NewLocalExporter(path)
		require.NoError(t, err)
		_, err = exp.Export(context.Background(), []string{"x"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "x\n", string(data))
	})

	t.Run("defaults to temp dir", func(t *testing.T) {
		exp, err := export.NewLocalExporter("")
		require.NoError(t, err)

		want, err := filepath.Abs(filepath.Join(os.TempDir(), export.DefaultFileName))
		require.NoError(t, err)
		assert.Equal(t, want, exp.Path())
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		exp, err := export.NewLocalExporter(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		_, err = exp.Export(ctx, []string{"x"})
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, exp.Path())
	})

	t.Run("parent is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		exp, err := export.NewLocalExporter(filepath.Join(blocker, "out.txt"))
		require.NoError(t, err)
		_, err = exp.Export(context.Background(), []string{"x"})
		require.ErrorIs(t, err, export.ErrFailedToCreateDirectory)
	})
}

func TestIsS3URL(t *testing.T) {
	t.Parallel()

	assert.True(t, export.IsS3URL("s3://bucket/key.txt"))
	assert.False(t, export.IsS3URL("/tmp/s3://x"))
	assert.False(t, export.IsS3URL("out.txt"))
}
