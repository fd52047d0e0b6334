package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalArchive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")
	a := NewLocalArchive(dir)
	ctx := context.Background()

	loc, err := a.Put(ctx, "../lr_1001.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lr_1001.pdf"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, a.Remove(ctx, loc))
	assert.NoFileExists(t, loc)
	assert.NoError(t, a.Remove(ctx, loc))
}

func TestR2Keys(t *testing.T) {
	a := &R2Archive{publicBase: "https://pub.example.r2.dev"}
	loc := a.publicURL("invoice INV-001.pdf")
	assert.Equal(t, "https://pub.example.r2.dev/invoice%20INV-001.pdf", loc)

	key, err := objectKey(loc)
	require.NoError(t, err)
	assert.Equal(t, "invoice INV-001.pdf", key)

	assert.False(t, R2Config{Bucket: "b"}.Enabled())
	_, err = NewR2Archive(context.Background(), R2Config{})
	assert.Error(t, err)
}

var (
	_ Archive = (*LocalArchive)(nil)
	_ Archive = (*R2Archive)(nil)
)
