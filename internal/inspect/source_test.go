package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindModuleRoot_AtRoot(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))

	got, err := FindModuleRoot(tmp)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestFindModuleRoot_WalksUpFromSubdirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))
	sub := filepath.Join(tmp, "internal", "principles", "srp")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got, err := FindModuleRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestFindModuleRoot_NoGoMod(t *testing.T) {
	tmp := t.TempDir()

	_, err := FindModuleRoot(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no go.mod found")
}

func TestFindModuleRoot_NotADirectory(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := FindModuleRoot(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
