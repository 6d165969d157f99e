package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validgen/validgen/internal/adapters/outbound/scanner"
)

const fixtureDir = "../../../../testdata/petstore"

func TestFileScanner_Scan(t *testing.T) {
	s := scanner.New()
	result, err := s.Scan(fixtureDir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"user.go", "account.go"}, result.GoFiles)
	assert.True(t, result.HasGoMod, "should detect go.mod")
	assert.True(t, filepath.IsAbs(result.RootPath))
}

func TestFileScanner_Classification(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user.go", "package x\n")
	writeFile(t, dir, "user_test.go", "package x\n")
	writeFile(t, dir, "user_valid.gen.go", "package x\n")
	writeFile(t, dir, "notes.txt", "not go\n")
	writeFile(t, dir, filepath.Join("sub", "order.go"), "package y\n")

	result, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"user.go", "sub/order.go"}, result.GoFiles)
	assert.Equal(t, []string{"user_test.go"}, result.TestFiles)
	assert.Equal(t, []string{"user_valid.gen.go"}, result.GeneratedFiles)
	assert.False(t, result.HasGoMod)
}

func TestFileScanner_SkipsBuiltInDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user.go", "package x\n")
	writeFile(t, dir, filepath.Join("vendor", "dep.go"), "package dep\n")
	writeFile(t, dir, filepath.Join("testdata", "fixture.go"), "package fx\n")
	writeFile(t, dir, filepath.Join(".validgen", "stray.go"), "package s\n")

	result, err := scanner.New().Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"user.go"}, result.GoFiles)
}

func TestFileScanner_ExcludeDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user.go", "package x\n")
	writeFile(t, dir, filepath.Join("gen", "old.go"), "package g\n")

	result, err := scanner.New().Scan(dir, "gen")
	require.NoError(t, err)
	assert.Equal(t, []string{"user.go"}, result.GoFiles)
}

func TestFileScanner_GoModOnlyAtRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("sub", "go.mod"), "module sub\n")

	result, err := scanner.New().Scan(dir)
	require.NoError(t, err)
	assert.False(t, result.HasGoMod)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
