package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/validgen/validgen/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"testdata":     true,
	".validgen":    true,
}

// FileScanner implements domain.PackageScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks dir and collects Go source files, separating tests and
// previously generated output. Paths are relative to the scanned root.
func (s *FileScanner) Scan(dir string, excludeDirs ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludeDirs))
	for _, p := range excludeDirs {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{
		RootPath: absPath,
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if d.Name() == "go.mod" && filepath.Dir(relPath) == "." {
			result.HasGoMod = true
		}

		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}

		switch {
		case strings.HasSuffix(d.Name(), "_test.go"):
			result.TestFiles = append(result.TestFiles, relPath)
		case strings.HasSuffix(d.Name(), ".gen.go"):
			result.GeneratedFiles = append(result.GeneratedFiles, relPath)
		default:
			result.GoFiles = append(result.GoFiles, relPath)
		}

		return nil
	})

	return result, err
}
