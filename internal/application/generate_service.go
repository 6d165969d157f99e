package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/validgen/validgen/internal/domain"
	"github.com/validgen/validgen/internal/domain/fields"
)

// GenerateService orchestrates the full generation pipeline:
// scan -> parse -> resolve fields -> emit code -> write -> record manifest.
type GenerateService struct {
	analyze  *AnalyzeService
	emitter  domain.CodeEmitter
	commits  domain.CommitInfo
	manifest domain.ManifestStore
}

func NewGenerateService(
	scanner domain.PackageScanner,
	parser domain.SchemaParser,
	config domain.ConfigLoader,
	emitter domain.CodeEmitter,
	commits domain.CommitInfo,
	manifest domain.ManifestStore,
) *GenerateService {
	return &GenerateService{
		analyze:  NewAnalyzeService(scanner, parser, config, manifest),
		emitter:  emitter,
		commits:  commits,
		manifest: manifest,
	}
}

// Generate analyzes dir and writes one generated file per source file
// that declares schemas. Analysis is fail-fast: nothing is written if
// any schema fails analysis.
func (s *GenerateService) Generate(dir string) (*domain.GenerateResult, error) {
	cfg, scan, parsed, err := s.analyze.scanAndParse(dir)
	if err != nil {
		return nil, err
	}

	pipeline := fields.New(cfg.ValidateTag, cfg.ModifyTag)

	commit := ""
	if cfg.StampCommit && s.commits.IsGitRepo(scan.RootPath) {
		if hash, err := s.commits.CommitHash(scan.RootPath); err == nil {
			commit = hash
		}
	}

	// Resolve every schema before emitting anything, so an error in the
	// last file cannot leave a half-written batch behind.
	type unitWithSource struct {
		source string
		unit   domain.GeneratedUnit
	}
	var units []unitWithSource
	for _, pf := range parsed {
		if len(pf.Schemas) == 0 {
			continue
		}

		unit := domain.GeneratedUnit{
			Package: pf.Package,
			Source:  filepath.Base(pf.Path),
			Commit:  commit,
		}
		for _, schema := range pf.Schemas {
			descriptors, err := pipeline.Collect(schema)
			if err != nil {
				return nil, err
			}
			unit.Schemas = append(unit.Schemas, domain.SchemaDescriptor{
				Schema: schema,
				Fields: descriptors,
			})
		}
		units = append(units, unitWithSource{source: pf.Path, unit: unit})
	}

	result := &domain.GenerateResult{Dir: scan.RootPath, Commit: commit}
	m := &domain.Manifest{
		ProjectPath: scan.RootPath,
		GeneratedAt: time.Now().Format(time.RFC3339),
		CommitHash:  commit,
	}

	for _, u := range units {
		code, err := s.emitter.Emit(u.unit)
		if err != nil {
			return nil, err
		}

		output := cfg.OutputFor(u.source)
		if err := os.WriteFile(filepath.Join(scan.RootPath, output), code, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", output, err)
		}

		hash, err := hashFile(filepath.Join(scan.RootPath, u.source))
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", u.source, err)
		}

		names := make([]string, 0, len(u.unit.Schemas))
		for _, sd := range u.unit.Schemas {
			names = append(names, sd.Schema.Name)
		}

		result.Files = append(result.Files, domain.GeneratedFile{
			Source:  u.source,
			Output:  output,
			Schemas: names,
		})
		m.Entries = append(m.Entries, domain.ManifestEntry{
			Source:     u.source,
			Output:     output,
			SourceHash: hash,
			Schemas:    names,
		})
	}

	if len(m.Entries) > 0 {
		_ = s.manifest.Save(m) // best-effort, generation already succeeded
	}

	return result, nil
}
