package application

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/validgen/validgen/internal/domain"
	"github.com/validgen/validgen/internal/domain/fields"
)

// AnalyzeService runs the analysis pipeline without writing anything:
// scan -> parse -> resolve fields -> descriptors, plus staleness
// detection against the last generation manifest.
type AnalyzeService struct {
	scanner  domain.PackageScanner
	parser   domain.SchemaParser
	config   domain.ConfigLoader
	manifest domain.ManifestStore
}

func NewAnalyzeService(
	scanner domain.PackageScanner,
	parser domain.SchemaParser,
	config domain.ConfigLoader,
	manifest domain.ManifestStore,
) *AnalyzeService {
	return &AnalyzeService{
		scanner:  scanner,
		parser:   parser,
		config:   config,
		manifest: manifest,
	}
}

// Analyze walks dir and returns descriptors for every annotated schema.
// The first analysis error aborts the run; no partial report is
// returned alongside an error.
func (s *AnalyzeService) Analyze(dir string) (*domain.AnalysisReport, error) {
	cfg, scan, parsed, err := s.scanAndParse(dir)
	if err != nil {
		return nil, err
	}

	pipeline := fields.New(cfg.ValidateTag, cfg.ModifyTag)

	report := &domain.AnalysisReport{Dir: scan.RootPath}
	for _, pf := range parsed {
		if len(pf.Schemas) == 0 {
			continue
		}

		fa := domain.FileAnalysis{Path: pf.Path, Package: pf.Package}
		for _, schema := range pf.Schemas {
			descriptors, err := pipeline.Collect(schema)
			if err != nil {
				return nil, err
			}
			fa.Schemas = append(fa.Schemas, domain.SchemaDescriptor{
				Schema: schema,
				Fields: descriptors,
			})
		}
		report.Files = append(report.Files, fa)
	}

	s.markStale(scan, report)

	return report, nil
}

// scanAndParse performs the scan and per-file parse steps shared with
// GenerateService.
func (s *AnalyzeService) scanAndParse(dir string) (domain.Config, *domain.ScanResult, []*domain.ParsedFile, error) {
	cfg, err := s.config.Load(dir)
	if err != nil {
		return domain.Config{}, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(dir, cfg.ExcludeDirs...)
	if err != nil {
		return domain.Config{}, nil, nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var parsed []*domain.ParsedFile
	for _, f := range scan.GoFiles {
		pf, err := s.parser.ParseFile(filepath.Join(scan.RootPath, f))
		if err != nil {
			return domain.Config{}, nil, nil, err
		}
		pf.Path = f
		parsed = append(parsed, pf)
	}

	return cfg, scan, parsed, nil
}

// markStale compares the generation manifest against current sources.
// A source whose hash changed since its output was generated is stale;
// a manifest entry whose source disappeared leaves an orphaned output.
func (s *AnalyzeService) markStale(scan *domain.ScanResult, report *domain.AnalysisReport) {
	m, err := s.manifest.Load(scan.RootPath)
	if err != nil || m == nil {
		return
	}

	current := make(map[string]bool, len(scan.GoFiles))
	for _, f := range scan.GoFiles {
		current[f] = true
	}

	for _, entry := range m.Entries {
		if !current[entry.Source] {
			report.Orphans = append(report.Orphans, entry.Output)
			continue
		}
		hash, err := hashFile(filepath.Join(scan.RootPath, entry.Source))
		if err == nil && hash != entry.SourceHash {
			report.Stale = append(report.Stale, entry.Output)
		}
	}
}

func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
