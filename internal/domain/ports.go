package domain

// PackageScanner walks a package directory and returns Go file metadata.
type PackageScanner interface {
	Scan(dir string, excludeDirs ...string) (*ScanResult, error)
}

// ScanResult holds the result of scanning a package directory.
type ScanResult struct {
	RootPath       string   `json:"root_path"`
	GoFiles        []string `json:"go_files"`
	TestFiles      []string `json:"test_files"`
	GeneratedFiles []string `json:"generated_files"`
	HasGoMod       bool     `json:"has_go_mod"`
}

// SchemaParser turns one Go source file into the schemas it declares.
type SchemaParser interface {
	ParseFile(path string) (*ParsedFile, error)
}

// ParsedFile is the parser's per-file output: the package name and every
// schema declaration carrying a validgen directive.
type ParsedFile struct {
	Path    string
	Package string
	Schemas []SchemaDecl
}

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// CommitInfo reports version-control state for header stamping.
type CommitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}

// ManifestStore persists the record of what was generated from what.
type ManifestStore interface {
	Load(dir string) (*Manifest, error)
	Save(m *Manifest) error
	Invalidate(dir string) error
}

// Manifest records one generation run over a package directory.
type Manifest struct {
	ProjectPath string          `json:"project_path"`
	GeneratedAt string          `json:"generated_at"`
	CommitHash  string          `json:"commit_hash,omitempty"`
	Entries     []ManifestEntry `json:"entries"`
}

// ManifestEntry ties one generated file to its source.
type ManifestEntry struct {
	Source     string   `json:"source"`
	Output     string   `json:"output"`
	SourceHash string   `json:"source_hash"`
	Schemas    []string `json:"schemas"`
}

// GeneratedUnit is the input to the code emitter: every analyzed schema
// of one source file plus the header metadata.
type GeneratedUnit struct {
	Package string
	Source  string
	Commit  string
	Schemas []SchemaDescriptor
}

// CodeEmitter renders a generated unit into formatted Go source.
type CodeEmitter interface {
	Emit(unit GeneratedUnit) ([]byte, error)
}

// FileAnalysis is the analysis result for one source file.
type FileAnalysis struct {
	Path    string             `json:"path"`
	Package string             `json:"package"`
	Schemas []SchemaDescriptor `json:"schemas"`
}

// AnalysisReport is the analyze pipeline's output over a directory.
type AnalysisReport struct {
	Dir     string         `json:"dir"`
	Files   []FileAnalysis `json:"files"`
	Stale   []string       `json:"stale,omitempty"`
	Orphans []string       `json:"orphans,omitempty"`
}

// SchemaCount returns the number of schemas found across all files.
func (r *AnalysisReport) SchemaCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Schemas)
	}
	return n
}

// GeneratedFile records one emitted output file.
type GeneratedFile struct {
	Source  string   `json:"source"`
	Output  string   `json:"output"`
	Schemas []string `json:"schemas"`
}

// GenerateResult is the generate pipeline's output over a directory.
type GenerateResult struct {
	Dir    string          `json:"dir"`
	Commit string          `json:"commit,omitempty"`
	Files  []GeneratedFile `json:"files"`
}

// Entry returns the manifest entry for a source file, if present.
func (m *Manifest) Entry(source string) (ManifestEntry, bool) {
	for _, e := range m.Entries {
		if e.Source == source {
			return e, true
		}
	}
	return ManifestEntry{}, false
}
