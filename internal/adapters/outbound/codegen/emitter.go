// Package codegen turns field descriptors into generated Go source:
// a Validate method per schema, plus Modify and ModifyAndValidate for
// modify-mode schemas. Emission is line-oriented; the assembled file is
// run through goimports-style processing for final formatting.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/validgen/validgen/internal/domain"
)

const runtimeModule = "github.com/validgen/validgen/pkg"

// Emitter implements domain.CodeEmitter.
type Emitter struct{}

func New() *Emitter {
	return &Emitter{}
}

// Emit renders one generated file for a source file's schemas.
func (e *Emitter) Emit(unit domain.GeneratedUnit) ([]byte, error) {
	if len(unit.Schemas) == 0 {
		return nil, fmt.Errorf("emit: no schemas for %s", unit.Source)
	}

	f := newFileBuf(unit.Package)

	f.printf("// Code generated by validgen. DO NOT EDIT.")
	f.printf("// Source: %s", unit.Source)
	if unit.Commit != "" {
		f.printf("// Commit: %s", unit.Commit)
	}
	f.printf("")
	f.printf("package %s", unit.Package)
	f.printf("")
	f.printf("%s", importMarker)
	f.printf("")

	for _, schema := range unit.Schemas {
		emitSchema(f, schema)
	}

	src := f.render()
	out, err := imports.Process(unit.Source, []byte(src), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", unit.Source, err)
	}
	return out, nil
}

// emitSchema writes the package-level vars and methods for one schema.
func emitSchema(f *fileBuf, schema domain.SchemaDescriptor) {
	emitVars(f, schema)

	if schema.Schema.Mode == domain.ModeModify {
		emitModify(f, schema)
	}
	emitValidate(f, schema)

	if schema.Schema.Mode == domain.ModeModify {
		f.printf("// ModifyAndValidate applies %s's modifiers and then validates it.", schema.Schema.Name)
		f.printf("func (s *%s) ModifyAndValidate() error {", schema.Schema.Name)
		f.printf("\ts.Modify()")
		f.printf("\treturn s.Validate()")
		f.printf("}")
		f.printf("")
	}
}

// emitVars hoists compiled regexes and expressions to package level so
// they compile once per process, not once per call.
func emitVars(f *fileBuf, schema domain.SchemaDescriptor) {
	for _, fd := range schema.Fields {
		for i, rule := range fd.Rules {
			switch rule.Kind {
			case domain.RuleRegex:
				f.need("regexp")
				f.printf("var %s = regexp.MustCompile(%q)",
					varName("Regex", schema, fd, i), rule.Params["pattern"])
			case domain.RuleExpr:
				f.need(runtimeModule + "/valid")
				f.printf("var %s = valid.MustCompile(%q)",
					varName("Expr", schema, fd, i), rule.Params["expression"])
			}
		}
	}
	f.printf("")
}

func varName(kind string, schema domain.SchemaDescriptor, fd domain.FieldDescriptor, i int) string {
	return fmt.Sprintf("vg%s%s%s%d", kind, schema.Schema.Name, fd.Field.Name, i)
}

// fileBuf accumulates output lines and the imports they need.
type fileBuf struct {
	pkg     string
	lines   []string
	imports map[string]bool
}

const importMarker = "//validgen:imports"

func newFileBuf(pkg string) *fileBuf {
	return &fileBuf{pkg: pkg, imports: map[string]bool{}}
}

func (f *fileBuf) printf(format string, args ...any) {
	f.lines = append(f.lines, fmt.Sprintf(format, args...))
}

func (f *fileBuf) need(path string) {
	f.imports[path] = true
}

// render splices the collected import block over the marker line.
func (f *fileBuf) render() string {
	var block strings.Builder
	if len(f.imports) > 0 {
		paths := make([]string, 0, len(f.imports))
		for p := range f.imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		block.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&block, "\t%q\n", p)
		}
		block.WriteString(")")
	}

	out := strings.Join(f.lines, "\n") + "\n"
	return strings.Replace(out, importMarker, block.String(), 1)
}
