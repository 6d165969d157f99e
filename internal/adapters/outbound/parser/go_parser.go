package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/validgen/validgen/internal/domain"
)

// directivePrefix marks type declarations that opt in to generation.
const directivePrefix = "//validgen:"

// GoParser implements domain.SchemaParser using go/ast.
type GoParser struct{}

func New() *GoParser {
	return &GoParser{}
}

// ParseFile reads and parses one Go source file.
func (p *GoParser) ParseFile(filePath string) (*domain.ParsedFile, error) {
	return p.parse(filePath, nil)
}

// ParseSource parses in-memory source, used by tests and the MCP
// adapter. The name is only used for spans.
func (p *GoParser) ParseSource(name string, src []byte) (*domain.ParsedFile, error) {
	return p.parse(name, src)
}

func (p *GoParser) parse(filePath string, src []byte) (*domain.ParsedFile, error) {
	fset := token.NewFileSet()
	// A nil []byte must be passed as an untyped nil, or ParseFile sees a
	// non-nil interface and parses empty source instead of reading the file.
	var srcArg any
	if src != nil {
		srcArg = src
	}
	file, err := goparser.ParseFile(fset, filePath, srcArg, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}

	result := &domain.ParsedFile{
		Path:    filePath,
		Package: file.Name.Name,
	}

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			mode, found, err := directiveMode(span(fset, ts.Pos()), gd.Doc, ts.Doc)
			if err != nil {
				return nil, err
			}
			if !found {
				continue
			}

			schema := domain.SchemaDecl{
				Name: ts.Name.Name,
				Kind: classify(ts),
				Mode: mode,
				Span: span(fset, ts.Pos()),
			}
			if st, ok := ts.Type.(*ast.StructType); ok {
				schema.Fields = collectFieldDefs(fset, st)
			}
			result.Schemas = append(result.Schemas, schema)
		}
	}

	return result, nil
}

// directiveMode scans the declaration's doc comments for a validgen
// directive. An unknown directive is an analysis error rather than a
// silent skip, so a typo cannot disable generation unnoticed.
func directiveMode(at domain.SourceSpan, groups ...*ast.CommentGroup) (domain.Mode, bool, error) {
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			if !strings.HasPrefix(c.Text, directivePrefix) {
				continue
			}
			switch verb := strings.TrimPrefix(c.Text, directivePrefix); verb {
			case string(domain.ModeValidate):
				return domain.ModeValidate, true, nil
			case string(domain.ModeModify):
				return domain.ModeModify, true, nil
			default:
				return "", false, domain.Errorf(at,
					"unknown validgen directive %q (want %svalidate or %smodify)",
					c.Text, directivePrefix, directivePrefix)
			}
		}
	}
	return "", false, nil
}

// classify maps the declared type's syntax to a schema kind so the
// walker can reject ineligible declarations with a precise message.
func classify(ts *ast.TypeSpec) domain.SchemaKind {
	if ts.Assign.IsValid() {
		return domain.SchemaAlias
	}
	switch ts.Type.(type) {
	case *ast.StructType:
		return domain.SchemaStruct
	case *ast.InterfaceType:
		return domain.SchemaInterface
	default:
		return domain.SchemaOther
	}
}

// collectFieldDefs flattens the struct's field list in declaration
// order. A field declaring several names yields one FieldDef per name;
// an embedded field yields a FieldDef with an empty name for the walker
// to reject.
func collectFieldDefs(fset *token.FileSet, st *ast.StructType) []domain.FieldDef {
	var defs []domain.FieldDef
	for _, f := range st.Fields.List {
		tag := fieldTag(f)
		if len(f.Names) == 0 {
			defs = append(defs, domain.FieldDef{
				Type: f.Type,
				Tag:  tag,
				Span: span(fset, f.Pos()),
			})
			continue
		}
		for _, name := range f.Names {
			defs = append(defs, domain.FieldDef{
				Name: name.Name,
				Type: f.Type,
				Tag:  tag,
				Span: span(fset, name.Pos()),
			})
		}
	}
	return defs
}

func fieldTag(f *ast.Field) reflect.StructTag {
	if f.Tag == nil {
		return ""
	}
	unquoted, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return ""
	}
	return reflect.StructTag(unquoted)
}

func span(fset *token.FileSet, pos token.Pos) domain.SourceSpan {
	p := fset.Position(pos)
	return domain.SourceSpan{File: p.Filename, Line: p.Line, Column: p.Column}
}
