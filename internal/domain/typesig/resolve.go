// Package typesig computes canonical textual type signatures for schema
// fields. Signatures are plain text rather than a structured type
// algebra: the rule extractor only needs equality and prefix tests, and
// text keeps the resolver total — every type shape yields a signature,
// the sole hard failure being the ownership check.
package typesig

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"
	"unicode"

	"github.com/validgen/validgen/internal/domain"
)

// MapFieldTypes resolves the whole field list up front and returns a
// name→signature mapping for the extraction pass. If allowRefs is false,
// the first field whose signature carries a reference aborts resolution
// with an AnalysisError at that field.
func MapFieldTypes(fields []domain.FieldDef, allowRefs bool) (map[string]domain.TypeSignature, error) {
	sigs := make(map[string]domain.TypeSignature, len(fields))

	for _, f := range fields {
		sig := Resolve(f.Type)
		if sig.CarriesReference() && !allowRefs {
			return nil, domain.Errorf(f.Span,
				"field %s has reference type %s: modify mode requires owned data; declare the struct //validgen:validate if it is only validated",
				f.Name, sig.Text)
		}
		sigs[f.Name] = sig
	}

	return sigs, nil
}

// Resolve derives the canonical signature for one type expression.
// Named and path types serialize directly; pointers serialize as the
// pointee prefixed with the & marker; one level of parenthesized
// grouping is transparent; everything else falls through to verbatim
// serialization and never fails.
func Resolve(expr ast.Expr) domain.TypeSignature {
	switch t := expr.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		return domain.TypeSignature{Text: exprText(expr)}
	case *ast.StarExpr:
		return domain.TypeSignature{Text: "&" + exprText(t.X), Ref: true}
	case *ast.ParenExpr:
		return domain.TypeSignature{Text: exprText(t.X)}
	default:
		return domain.TypeSignature{Text: exprText(expr)}
	}
}

// exprText renders a syntax node to text with all whitespace stripped,
// so different spacings of the same type yield identical signatures.
func exprText(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), expr); err != nil {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, buf.String())
}
