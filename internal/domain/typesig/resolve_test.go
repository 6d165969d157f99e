package typesig_test

import (
	"go/ast"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validgen/validgen/internal/domain"
	"github.com/validgen/validgen/internal/domain/typesig"
)

func typeExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := parser.ParseExpr(src)
	require.NoError(t, err, "fixture type %q must parse", src)
	return e
}

func TestResolve(t *testing.T) {
	tests := []struct {
		src  string
		text string
		ref  bool
	}{
		{"string", "string", false},
		{"int64", "int64", false},
		{"Address", "Address", false},
		{"model.Address", "model.Address", false},
		{"List[string]", "List[string]", false},
		{"Pair[string, int]", "Pair[string,int]", false},
		{"*string", "&string", true},
		{"*model.Address", "&model.Address", true},
		{"(Address)", "Address", false},
		{"[]string", "[]string", false},
		{"[]*User", "[]*User", false},
		{"map[string]int", "map[string]int", false},
		{"chan int", "chanint", false},
		{"func(a int) error", "func(aint)error", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sig := typesig.Resolve(typeExpr(t, tt.src))
			assert.Equal(t, tt.text, sig.Text)
			assert.Equal(t, tt.ref, sig.Ref)
		})
	}
}

// Spacing differences in the source must not leak into signatures.
func TestResolve_WhitespaceInsensitive(t *testing.T) {
	a := typesig.Resolve(typeExpr(t, "map[string]  *  User"))
	b := typesig.Resolve(typeExpr(t, "map[string]*User"))
	assert.Equal(t, a, b)
}

func TestMapFieldTypes(t *testing.T) {
	fields := []domain.FieldDef{
		{Name: "Email", Type: typeExpr(t, "string")},
		{Name: "Owner", Type: typeExpr(t, "*User")},
	}

	sigs, err := typesig.MapFieldTypes(fields, true)
	require.NoError(t, err)
	assert.Equal(t, domain.TypeSignature{Text: "string"}, sigs["Email"])
	assert.Equal(t, domain.TypeSignature{Text: "&User", Ref: true}, sigs["Owner"])
}

func TestMapFieldTypes_RejectsReferencesWhenOwnedRequired(t *testing.T) {
	fields := []domain.FieldDef{
		{Name: "Owner", Type: typeExpr(t, "*User"), Span: domain.SourceSpan{File: "user.go", Line: 5, Column: 2}},
	}

	_, err := typesig.MapFieldTypes(fields, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "Owner has reference type &User")
	assert.ErrorContains(t, err, "modify mode requires owned data")

	var analysisErr *domain.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 5, analysisErr.Span.Line)
}

func TestMapFieldTypes_ContainerOfPointersAlsoRejected(t *testing.T) {
	fields := []domain.FieldDef{
		{Name: "Owners", Type: typeExpr(t, "[]*User")},
	}
	_, err := typesig.MapFieldTypes(fields, false)
	assert.Error(t, err)
}
