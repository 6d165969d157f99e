package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validgen/validgen/internal/adapters/outbound/parser"
	"github.com/validgen/validgen/internal/domain"
)

func parseSource(t *testing.T, src string) *domain.ParsedFile {
	t.Helper()
	pf, err := parser.New().ParseSource("fixture.go", []byte(src))
	require.NoError(t, err)
	return pf
}

func TestParseSource_FindsDirectives(t *testing.T) {
	pf := parseSource(t, `package api

//validgen:validate
type Account struct {
	Email string `+"`validate:\"email\"`"+`
}

//validgen:modify
type User struct {
	Name string `+"`modify:\"trim\"`"+`
}

type Plain struct {
	Ignored string
}
`)

	assert.Equal(t, "api", pf.Package)
	require.Len(t, pf.Schemas, 2)

	assert.Equal(t, "Account", pf.Schemas[0].Name)
	assert.Equal(t, domain.ModeValidate, pf.Schemas[0].Mode)
	assert.Equal(t, domain.SchemaStruct, pf.Schemas[0].Kind)

	assert.Equal(t, "User", pf.Schemas[1].Name)
	assert.Equal(t, domain.ModeModify, pf.Schemas[1].Mode)
}

func TestParseSource_FieldDetails(t *testing.T) {
	pf := parseSource(t, `package api

//validgen:validate
type Account struct {
	Email   string `+"`validate:\"email\" json:\"email\"`"+`
	A, B    int
	NoTag   bool
}
`)

	require.Len(t, pf.Schemas, 1)
	fields := pf.Schemas[0].Fields
	require.Len(t, fields, 4)

	assert.Equal(t, "Email", fields[0].Name)
	assert.Equal(t, "email", fields[0].Tag.Get("validate"))
	assert.Equal(t, 5, fields[0].Span.Line)
	assert.Equal(t, "fixture.go", fields[0].Span.File)

	// Multi-name declarations flatten to one FieldDef per name.
	assert.Equal(t, "A", fields[1].Name)
	assert.Equal(t, "B", fields[2].Name)
	assert.Equal(t, "NoTag", fields[3].Name)
	assert.Empty(t, string(fields[3].Tag))
}

func TestParseSource_DirectiveOnTypeSpec(t *testing.T) {
	// The directive may sit on the TypeSpec inside a grouped declaration.
	pf := parseSource(t, `package api

type (
	//validgen:validate
	Account struct {
		Email string
	}

	Other struct{}
)
`)
	require.Len(t, pf.Schemas, 1)
	assert.Equal(t, "Account", pf.Schemas[0].Name)
}

func TestParseSource_ClassifiesNonStructs(t *testing.T) {
	pf := parseSource(t, `package api

//validgen:validate
type Handler interface {
	Handle()
}

//validgen:validate
type Name = string

//validgen:validate
type Count int
`)

	require.Len(t, pf.Schemas, 3)
	assert.Equal(t, domain.SchemaInterface, pf.Schemas[0].Kind)
	assert.Equal(t, domain.SchemaAlias, pf.Schemas[1].Kind)
	assert.Equal(t, domain.SchemaOther, pf.Schemas[2].Kind)
}

func TestParseSource_UnknownDirective(t *testing.T) {
	_, err := parser.New().ParseSource("fixture.go", []byte(`package api

//validgen:sanitize
type User struct{}
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown validgen directive "//validgen:sanitize"`)

	var analysisErr *domain.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "fixture.go", analysisErr.Span.File)
}

func TestParseSource_EmbeddedFieldKeptForWalkerToReject(t *testing.T) {
	pf := parseSource(t, `package api

type Base struct{}

//validgen:validate
type User struct {
	Base
	Email string
}
`)
	require.Len(t, pf.Schemas, 1)
	fields := pf.Schemas[0].Fields
	require.Len(t, fields, 2)
	assert.Empty(t, fields[0].Name)
	assert.Equal(t, "Email", fields[1].Name)
}

func TestParseSource_SyntaxError(t *testing.T) {
	_, err := parser.New().ParseSource("fixture.go", []byte("package api\n\nfunc {"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "parsing fixture.go")
}

func TestParseFile_ReadsFromDisk(t *testing.T) {
	pf, err := parser.New().ParseFile("../../../../testdata/petstore/user.go")
	require.NoError(t, err)
	assert.Equal(t, "petstore", pf.Package)
	require.Len(t, pf.Schemas, 2)
	assert.Equal(t, "User", pf.Schemas[0].Name)
	assert.Equal(t, "Address", pf.Schemas[1].Name)
}
