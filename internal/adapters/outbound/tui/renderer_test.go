package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/validgen/validgen/internal/adapters/outbound/tui"
	"github.com/validgen/validgen/internal/domain"
)

func TestRenderReport(t *testing.T) {
	report := &domain.AnalysisReport{
		Dir: "/project",
		Files: []domain.FileAnalysis{
			{
				Path:    "user.go",
				Package: "api",
				Schemas: []domain.SchemaDescriptor{
					{
						Schema: domain.SchemaDecl{Name: "User", Kind: domain.SchemaStruct, Mode: domain.ModeModify},
						Fields: []domain.FieldDescriptor{
							{
								Field:     domain.FieldDef{Name: "Email"},
								Signature: domain.TypeSignature{Text: "string"},
								Rules:     []domain.Rule{{Kind: domain.RuleEmail}},
								Modifiers: []domain.Modifier{{Kind: domain.ModLowercase}},
								ErrorKey:  "email",
							},
							{
								Field:     domain.FieldDef{Name: "Untagged"},
								Signature: domain.TypeSignature{Text: "bool"},
								ErrorKey:  "untagged",
							},
						},
					},
				},
			},
		},
		Stale: []string{"user_valid.gen.go"},
	}

	out := tui.RenderReport(report)
	assert.Contains(t, out, "1 schemas in 1 files")
	assert.Contains(t, out, "user.go")
	assert.Contains(t, out, "User")
	assert.Contains(t, out, "email")
	assert.Contains(t, out, "lowercase")
	assert.Contains(t, out, "Stale generated files")
	assert.Contains(t, out, "user_valid.gen.go")
	// Fields without annotations stay out of the listing.
	assert.NotContains(t, out, "Untagged")
}

func TestRenderGenerateResult(t *testing.T) {
	result := &domain.GenerateResult{
		Dir:    "/project",
		Commit: "0123456789abcdef0123456789abcdef01234567",
		Files: []domain.GeneratedFile{
			{Source: "user.go", Output: "user_valid.gen.go", Schemas: []string{"User", "Address"}},
		},
	}

	out := tui.RenderGenerateResult(result)
	assert.Contains(t, out, "generated 1 files")
	assert.Contains(t, out, "user_valid.gen.go")
	assert.Contains(t, out, "User, Address")
	assert.Contains(t, out, "commit 0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef0123456789abcdef01234567")
}

func TestRenderAnalysisError(t *testing.T) {
	err := domain.Errorf(domain.SourceSpan{File: "user.go", Line: 4, Column: 2}, "field Email: unknown validation rule")
	out := tui.RenderAnalysisError(err)
	assert.Contains(t, out, "user.go:4:2")
	assert.Contains(t, out, "field Email: unknown validation rule")
}

func TestRenderVocabulary(t *testing.T) {
	out := tui.RenderVocabulary()
	for _, k := range domain.RuleKinds() {
		assert.Contains(t, out, string(k))
	}
	for _, k := range domain.ModifierKinds() {
		assert.Contains(t, out, string(k))
	}
}
