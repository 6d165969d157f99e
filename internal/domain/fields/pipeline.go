// Package fields orchestrates per-schema field analysis: eligibility,
// batch type resolution, then per-field rule extraction into descriptors.
package fields

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/validgen/validgen/internal/domain"
	"github.com/validgen/validgen/internal/domain/rules"
	"github.com/validgen/validgen/internal/domain/typesig"
)

// Pipeline assembles field descriptors for one schema at a time. It has
// no state shared across runs; a zero-tag-key pipeline uses the default
// tag names.
type Pipeline struct {
	extractor *rules.Extractor
}

// New builds a pipeline reading the given annotation tag keys.
func New(validateTag, modifyTag string) *Pipeline {
	return &Pipeline{extractor: rules.NewExtractor(validateTag, modifyTag)}
}

// CollectFields verifies the schema is an eligible input — a struct with
// named fields only — and returns its fields in declaration order.
// Declaration order is significant: generated checks run in it, so
// user-facing error ordering reflects it.
func CollectFields(decl domain.SchemaDecl) ([]domain.FieldDef, error) {
	if decl.Kind != domain.SchemaStruct {
		return nil, domain.Errorf(decl.Span,
			"validgen directives apply only to structs with named fields, %s is %s",
			decl.Name, decl.Kind)
	}
	for _, f := range decl.Fields {
		if f.Name == "" {
			return nil, domain.Errorf(decl.Span,
				"validgen directives apply only to structs with named fields, %s has an embedded field",
				decl.Name)
		}
	}
	return decl.Fields, nil
}

// Collect runs the full field resolution pipeline for one schema.
// Two explicit phases: signatures for the whole field list are resolved
// first, because rule applicability checks may consult sibling fields'
// types; extraction then walks the fields in declaration order. The
// first error aborts the run — no partial descriptor list ever reaches
// the code generator.
func (p *Pipeline) Collect(decl domain.SchemaDecl) ([]domain.FieldDescriptor, error) {
	fieldDefs, err := CollectFields(decl)
	if err != nil {
		return nil, err
	}

	sigs, err := typesig.MapFieldTypes(fieldDefs, decl.Mode.AllowReferences())
	if err != nil {
		return nil, err
	}

	descriptors := make([]domain.FieldDescriptor, 0, len(fieldDefs))
	for _, f := range fieldDefs {
		ruleList, modList, err := p.extractor.Collect(f, sigs)
		if err != nil {
			return nil, err
		}

		descriptors = append(descriptors, domain.FieldDescriptor{
			Field:     f,
			Signature: sigs[f.Name],
			Rules:     ruleList,
			Modifiers: modList,
			ErrorKey:  errorKey(f.Name),
		})
	}

	return descriptors, nil
}

// errorKey derives the snake_case reporting key from a field name, e.g.
// FirstName -> first_name, APIKey -> api_key.
func errorKey(name string) string {
	parts := camelcase.Split(name)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, "_")
}
