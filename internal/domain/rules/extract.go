// Package rules parses field annotations into typed rule and modifier
// descriptors. Each annotation is parsed independently; an unrecognized
// keyword is a hard analysis error so a typo can never silently disable
// a check.
package rules

import (
	"fmt"

	"github.com/validgen/validgen/internal/domain"
)

// Extractor parses one field's annotation tags against the resolved
// type-signature mapping. The tag keys are configurable so projects can
// coexist with other tag-consuming libraries.
type Extractor struct {
	validateTag string
	modifyTag   string
}

// NewExtractor builds an extractor reading the given tag keys. Empty
// keys fall back to the defaults.
func NewExtractor(validateTag, modifyTag string) *Extractor {
	def := domain.DefaultConfig()
	if validateTag == "" {
		validateTag = def.ValidateTag
	}
	if modifyTag == "" {
		modifyTag = def.ModifyTag
	}
	return &Extractor{validateTag: validateTag, modifyTag: modifyTag}
}

// Collect parses the field's validate and modify tags into ordered rule
// and modifier lists. The signature mapping must cover every field of
// the schema; a missing entry is a programming error, not user input,
// because type resolution runs over the full field list first.
func (e *Extractor) Collect(
	field domain.FieldDef,
	sigs map[string]domain.TypeSignature,
) ([]domain.Rule, []domain.Modifier, error) {
	sig, ok := sigs[field.Name]
	if !ok {
		panic(fmt.Sprintf("rules: no type signature for field %s, resolver must run first", field.Name))
	}

	var ruleList []domain.Rule
	if raw, present := field.Tag.Lookup(e.validateTag); present {
		anns, err := parseTag(raw)
		if err != nil {
			return nil, nil, domain.Errorf(field.Span, "field %s: malformed %s tag: %v", field.Name, e.validateTag, err)
		}
		for _, ann := range anns {
			rule, err := e.parseRule(field, ann, sig, sigs)
			if err != nil {
				return nil, nil, err
			}
			ruleList = append(ruleList, rule)
		}
	}

	var modList []domain.Modifier
	if raw, present := field.Tag.Lookup(e.modifyTag); present {
		anns, err := parseTag(raw)
		if err != nil {
			return nil, nil, domain.Errorf(field.Span, "field %s: malformed %s tag: %v", field.Name, e.modifyTag, err)
		}
		for _, ann := range anns {
			mod, err := e.parseModifier(field, ann, sig)
			if err != nil {
				return nil, nil, err
			}
			modList = append(modList, mod)
		}
	}

	return ruleList, modList, nil
}

// parseRule resolves one validate annotation: kind from the keyword,
// optional code/message overrides, kind-specific parameters checked for
// type compatibility against the field's signature.
func (e *Extractor) parseRule(
	field domain.FieldDef,
	ann annotation,
	sig domain.TypeSignature,
	sigs map[string]domain.TypeSignature,
) (domain.Rule, error) {
	kind, known := domain.LookupRule(ann.Keyword)
	if !known {
		if _, isMod := domain.LookupModifier(ann.Keyword); isMod {
			return domain.Rule{}, domain.Errorf(field.Span,
				"field %s: %q is a modifier, not a validation rule; move it to the %s tag",
				field.Name, ann.Keyword, e.modifyTag)
		}
		return domain.Rule{}, domain.Errorf(field.Span,
			"field %s: unknown validation rule %q (known rules: %s)",
			field.Name, ann.Keyword, keywordList())
	}

	rule := domain.Rule{
		Kind: kind,
		Code: kind.DefaultCode(),
		Span: field.Span,
	}

	var extra []arg
	for _, a := range ann.Args {
		switch a.Name {
		case "code":
			if a.Value == "" {
				return domain.Rule{}, domain.Errorf(field.Span, "field %s: rule %s has empty code override", field.Name, kind)
			}
			rule.Code = a.Value
		case "message":
			rule.Message = a.Value
		default:
			extra = append(extra, a)
		}
	}

	params, err := ruleParams(field, kind, extra, sig, sigs)
	if err != nil {
		return domain.Rule{}, err
	}
	rule.Params = params

	return rule, nil
}

// parseModifier resolves one modify annotation. Modifiers carry no
// code/message arguments: they transform, they never fail.
func (e *Extractor) parseModifier(
	field domain.FieldDef,
	ann annotation,
	sig domain.TypeSignature,
) (domain.Modifier, error) {
	kind, known := domain.LookupModifier(ann.Keyword)
	if !known {
		if _, isRule := domain.LookupRule(ann.Keyword); isRule {
			return domain.Modifier{}, domain.Errorf(field.Span,
				"field %s: %q is a validation rule, not a modifier; move it to the %s tag",
				field.Name, ann.Keyword, e.validateTag)
		}
		return domain.Modifier{}, domain.Errorf(field.Span,
			"field %s: unknown modifier %q (known modifiers: %s)",
			field.Name, ann.Keyword, modifierList())
	}

	for _, a := range ann.Args {
		if a.Name == "code" || a.Name == "message" {
			return domain.Modifier{}, domain.Errorf(field.Span,
				"field %s: modifier %s takes no %s argument, modifiers never fail validation",
				field.Name, kind, a.Name)
		}
	}

	params, err := modifierParams(field, kind, ann.Args, sig)
	if err != nil {
		return domain.Modifier{}, err
	}

	return domain.Modifier{Kind: kind, Params: params, Span: field.Span}, nil
}

func keywordList() string {
	return joinKinds(domain.RuleKinds())
}

func modifierList() string {
	return joinKinds(domain.ModifierKinds())
}

func joinKinds[K ~string](kinds []K) string {
	out := ""
	for i, k := range kinds {
		if i > 0 {
			out += ", "
		}
		out += string(k)
	}
	return out
}
