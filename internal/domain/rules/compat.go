package rules

import (
	"regexp"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/validgen/validgen/internal/domain"
)

// identPattern accepts plain and package-qualified Go identifiers for
// custom function references.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ruleParams validates a rule's kind-specific arguments against the
// field's resolved signature and returns the structured parameter map.
// Applicability failures are analysis errors: a range rule on a string
// field fails here, not at run time.
func ruleParams(
	field domain.FieldDef,
	kind domain.RuleKind,
	args []arg,
	sig domain.TypeSignature,
	sigs map[string]domain.TypeSignature,
) (map[string]any, error) {
	switch kind {
	case domain.RuleRequired:
		return nil, rejectArgs(field, kind, args)

	case domain.RuleEmail, domain.RuleURL, domain.RulePhone:
		if err := rejectArgs(field, kind, args); err != nil {
			return nil, err
		}
		if !sig.IsString() {
			return nil, domain.Errorf(field.Span,
				"field %s: rule %s applies to string fields, %s is %s",
				field.Name, kind, field.Name, sig.Text)
		}
		return nil, nil

	case domain.RuleLength:
		return lengthParams(field, args, sig)

	case domain.RuleRange:
		return rangeParams(field, args, sig)

	case domain.RuleRegex, domain.RuleContains:
		return patternParams(field, kind, args, sig)

	case domain.RuleExpr:
		return exprParams(field, args, sigs)

	case domain.RuleNested:
		if err := rejectArgs(field, kind, args); err != nil {
			return nil, err
		}
		if !sig.IsNamed() {
			return nil, domain.Errorf(field.Span,
				"field %s: rule nested applies to named struct types, %s is %s",
				field.Name, field.Name, sig.Text)
		}
		return nil, nil

	case domain.RuleCustom:
		return fnParams(field, "custom", args)
	}

	// Unreachable while the vocabulary and this switch stay in sync.
	return nil, domain.Errorf(field.Span, "field %s: rule %s has no parameter handler", field.Name, kind)
}

func lengthParams(field domain.FieldDef, args []arg, sig domain.TypeSignature) (map[string]any, error) {
	if !sig.HasLength() {
		return nil, domain.Errorf(field.Span,
			"field %s: rule length applies to strings, slices, arrays and maps, %s is %s",
			field.Name, field.Name, sig.Text)
	}

	params := map[string]any{}
	for _, a := range args {
		switch a.Name {
		case "min", "max", "equal":
			n, err := strconv.ParseInt(a.Value, 10, 64)
			if err != nil || n < 0 {
				return nil, domain.Errorf(field.Span,
					"field %s: rule length argument %s must be a non-negative integer, got %q",
					field.Name, a.Name, a.Value)
			}
			params[a.Name] = n
		default:
			return nil, unknownArg(field, domain.RuleLength, a)
		}
	}

	if len(params) == 0 {
		return nil, domain.Errorf(field.Span,
			"field %s: rule length needs at least one of min, max, equal", field.Name)
	}
	if _, hasEqual := params["equal"]; hasEqual && len(params) > 1 {
		return nil, domain.Errorf(field.Span,
			"field %s: rule length argument equal excludes min and max", field.Name)
	}
	if min, ok := params["min"].(int64); ok {
		if max, ok := params["max"].(int64); ok && min > max {
			return nil, domain.Errorf(field.Span,
				"field %s: rule length has min %d greater than max %d", field.Name, min, max)
		}
	}
	return params, nil
}

func rangeParams(field domain.FieldDef, args []arg, sig domain.TypeSignature) (map[string]any, error) {
	if !sig.IsNumeric() {
		return nil, domain.Errorf(field.Span,
			"field %s: rule range applies to numeric fields, %s is %s",
			field.Name, field.Name, sig.Text)
	}

	params := map[string]any{}
	for _, a := range args {
		switch a.Name {
		case "min", "max":
			f, err := strconv.ParseFloat(a.Value, 64)
			if err != nil {
				return nil, domain.Errorf(field.Span,
					"field %s: rule range argument %s must be a number, got %q",
					field.Name, a.Name, a.Value)
			}
			params[a.Name] = f
		default:
			return nil, unknownArg(field, domain.RuleRange, a)
		}
	}

	if len(params) == 0 {
		return nil, domain.Errorf(field.Span,
			"field %s: rule range needs min, max, or both", field.Name)
	}
	if min, ok := params["min"].(float64); ok {
		if max, ok := params["max"].(float64); ok && min > max {
			return nil, domain.Errorf(field.Span,
				"field %s: rule range has min %v greater than max %v", field.Name, min, max)
		}
	}
	return params, nil
}

func patternParams(field domain.FieldDef, kind domain.RuleKind, args []arg, sig domain.TypeSignature) (map[string]any, error) {
	if !sig.IsString() {
		return nil, domain.Errorf(field.Span,
			"field %s: rule %s applies to string fields, %s is %s",
			field.Name, kind, field.Name, sig.Text)
	}

	pattern := ""
	for _, a := range args {
		if a.Name != "pattern" {
			return nil, unknownArg(field, kind, a)
		}
		pattern = a.Value
	}
	if pattern == "" {
		return nil, domain.Errorf(field.Span,
			"field %s: rule %s requires a pattern argument", field.Name, kind)
	}

	if kind == domain.RuleRegex {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, domain.Errorf(field.Span,
				"field %s: rule regex pattern does not compile: %v", field.Name, err)
		}
	}

	return map[string]any{"pattern": pattern}, nil
}

// exprParams compiles the expression at analysis time against an
// environment of the field's siblings plus "value", so references to
// unknown names fail here instead of inside generated code.
func exprParams(field domain.FieldDef, args []arg, sigs map[string]domain.TypeSignature) (map[string]any, error) {
	src := ""
	for _, a := range args {
		if a.Name != "expression" {
			return nil, unknownArg(field, domain.RuleExpr, a)
		}
		src = a.Value
	}
	if src == "" {
		return nil, domain.Errorf(field.Span,
			"field %s: rule expr requires an expression argument", field.Name)
	}

	env := make(map[string]any, len(sigs)+1)
	env["value"] = nil
	for name := range sigs {
		env[name] = nil
	}
	if _, err := expr.Compile(src, expr.Env(env)); err != nil {
		return nil, domain.Errorf(field.Span,
			"field %s: rule expr expression does not compile: %v", field.Name, err)
	}

	return map[string]any{"expression": src}, nil
}

func fnParams(field domain.FieldDef, keyword string, args []arg) (map[string]any, error) {
	fn := ""
	for _, a := range args {
		if a.Name != "fn" {
			return nil, domain.Errorf(field.Span,
				"field %s: %s takes only a fn argument, got %s", field.Name, keyword, a.Name)
		}
		fn = a.Value
	}
	if fn == "" {
		return nil, domain.Errorf(field.Span,
			"field %s: %s requires a fn argument naming the function to call", field.Name, keyword)
	}
	if !identPattern.MatchString(fn) {
		return nil, domain.Errorf(field.Span,
			"field %s: %s fn %q is not a valid identifier", field.Name, keyword, fn)
	}
	return map[string]any{"fn": fn}, nil
}

// modifierParams validates a modifier's arguments and applicability.
func modifierParams(
	field domain.FieldDef,
	kind domain.ModifierKind,
	args []arg,
	sig domain.TypeSignature,
) (map[string]any, error) {
	switch kind {
	case domain.ModTrim, domain.ModLowercase, domain.ModUppercase, domain.ModCapitalize:
		if len(args) > 0 {
			return nil, domain.Errorf(field.Span,
				"field %s: modifier %s takes no arguments", field.Name, kind)
		}
		if !sig.IsString() {
			return nil, domain.Errorf(field.Span,
				"field %s: modifier %s applies to string fields, %s is %s",
				field.Name, kind, field.Name, sig.Text)
		}
		return nil, nil

	case domain.ModNested:
		if len(args) > 0 {
			return nil, domain.Errorf(field.Span,
				"field %s: modifier nested takes no arguments", field.Name)
		}
		if !sig.IsNamed() {
			return nil, domain.Errorf(field.Span,
				"field %s: modifier nested applies to named struct types, %s is %s",
				field.Name, field.Name, sig.Text)
		}
		return nil, nil

	case domain.ModCustom:
		return fnParams(field, "modifier custom", args)
	}

	return nil, domain.Errorf(field.Span, "field %s: modifier %s has no parameter handler", field.Name, kind)
}

func rejectArgs(field domain.FieldDef, kind domain.RuleKind, args []arg) error {
	if len(args) > 0 {
		return unknownArg(field, kind, args[0])
	}
	return nil
}

func unknownArg(field domain.FieldDef, kind domain.RuleKind, a arg) error {
	return domain.Errorf(field.Span,
		"field %s: rule %s does not take argument %s", field.Name, kind, a.Name)
}
