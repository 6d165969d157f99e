package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/validgen/validgen/internal/domain"
)

// emitValidate writes the Validate method for one schema. Checks are
// emitted in field declaration order, and within a field in annotation
// order, so run-time error collection order matches the source.
func emitValidate(f *fileBuf, schema domain.SchemaDescriptor) {
	name := schema.Schema.Name
	f.need(runtimeModule + "/valid")

	f.printf("// Validate checks %s against its declared rules, in declaration order.", name)
	f.printf("func (s %s) Validate() error {", name)
	f.printf("\terrs := valid.NewErrors()")

	for _, fd := range schema.Fields {
		if len(fd.Rules) == 0 {
			continue
		}
		f.printf("")
		emitFieldChecks(f, schema, fd)
	}

	f.printf("")
	f.printf("\treturn errs.OrNil()")
	f.printf("}")
	f.printf("")
}

func emitFieldChecks(f *fileBuf, schema domain.SchemaDescriptor, fd domain.FieldDescriptor) {
	access := "s." + fd.Field.Name

	for i, rule := range fd.Rules {
		// required inspects the field itself; every other check needs
		// the pointee, so pointer fields get a nil guard per check.
		if rule.Kind == domain.RuleRequired {
			f.printf("\tif valid.IsZero(%s) {", access)
			emitFail(f, "\t\t", fd, rule, access)
			f.printf("\t}")
			continue
		}

		if fd.Signature.Ref {
			f.printf("\tif %s != nil {", access)
			emitRuleCheck(f, "\t\t", schema, fd, i, rule, "(*"+access+")")
			f.printf("\t}")
		} else {
			emitRuleCheck(f, "\t", schema, fd, i, rule, access)
		}
	}
}

// emitRuleCheck writes one rule's condition and failure report. v is
// the value expression, already dereferenced for pointer fields.
func emitRuleCheck(f *fileBuf, ind string, schema domain.SchemaDescriptor, fd domain.FieldDescriptor, i int, rule domain.Rule, v string) {
	switch rule.Kind {
	case domain.RuleEmail:
		f.printf("%sif !valid.Email(%s) {", ind, v)

	case domain.RuleURL:
		f.printf("%sif !valid.URL(%s) {", ind, v)

	case domain.RulePhone:
		f.printf("%sif !valid.Phone(%s) {", ind, v)

	case domain.RuleLength:
		if fd.Signature.IsString() {
			f.need("unicode/utf8")
		}
		f.printf("%sif n := %s; %s {", ind, countExpr(fd.Signature, v), lengthCond(rule.Params))

	case domain.RuleRange:
		f.printf("%sif x := float64(%s); %s {", ind, v, rangeCond(rule.Params))

	case domain.RuleRegex:
		f.printf("%sif !%s.MatchString(%s) {", ind, varName("Regex", schema, fd, i), v)

	case domain.RuleContains:
		f.need("strings")
		f.printf("%sif !strings.Contains(%s, %q) {", ind, v, rule.Params["pattern"])

	case domain.RuleExpr:
		f.printf("%sif !valid.EvalBool(%s, %s) {", ind, varName("Expr", schema, fd, i), exprEnv(schema, v))

	case domain.RuleNested:
		f.printf("%sif err := %s.Validate(); err != nil {", ind, v)
		f.printf("%s\terrs.Merge(%q, err)", ind, fd.ErrorKey)
		f.printf("%s}", ind)
		return

	case domain.RuleCustom:
		f.printf("%sif err := %s(%s); err != nil {", ind, rule.Params["fn"], v)
		f.printf("%s\terrs.Add(%q, valid.FailErr(%q, %q, err, %s))",
			ind, fd.ErrorKey, rule.Code, rule.Message, paramsLiteral(rule, v, []string{"fn"}))
		f.printf("%s}", ind)
		return
	}

	emitFail(f, ind+"\t", fd, rule, v)
	f.printf("%s}", ind)
}

func emitFail(f *fileBuf, ind string, fd domain.FieldDescriptor, rule domain.Rule, v string) {
	f.printf("%serrs.Add(%q, valid.Fail(%q, %q, %s))",
		ind, fd.ErrorKey, rule.Code, rule.Message, paramsLiteral(rule, v, nil))
}

func countExpr(sig domain.TypeSignature, v string) string {
	if sig.IsString() {
		return "utf8.RuneCountInString(" + v + ")"
	}
	return "len(" + v + ")"
}

func lengthCond(params map[string]any) string {
	var parts []string
	if eq, ok := params["equal"].(int64); ok {
		parts = append(parts, fmt.Sprintf("n != %d", eq))
	}
	if min, ok := params["min"].(int64); ok {
		parts = append(parts, fmt.Sprintf("n < %d", min))
	}
	if max, ok := params["max"].(int64); ok {
		parts = append(parts, fmt.Sprintf("n > %d", max))
	}
	return strings.Join(parts, " || ")
}

func rangeCond(params map[string]any) string {
	var parts []string
	if min, ok := params["min"].(float64); ok {
		parts = append(parts, "x < "+floatLit(min))
	}
	if max, ok := params["max"].(float64); ok {
		parts = append(parts, "x > "+floatLit(max))
	}
	return strings.Join(parts, " || ")
}

func floatLit(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// exprEnv builds the expression environment literal: the checked value
// plus every sibling field, so expressions can cross-reference fields.
func exprEnv(schema domain.SchemaDescriptor, v string) string {
	var b strings.Builder
	b.WriteString("valid.Params{\"value\": ")
	b.WriteString(v)
	for _, fd := range schema.Fields {
		fmt.Fprintf(&b, ", %q: s.%s", fd.Field.Name, fd.Field.Name)
	}
	b.WriteString("}")
	return b.String()
}

// paramsLiteral renders the failure parameter map: the offending value
// under key "value", then the rule's own parameters. The generated
// contract is that params["value"] always holds the run-time value that
// failed the check.
func paramsLiteral(rule domain.Rule, v string, omit []string) string {
	var b strings.Builder
	b.WriteString("valid.Params{\"value\": ")
	b.WriteString(v)

	keys := make([]string, 0, len(rule.Params))
next:
	for k := range rule.Params {
		for _, o := range omit {
			if k == o {
				continue next
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch val := rule.Params[k].(type) {
		case string:
			fmt.Fprintf(&b, ", %q: %q", k, val)
		case int64:
			fmt.Fprintf(&b, ", %q: int64(%d)", k, val)
		case float64:
			fmt.Fprintf(&b, ", %q: %s", k, floatLit(val))
		default:
			fmt.Fprintf(&b, ", %q: %v", k, val)
		}
	}
	b.WriteString("}")
	return b.String()
}
