package domain

// RuleKind enumerates the validation rule vocabulary. The keyword used
// in the validate tag is the string value of the kind, and also the
// default error code reported by generated checks.
type RuleKind string

const (
	RuleRequired RuleKind = "required"
	RuleEmail    RuleKind = "email"
	RuleURL      RuleKind = "url"
	RulePhone    RuleKind = "phone"
	RuleLength   RuleKind = "length"
	RuleRange    RuleKind = "range"
	RuleRegex    RuleKind = "regex"
	RuleContains RuleKind = "contains"
	RuleExpr     RuleKind = "expr"
	RuleNested   RuleKind = "nested"
	RuleCustom   RuleKind = "custom"
)

// DefaultCode is the error code a rule reports when no code override is
// given; it equals the rule keyword.
func (k RuleKind) DefaultCode() string { return string(k) }

// ModifierKind enumerates the modifier vocabulary. Disjoint from the
// rule vocabulary: modifiers live in the modify tag.
type ModifierKind string

const (
	ModTrim       ModifierKind = "trim"
	ModLowercase  ModifierKind = "lowercase"
	ModUppercase  ModifierKind = "uppercase"
	ModCapitalize ModifierKind = "capitalize"
	ModNested     ModifierKind = "nested"
	ModCustom     ModifierKind = "custom"
)

// RuleKinds lists the rule vocabulary in stable order.
func RuleKinds() []RuleKind {
	return []RuleKind{
		RuleRequired, RuleEmail, RuleURL, RulePhone, RuleLength,
		RuleRange, RuleRegex, RuleContains, RuleExpr, RuleNested,
		RuleCustom,
	}
}

// ModifierKinds lists the modifier vocabulary in stable order.
func ModifierKinds() []ModifierKind {
	return []ModifierKind{
		ModTrim, ModLowercase, ModUppercase, ModCapitalize,
		ModNested, ModCustom,
	}
}

var ruleKeywords = func() map[string]RuleKind {
	m := make(map[string]RuleKind, len(RuleKinds()))
	for _, k := range RuleKinds() {
		m[string(k)] = k
	}
	return m
}()

var modifierKeywords = func() map[string]ModifierKind {
	m := make(map[string]ModifierKind, len(ModifierKinds()))
	for _, k := range ModifierKinds() {
		m[string(k)] = k
	}
	return m
}()

// LookupRule resolves a validate-tag keyword to its rule kind.
func LookupRule(keyword string) (RuleKind, bool) {
	k, ok := ruleKeywords[keyword]
	return k, ok
}

// LookupModifier resolves a modify-tag keyword to its modifier kind.
func LookupModifier(keyword string) (ModifierKind, bool) {
	k, ok := modifierKeywords[keyword]
	return k, ok
}
