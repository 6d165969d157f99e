package domain

import (
	"fmt"
	"go/ast"
	"reflect"
	"strings"
)

// SchemaKind classifies the declaration the parser found behind a
// validgen directive.
type SchemaKind string

const (
	SchemaStruct    SchemaKind = "struct"
	SchemaInterface SchemaKind = "interface"
	SchemaAlias     SchemaKind = "alias"
	SchemaOther     SchemaKind = "other"
)

// Mode selects what gets generated for a schema and how strict the
// ownership check is. Validate-only consumers never write through the
// struct, so pointer fields are fine; modify consumers mutate fields in
// place and must own their data.
type Mode string

const (
	ModeValidate Mode = "validate"
	ModeModify   Mode = "modify"
)

// AllowReferences reports whether pointer fields are permitted under
// this mode.
func (m Mode) AllowReferences() bool { return m == ModeValidate }

// SourceSpan points at the originating source location of a declaration,
// field, or annotation.
type SourceSpan struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (s SourceSpan) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// SchemaDecl is the compile-time representation of one annotated struct
// declaration. It is read-only input to the analysis pipeline.
type SchemaDecl struct {
	Name   string     `json:"name"`
	Kind   SchemaKind `json:"kind"`
	Mode   Mode       `json:"mode"`
	Fields []FieldDef `json:"-"`
	Span   SourceSpan `json:"span"`
}

// FieldDef is one field of a schema. Type holds the raw syntax node so
// the type resolver can inspect its shape; Tag holds the raw struct tag
// with the annotation namespaces still unparsed.
type FieldDef struct {
	Name string            `json:"name"`
	Type ast.Expr          `json:"-"`
	Tag  reflect.StructTag `json:"-"`
	Span SourceSpan        `json:"span"`
}

// TypeSignature is the canonical whitespace-free textual form of a
// field's declared type. Ref is set when the declared type is a pointer.
type TypeSignature struct {
	Text string `json:"text"`
	Ref  bool   `json:"ref,omitempty"`
}

// CarriesReference reports whether the signature holds borrowed data
// anywhere, including pointers nested inside containers such as []*T.
func (t TypeSignature) CarriesReference() bool {
	return t.Ref || strings.ContainsAny(t.Text, "*&")
}

// owned strips the reference marker so classification helpers treat
// &string like string.
func (t TypeSignature) owned() string {
	return strings.TrimLeft(t.Text, "&*")
}

// IsString reports whether the field holds string-like data.
func (t TypeSignature) IsString() bool {
	return t.owned() == "string"
}

var numericTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
	"float32": true, "float64": true,
}

// IsNumeric reports whether the field holds a built-in numeric type.
func (t TypeSignature) IsNumeric() bool {
	return numericTypes[t.owned()]
}

// HasLength reports whether the field supports a length check:
// strings, slices, arrays, and maps.
func (t TypeSignature) HasLength() bool {
	s := t.owned()
	return s == "string" ||
		strings.HasPrefix(s, "[") ||
		strings.HasPrefix(s, "map[")
}

var builtinTypes = map[string]bool{
	"string": true, "bool": true, "error": true, "any": true,
	"complex64": true, "complex128": true,
}

// IsNamed reports whether the field's type is a named non-builtin type,
// i.e. something that can itself carry generated validation.
func (t TypeSignature) IsNamed() bool {
	s := t.owned()
	if s == "" || numericTypes[s] || builtinTypes[s] {
		return false
	}
	switch {
	case strings.HasPrefix(s, "["), strings.HasPrefix(s, "map["),
		strings.HasPrefix(s, "func("), strings.HasPrefix(s, "func()"),
		strings.HasPrefix(s, "chan"), strings.HasPrefix(s, "<-chan"),
		strings.HasPrefix(s, "interface{"), strings.HasPrefix(s, "struct{"):
		return false
	}
	return true
}

// Rule is one declarative check attached to a field. Params hold the
// kind-specific arguments; at run time the generated code additionally
// reports the offending value under params key "value".
type Rule struct {
	Kind    RuleKind       `json:"kind"`
	Code    string         `json:"code"`
	Message string         `json:"message,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
	Span    SourceSpan     `json:"span"`
}

// Modifier is one pre-processing transform attached to a field.
// Modifiers never fail, so they carry no code or message.
type Modifier struct {
	Kind   ModifierKind   `json:"kind"`
	Params map[string]any `json:"params,omitempty"`
	Span   SourceSpan     `json:"span"`
}

// FieldDescriptor is the pipeline's per-field output unit: the field,
// its resolved signature, and its ordered rule and modifier lists. It is
// the sole artifact handed to the code generator.
type FieldDescriptor struct {
	Field     FieldDef      `json:"field"`
	Signature TypeSignature `json:"signature"`
	Rules     []Rule        `json:"rules,omitempty"`
	Modifiers []Modifier    `json:"modifiers,omitempty"`

	// ErrorKey is the snake_case key generated code reports errors
	// under, derived from the field name.
	ErrorKey string `json:"error_key"`
}

// SchemaDescriptor bundles a schema with its resolved field descriptors.
type SchemaDescriptor struct {
	Schema SchemaDecl        `json:"schema"`
	Fields []FieldDescriptor `json:"fields"`
}

// AnalysisError is a fatal, location-tagged analysis failure. The first
// one raised aborts the current schema's analysis; no partial descriptor
// list is ever surfaced alongside one.
type AnalysisError struct {
	Span SourceSpan
	Msg  string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg)
}

// Errorf builds an AnalysisError at the given span.
func Errorf(span SourceSpan, format string, args ...any) *AnalysisError {
	return &AnalysisError{Span: span, Msg: fmt.Sprintf(format, args...)}
}
