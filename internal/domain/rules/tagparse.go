package rules

import (
	"fmt"
	"strings"
	"unicode"
)

// annotation is one parsed entry of an annotation tag:
// keyword or keyword(name=value, ...).
type annotation struct {
	Keyword string
	Args    []arg
}

// arg is one name=value pair inside an annotation's argument list.
type arg struct {
	Name   string
	Value  string
	Quoted bool
}

// Get returns the value of the named argument.
func (a annotation) Get(name string) (arg, bool) {
	for _, ar := range a.Args {
		if ar.Name == name {
			return ar, true
		}
	}
	return arg{}, false
}

// parseTag parses a full tag value into its ordered annotation list.
//
// Grammar:
//
//	list       = annotation { "," annotation } .
//	annotation = keyword [ "(" args ")" ] .
//	args       = arg { "," arg } .
//	arg        = name "=" value .
//	value      = bare-token | "'" quoted "'" .
//
// Quoted values escape ' and \ with a backslash. Whitespace around
// tokens is insignificant.
func parseTag(raw string) ([]annotation, error) {
	p := &tagParser{src: raw}

	var anns []annotation
	p.skipSpace()
	for !p.eof() {
		ann, err := p.annotation()
		if err != nil {
			return nil, err
		}
		anns = append(anns, ann)

		p.skipSpace()
		if p.eof() {
			break
		}
		if !p.eat(',') {
			return nil, p.errorf("expected ',' or end of tag, found %q", p.rest())
		}
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("trailing ',' in tag")
		}
	}

	if len(anns) == 0 {
		return nil, p.errorf("empty tag")
	}
	return anns, nil
}

type tagParser struct {
	src string
	pos int
}

func (p *tagParser) annotation() (annotation, error) {
	kw := p.ident()
	if kw == "" {
		return annotation{}, p.errorf("expected annotation keyword, found %q", p.rest())
	}
	ann := annotation{Keyword: kw}

	p.skipSpace()
	if !p.eat('(') {
		return ann, nil
	}

	p.skipSpace()
	if p.eat(')') {
		return annotation{}, p.errorf("annotation %s has empty argument list", kw)
	}

	for {
		a, err := p.arg(kw)
		if err != nil {
			return annotation{}, err
		}
		if _, dup := ann.Get(a.Name); dup {
			return annotation{}, p.errorf("annotation %s repeats argument %s", kw, a.Name)
		}
		ann.Args = append(ann.Args, a)

		p.skipSpace()
		if p.eat(')') {
			return ann, nil
		}
		if !p.eat(',') {
			return annotation{}, p.errorf("annotation %s: expected ',' or ')', found %q", kw, p.rest())
		}
		p.skipSpace()
	}
}

func (p *tagParser) arg(kw string) (arg, error) {
	name := p.ident()
	if name == "" {
		return arg{}, p.errorf("annotation %s: expected argument name, found %q", kw, p.rest())
	}
	p.skipSpace()
	if !p.eat('=') {
		return arg{}, p.errorf("annotation %s: argument %s is missing '='", kw, name)
	}
	p.skipSpace()

	if p.peek() == '\'' {
		v, err := p.quoted(kw, name)
		if err != nil {
			return arg{}, err
		}
		return arg{Name: name, Value: v, Quoted: true}, nil
	}

	v := p.bare()
	if v == "" {
		return arg{}, p.errorf("annotation %s: argument %s has no value", kw, name)
	}
	return arg{Name: name, Value: v}, nil
}

// quoted consumes a single-quoted value with backslash escapes.
func (p *tagParser) quoted(kw, name string) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", p.errorf("annotation %s: argument %s has dangling escape", kw, name)
			}
			b.WriteByte(p.src[p.pos+1])
			p.pos += 2
		case '\'':
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("annotation %s: argument %s has unterminated quote", kw, name)
}

// ident consumes a keyword or argument name: letters, digits, '_'.
func (p *tagParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

// bare consumes an unquoted value: anything up to ',' or ')' trimmed of
// surrounding space. Dots and signs stay, so numbers and qualified
// identifiers work without quoting.
func (p *tagParser) bare() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ',' || c == ')' {
			break
		}
		p.pos++
	}
	return strings.TrimSpace(p.src[start:p.pos])
}

func (p *tagParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *tagParser) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *tagParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *tagParser) eof() bool { return p.pos >= len(p.src) }

func (p *tagParser) rest() string {
	r := p.src[p.pos:]
	if len(r) > 20 {
		r = r[:20] + "…"
	}
	return r
}

func (p *tagParser) errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
