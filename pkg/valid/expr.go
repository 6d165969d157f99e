package valid

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// MustCompile compiles an expr-rule expression. Generated code calls it
// from package-level vars, so a broken expression fails at process init
// rather than mid-validation; the analyzer has already compiled the same
// source once, so this only trips if generated output was hand-edited.
func MustCompile(src string) *vm.Program {
	p, err := expr.Compile(src)
	if err != nil {
		panic("valid: expression does not compile: " + err.Error())
	}
	return p
}

// EvalBool runs a compiled expression against the field environment.
// Anything other than a clean boolean true — an eval error or a
// non-boolean result — counts as a failed check.
func EvalBool(p *vm.Program, env Params) bool {
	out, err := expr.Run(p, env)
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}
