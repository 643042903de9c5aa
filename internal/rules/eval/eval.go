// internal/rules/eval/eval.go
package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ValueVar is the only variable a predicate can see: the field value under test.
const ValueVar = "value"

type Compiled struct {
	Source  string
	program *vm.Program
}

func Compile(src string) (*Compiled, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("predicate is empty")
	}

	if err := Validate(src); err != nil {
		return nil, err
	}

	program, err := expr.Compile(src, expr.Env(env("")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}

	return &Compiled{Source: src, program: program}, nil
}

func (c *Compiled) Eval(value string) (bool, error) {
	out, err := expr.Run(c.program, env(value))
	if err != nil {
		return false, err
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("predicate must evaluate to bool (got %T)", out)
	}

	return b, nil
}

func Eval(src, value string) (bool, error) {
	c, err := Compile(src)
	if err != nil {
		return false, err
	}
	return c.Eval(value)
}

func env(value string) map[string]any {
	return map[string]any{ValueVar: value}
}
