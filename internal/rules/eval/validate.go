package eval

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

var allowedBuiltins = map[string]struct{}{
	"int":        {},
	"len":        {},
	"trimSuffix": {},
}

var blockedOperators = map[string]struct{}{
	"+":  {},
	"-":  {},
	"*":  {},
	"/":  {},
	"%":  {},
	"**": {},
	"^":  {},
}

// Validate rejects anything beyond comparisons over the field value: arithmetic,
// member access, unknown identifiers and calls other than a few conversion builtins.
func Validate(src string) error {
	tree, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("parse %q: %w", src, err)
	}

	v := &validator{}
	ast.Walk(&tree.Node, v)
	return v.err
}

type validator struct {
	err error
}

func (v *validator) Visit(node *ast.Node) {
	if v.err != nil {
		return
	}

	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		if n.Value != ValueVar {
			v.err = fmt.Errorf("unknown identifier %q (only %q is available)", n.Value, ValueVar)
		}
	case *ast.BuiltinNode:
		if _, ok := allowedBuiltins[n.Name]; !ok {
			v.err = fmt.Errorf("builtin %q is not allowed", n.Name)
		}
	case *ast.CallNode:
		v.err = fmt.Errorf("function calls are not allowed")
	case *ast.MemberNode:
		v.err = fmt.Errorf("member access is not allowed")
	case *ast.BinaryNode:
		if _, ok := blockedOperators[n.Operator]; ok {
			v.err = fmt.Errorf("arithmetic operator %q is not allowed", n.Operator)
		}
	case *ast.UnaryNode:
		if n.Operator == "-" || n.Operator == "+" {
			v.err = fmt.Errorf("arithmetic operator %q is not allowed", n.Operator)
		}
	}
}
