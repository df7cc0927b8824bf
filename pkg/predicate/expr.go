package predicate

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type exprPredicate[T any] struct {
	src  string
	prog *vm.Program
}

// Expr compiles an expr-lang expression into a predicate. The item under
// test is bound to the variable "item" and the expression must evaluate to
// a boolean:
//
//	predicate.Expr[int]("item > 3 && item % 2 == 0")
//	predicate.Expr[string](`item startsWith "Ron"`)
//
// An uncompilable expression is a configuration error and panics.
func Expr[T any](src string) Predicate[T] {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		panic(fmt.Errorf("%w: compiling expr %q: %v", ErrInvalidConfig, src, err))
	}
	return exprPredicate[T]{src: src, prog: prog}
}

func (e exprPredicate[T]) Test(item T) bool {
	out, err := expr.Run(e.prog, map[string]any{"item": item})
	if err != nil {
		// A runtime evaluation error (type mismatch, nil deref) means the
		// item does not satisfy the expression.
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func (e exprPredicate[T]) Description() string {
	return fmt.Sprintf("expr(%s)", e.src)
}
