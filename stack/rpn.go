package stack

import (
	"fmt"
	"strconv"
)

// EvalRPN evaluates a reverse Polish expression given as one token per
// element: integer literals and the operators "+", "-", "*", "/". Division
// truncates toward zero, matching Go's integer division. A valid expression
// leaves exactly one value on the stack; anything else is ErrBadExpression.
//
// O(n) time, O(n) memory.
func EvalRPN(tokens []string) (int, error) {
	var operands Stack
	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/":
			right, err := operands.Pop()
			if err != nil {
				return 0, fmt.Errorf("%w: operator %q lacks operands", ErrBadExpression, tok)
			}
			left, err := operands.Pop()
			if err != nil {
				return 0, fmt.Errorf("%w: operator %q lacks operands", ErrBadExpression, tok)
			}
			switch tok {
			case "+":
				operands.Push(left + right)
			case "-":
				operands.Push(left - right)
			case "*":
				operands.Push(left * right)
			default:
				if right == 0 {
					return 0, ErrDivideByZero
				}
				operands.Push(left / right)
			}
		default:
			v, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: unknown token %q", ErrBadExpression, tok)
			}
			operands.Push(v)
		}
	}
	if operands.Len() != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrBadExpression, operands.Len())
	}

	return operands.Pop()
}
