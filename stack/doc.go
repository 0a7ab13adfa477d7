// Package stack provides LIFO structures for integers and the classic
// stack-driven sequence algorithms built on them.
//
// What
//
//   - Stack — a plain int stack (Push / Pop / Peek / Len).
//   - MinStack — a stack that also answers Min() in O(1) via a shadow stack
//     of running minima.
//   - ValidParens(s) — bracket matching over (), [], {}.
//   - GenerateParens(n) — every balanced sequence of n bracket pairs.
//   - EvalRPN(tokens) — evaluate a reverse Polish expression over
//     + - * / with truncating division.
//   - DailyTemperatures(values) — for each position, the distance to the
//     next strictly greater value (0 when none follows).
//   - LargestRectangle(heights) — largest rectangle under a histogram.
//   - CarFleet(target, positions, speeds) — fleets formed by cars that
//     catch up to slower leaders before the target line.
//
// Why
//
//	A stack captures "most recent unresolved item": open brackets awaiting
//	a close, operands awaiting an operator, bars awaiting a shorter bar.
//	Each algorithm here is that one idea with a different resolution rule.
//
// Complexity
//
//   - Stack / MinStack operations: O(1).
//   - ValidParens, EvalRPN, DailyTemperatures, LargestRectangle: O(n) time
//     (every element is pushed and popped at most once).
//   - GenerateParens: O(4ⁿ/√n) output-bound backtracking.
//   - CarFleet: O(n log n) for the position sort.
//
// Errors
//
//   - ErrEmptyStack     — Pop / Peek / Min on an empty stack.
//   - ErrBadExpression  — malformed RPN input (arity or token errors).
//   - ErrDivideByZero   — RPN division by zero.
//   - ErrLengthMismatch — CarFleet positions and speeds differ in length.
package stack
