// Package mython implements the Mython execution engine: a lexer, a
// recursive-descent/precedence-climbing parser, and a tree-walking
// evaluator for a reduced, indentation-structured, dynamically typed
// scripting language. The supported constructs are:
//   - Assignment, including chained field assignment (a.b.c = v).
//   - print, return, if/else, class/def with single inheritance.
//   - Arithmetic (+, -, *, /), comparisons (<, >, ==, !=, <=, >=), and
//     the logical operators and/or/not.
//   - Classes with ordered methods, a parent class, and the special
//     methods __str__, __eq__, __lt__, __add__.
//
// There is no module system, no closures over free variables, no
// floating-point type, and no collection literals. Comments beginning
// with # run to end of line. The engine enforces a configurable step
// quota and call-depth cap to turn runaway scripts into a reported
// RuntimeError instead of a host process crash.
package mython
