// Package dispatch owns the coordinate-dispatch engine: the table that
// maps (operation, operand coordinate kinds) to a numeric kernel, the
// builder that synthesizes the full table from a handful of canonical
// kernels plus conversion chains, the call-time dispatcher, and the
// result reconstructor.
//
// The table is built exactly once, at package initialization, before
// any concurrent use is possible, and is never mutated afterwards.
// Every valid (operation, signature tuple) has an entry by
// construction; a lookup miss therefore indicates a builder coverage
// bug and panics with InternalDispatchError rather than surfacing as a
// user error. An exhaustive test walks the full product space to keep
// that invariant honest.
package dispatch
