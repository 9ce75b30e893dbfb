// Package backend defines the storage-adapter contract between the
// dispatch core and the concrete vector storages.
//
// A backend family supplies three things: the elementwise math library
// the kernels run on (numeric.Lib), constructors for every
// (dimensionality, flavor) pair, and a wrapping hook for scalar/bool
// results. The core never touches storage directly; it sees vectors
// only through the Vector interface, as a signature plus elements in
// fixed accessor order.
//
// Operands of a single operation must share one family. The dispatcher
// rejects mixed-family calls before any numeric work starts; there is
// no implicit cross-backend coercion.
package backend
