// Package coords defines the finite coordinate-kind algebra for vectors.
//
// This package contains kind definitions and field-name classification
// only. All other internal packages import coords; coords imports nothing
// internal. This keeps the kind algebra the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - The kind sets are closed: 2 azimuthal x 3 longitudinal x 2 temporal.
//   - Flavor (generic vs momentum) is a naming distinction only; it never
//     changes which numeric kernel runs.
//   - Classification is deterministic: field aliases are scanned in a
//     fixed priority order and collisions are errors, never guesses.
package coords
