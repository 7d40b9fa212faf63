//go:build !colortransform_strict

package colortransform

// defaultStrict is false in regular builds: hot-path conversions skip
// precondition checks unless a caller asks for them.
const defaultStrict = false
