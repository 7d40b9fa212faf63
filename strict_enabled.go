//go:build colortransform_strict

package colortransform

// defaultStrict is true when built with -tags colortransform_strict.
const defaultStrict = true
