// Package transform provides the pure pre-validation value rewrites used by
// field descriptors: whitespace trimming, case folding, boolean/number/time
// coercion.
//
// Every Func is total: it never fails and never panics. A Func accepts either
// a scalar or a sequence ([]any, []string) and applies the scalar rewrite to
// each element, preserving order and length. Values a rewrite does not
// understand pass through unchanged so the rule layer can report a type
// mismatch.
package transform
