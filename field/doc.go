// Package field builds immutable field descriptors.
//
// A Descriptor bundles, for one structured-data field, the value transform
// applied before validation, the ordered validation rules, the
// optional/nullable/repeated policies and documentation metadata. Descriptors
// are built once (typically as package-level values) and reused by any number
// of concurrent validations.
//
// Validation of one value runs in a fixed order:
//
//	presence -> default -> repeated coercion -> transform -> rules
//
// Within a value, rule evaluation stops at the first type mismatch; other
// failures are collected. Elements of repeated fields are checked
// independently and reported per index.
package field
