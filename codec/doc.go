// Package codec decodes JSON and YAML documents into the dynamic values
// validated by schema.Validator, and encodes results back.
//
// JSON numbers are kept as json.Number so integer precision survives until a
// descriptor converts them. Duplicate object keys are rejected.
package codec
