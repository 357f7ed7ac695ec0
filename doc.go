// Package fieldkit declares structured-data fields as immutable descriptors
// that bundle value transforms, validation rules and documentation metadata,
// and validates dynamic input against tables of such descriptors.
//
// The root package holds only the shared error model and small helpers:
//
//   - Issue/Issues: stable error model (JSON Pointer path, code, rule, message, params)
//   - PathRef: chain-safe JSON Pointer builder
//   - Missing: sentinel separating "key absent" from "key present with null"
//   - Reporter: hand-off interface for aggregated issues
//
// Design policy:
//   - Transforms live under transform/, rules under rules/, descriptors under field/.
//   - schema/ assembles descriptors into tables and owns the Validator entry point.
//   - pagination/, report/, middleware/ and config/ build on top of schema/.
//   - Nothing registers itself globally; registries and catalogs are values.
//
// Typical usage:
//
//	s := schema.New("CreateUser").
//	    Field("email", field.Email(field.Options{})).
//	    Field("tags", field.String(field.Options{Repeated: true, MaxLength: field.Int(16)})).
//	    MustBuild()
//	out, err := schema.NewValidator().Validate(ctx, s, input)
//	if iss, ok := fieldkit.AsIssues(err); ok {
//	    _ = reporter.Report(ctx, iss)
//	}
package fieldkit
