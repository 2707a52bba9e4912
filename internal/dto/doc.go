// Package dto holds the request/response shapes exchanged at the procedure
// boundary and the converters between them and the stored entities.
//
// Every entity has three shapes:
//
//   - X: the read view returned by procedures
//   - CreateX: create input, all required fields, no id or timestamps
//   - UpdateX: update input, every field optional; nil means "leave unchanged"
//
// The shapes are exported to the frontend as TypeScript by internal/bindings,
// so field names and JSON tags are part of the client contract.
package dto
