// Package ledger holds the assignment lifecycle rules: validity evaluation,
// the active/disabled status machine, two-channel reception reconciliation and
// the fee bridge projection.
//
// Every function here works on an in-memory AssignmentRecord and never talks
// to storage. Callers load a record, apply one mutation and write it back.
package ledger
