// Package filename implements the canonical data-product filename grammar.
//
// The filename package is responsible for:
//   - Matching basenames against the anchored canonical pattern
//   - Producing validated gbmfn.Record values from paths or explicit fields
//   - Resolving detector inputs (code, full name, or numeric index) during
//     construction
//   - Bulk-parsing path collections with a caller-selected unknown policy
//
// The grammar is the sole authority on which strings are valid filenames.
// Matching is total: a non-conforming string yields gbmfn.ErrNoMatch, never a
// partial record. Serialization (gbmfn.Record.Basename) is the exact inverse
// of parsing for any record the grammar produced.
package filename
