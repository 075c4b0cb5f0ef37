// Package collection implements checks and folds over sets of filename
// records: existence of every resolved path, per-detector coverage,
// completeness against the fixed detector set, and version extremes.
package collection
