// Package datepath derives date-partitioned subdirectory names from filename
// records, raw filenames, or calendar values.
package datepath
