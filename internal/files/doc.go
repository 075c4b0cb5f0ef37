// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Lazy file discovery under a root directory
//
// # Usage
//
//	import (
//	    "github.com/skyburst/gbmfn/internal/files/filesystem"
//	    "github.com/skyburst/gbmfn/internal/files/scanner"
//	)
//
//	s := scanner.NewScanner()
//	for path, err := range s.Scan("/data/triggers", scanner.Options{Recursive: true}) {
//	    ...
//	}
//
// The filesystem sub-package exists so that scanning and existence checks can
// run against an in-memory filesystem in tests.
package files
