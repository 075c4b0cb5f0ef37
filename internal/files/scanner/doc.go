// Package scanner provides lazy file discovery over a directory tree.
//
// The scanner package is responsible for:
//   - Enumerating directory entries in the filesystem's native order
//   - Skipping hidden entries unless explicitly included
//   - Optional recursion into subdirectories and name-pattern filtering
//   - Producing paths on demand as a pull-based, restartable sequence
//
// The scanner is designed to be filesystem-agnostic through the use of the
// filesystem.FileSystemProvider interface, enabling both production use with
// the OS filesystem and testing with in-memory filesystems.
package scanner
