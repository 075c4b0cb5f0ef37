// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the read-only boundary for directory enumeration and
// existence checks, enabling testability through an in-memory implementation
// while maintaining compatibility with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Directory listing, stat, and path resolution
//   - FileInfo: File metadata, aliased from io/fs
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
