// Package schema provides the principal schematics for all other packages. It
// defines the per-file metadata record, the capability interfaces of the file
// map index and provides implementations for handling (Unix-based) operating
// system syscalls. The package serves as a foundational layer for the module
// resolution pipeline throughout the codebase.
package schema

// DependencyDelimiter joins dependency module specifiers into the single
// string stored on a [FileMetadata] record. The ASCII unit separator cannot
// occur in a path or a module specifier, so splitting on it is lossless.
const DependencyDelimiter = "\x1f"
