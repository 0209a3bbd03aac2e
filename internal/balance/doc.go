// Package balance implements delimiter counting, depth tracing, and repair
// planning for text content.
//
// The package is purely computational: it never touches the filesystem, so the
// scan, trace, and repair services can share one implementation of the
// counting rules.
package balance
