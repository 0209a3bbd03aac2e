// Package discovery locates candidate text files on disk for the scan and
// repair commands, filtering directory trees by extension while skipping
// version-control and dependency directories.
package discovery
