// Package trace implements the per-file delimiter depth diagnostic command.
//
// It renders the running delimiter depth over the tail of a single file so an
// operator can see where an imbalance was introduced before repairing it.
package trace
