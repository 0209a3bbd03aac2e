// Package scan implements the read-only delimiter imbalance report command.
//
// It exposes CommandBuilder for wiring the scan Cobra command and Service for
// driving the workflow programmatically.
package scan
