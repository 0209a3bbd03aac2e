// Package report renders scan and repair results in text, CSV, or YAML form.
package report
