package report

import (
	"fmt"
	"strconv"
)

// Format enumerates supported report encodings.
type Format string

// Report formats accepted by the scan and repair commands.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

const unsupportedFormatErrorTemplateConstant = "unsupported report format: %s"

// ParseFormat validates a format string from flags or configuration.
func ParseFormat(candidate string) (Format, error) {
	switch Format(candidate) {
	case FormatText, FormatCSV, FormatYAML:
		return Format(candidate), nil
	default:
		return "", fmt.Errorf(unsupportedFormatErrorTemplateConstant, candidate)
	}
}

// ImbalanceStatus names the direction of a delimiter count mismatch.
type ImbalanceStatus string

// Imbalance directions reported by scan rows.
const (
	ImbalanceStatusMissing ImbalanceStatus = "MISSING"
	ImbalanceStatusExtra   ImbalanceStatus = "EXTRA"
)

// ScanRow models one imbalanced file in a scan report.
type ScanRow struct {
	Path       string          `yaml:"path"`
	OpenCount  int             `yaml:"open_count"`
	CloseCount int             `yaml:"close_count"`
	Difference int             `yaml:"difference"`
	Status     ImbalanceStatus `yaml:"status"`
}

// CSVRecord returns the row formatted for CSV encoding.
func (row ScanRow) CSVRecord() []string {
	return []string{
		row.Path,
		strconv.Itoa(row.OpenCount),
		strconv.Itoa(row.CloseCount),
		strconv.Itoa(row.Difference),
		string(row.Status),
	}
}

// RepairAction names how a repair run altered a file.
type RepairAction string

// Repair actions reported per rewritten file.
const (
	RepairActionAppended RepairAction = "appended"
	RepairActionTrimmed  RepairAction = "trimmed"
)

// RepairRow models one rewritten file in a repair report.
type RepairRow struct {
	Path           string       `yaml:"path"`
	OpenCount      int          `yaml:"open_count"`
	CloseCount     int          `yaml:"close_count"`
	Action         RepairAction `yaml:"action"`
	DelimiterCount int          `yaml:"delimiter_count"`
}

// CSVRecord returns the row formatted for CSV encoding.
func (row RepairRow) CSVRecord() []string {
	return []string{
		row.Path,
		strconv.Itoa(row.OpenCount),
		strconv.Itoa(row.CloseCount),
		string(row.Action),
		strconv.Itoa(row.DelimiterCount),
	}
}
