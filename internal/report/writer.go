package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	scanTextRowTemplateConstant       = "%s\n  Open: %d, Close: %d, Diff: %d (%s %d closing delimiter(s))\n"
	scanTextSummaryTemplateConstant   = "Total files with issues: %d\n"
	repairTextAppendTemplateConstant  = "Added %d closing delimiter(s) to: %s\n"
	repairTextTrimTemplateConstant    = "Removed %d closing delimiter(s) from: %s\n"
	repairTextSummaryTemplateConstant = "Total files changed: %d\n"
)

var scanCSVHeader = []string{"path", "open_count", "close_count", "difference", "status"}

var repairCSVHeader = []string{"path", "open_count", "close_count", "action", "delimiter_count"}

type scanReportDocument struct {
	Files []ScanRow `yaml:"files"`
	Total int       `yaml:"total"`
}

type repairReportDocument struct {
	Files []RepairRow `yaml:"files"`
	Total int         `yaml:"total"`
}

// WriteScanReport renders scan rows and a summary count in the requested format.
func WriteScanReport(writer io.Writer, format Format, rows []ScanRow) error {
	switch format {
	case FormatCSV:
		return writeCSV(writer, scanCSVHeader, len(rows), func(rowIndex int) []string {
			return rows[rowIndex].CSVRecord()
		})
	case FormatYAML:
		return writeYAML(writer, scanReportDocument{Files: rows, Total: len(rows)})
	default:
		for _, row := range rows {
			absoluteDifference := row.Difference
			if absoluteDifference < 0 {
				absoluteDifference = -absoluteDifference
			}
			if _, writeError := fmt.Fprintf(writer, scanTextRowTemplateConstant, row.Path, row.OpenCount, row.CloseCount, row.Difference, row.Status, absoluteDifference); writeError != nil {
				return writeError
			}
		}
		_, writeError := fmt.Fprintf(writer, scanTextSummaryTemplateConstant, len(rows))
		return writeError
	}
}

// WriteRepairReport renders repair rows and a summary count in the requested format.
func WriteRepairReport(writer io.Writer, format Format, rows []RepairRow) error {
	switch format {
	case FormatCSV:
		return writeCSV(writer, repairCSVHeader, len(rows), func(rowIndex int) []string {
			return rows[rowIndex].CSVRecord()
		})
	case FormatYAML:
		return writeYAML(writer, repairReportDocument{Files: rows, Total: len(rows)})
	default:
		for _, row := range rows {
			rowTemplate := repairTextAppendTemplateConstant
			if row.Action == RepairActionTrimmed {
				rowTemplate = repairTextTrimTemplateConstant
			}
			if _, writeError := fmt.Fprintf(writer, rowTemplate, row.DelimiterCount, row.Path); writeError != nil {
				return writeError
			}
		}
		_, writeError := fmt.Fprintf(writer, repairTextSummaryTemplateConstant, len(rows))
		return writeError
	}
}

func writeCSV(writer io.Writer, header []string, rowCount int, record func(int) []string) error {
	csvWriter := csv.NewWriter(writer)
	if writeError := csvWriter.Write(header); writeError != nil {
		return writeError
	}
	for rowIndex := 0; rowIndex < rowCount; rowIndex++ {
		if writeError := csvWriter.Write(record(rowIndex)); writeError != nil {
			return writeError
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func writeYAML(writer io.Writer, document any) error {
	yamlEncoder := yaml.NewEncoder(writer)
	if encodeError := yamlEncoder.Encode(document); encodeError != nil {
		return encodeError
	}
	return yamlEncoder.Close()
}
