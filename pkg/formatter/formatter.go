package formatter

import (
	"github.com/fatih/color"

	"github.com/VinothPrinzz/socialgen-cli/pkg/output"
)

var (
	Bold    = color.New(color.Bold)
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Warning = color.New(color.FgYellow)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintHeading prints a bold heading
func PrintHeading(format string, args ...interface{}) {
	output.PrintHeading(format, args...)
}

// PrintTable prints data as a table; json output gets the raw rows
func PrintTable(headers []string, rows [][]string) {
	if output.GetOutputFormat() == output.FormatJSON {
		_ = output.PrintList("", rows, headers)
		return
	}
	output.PrintTable(headers, rows)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(data map[string]interface{}) {
	output.PrintRecord("", data)
}

// PrintObject prints an object based on output format
func PrintObject(data interface{}, name string) error {
	return output.Print(name, data)
}
