package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// Consistency label constants, derived from the coefficient of variation.
const (
	ErraticValue  = "Erratic"  // CV above the erratic cutoff
	VolatileValue = "Volatile" // CV above the warning threshold
	NormalValue   = "Normal"   // Ordinary spread
	SteadyValue   = "Steady"   // Tight spread
)

// CV cutoffs for the consistency labels. The volatile cutoff matches the
// high-variability insight threshold so tables and insights agree.
const (
	erraticCV = 80.0
	steadyCV  = 20.0
)

// Color variables for console output.
var (
	ErraticColor  = color.New(color.FgRed, color.Bold)     // strong danger signal
	VolatileColor = color.New(color.FgYellow, color.Bold)  // matches warning insights
	NormalColor   = color.New(color.FgWhite)               // neutral
	SteadyColor   = color.New(color.FgGreen)               // healthy
	successColor  = color.New(color.FgGreen, color.Bold)   // success insights
	warningColor  = color.New(color.FgYellow, color.Bold)  // warning insights
	infoColor     = color.New(color.FgCyan)                // info insights
	dangerColor   = color.New(color.FgRed, color.Bold)     // danger insights
	upColor       = color.New(color.FgRed)                 // rising execution times are bad
	downColor     = color.New(color.FgGreen)               // falling execution times are good
	flatColor     = color.New(color.FgCyan)                // stable trend
)

// GetPlainConsistencyLabel returns a plain text label for an algorithm's
// run-to-run consistency based on its coefficient of variation. This is the
// core logic used for CSV, JSON and table printing.
func GetPlainConsistencyLabel(cv float64) string {
	switch {
	case cv >= erraticCV:
		return ErraticValue
	case cv > schema.HighVariabilityCV:
		return VolatileValue
	case cv > steadyCV:
		return NormalValue
	default:
		return SteadyValue
	}
}

// GetColorConsistencyLabel returns a colored consistency label for console
// output. It uses GetPlainConsistencyLabel to determine the string, and then
// applies the appropriate color.
func GetColorConsistencyLabel(cv float64) string {
	text := GetPlainConsistencyLabel(cv)
	switch text {
	case ErraticValue:
		return ErraticColor.Sprint(text)
	case VolatileValue:
		return VolatileColor.Sprint(text)
	case NormalValue:
		return NormalColor.Sprint(text)
	default: // "Steady"
		return SteadyColor.Sprint(text)
	}
}

// ColorInsightType returns the insight type string, colored when requested.
func ColorInsightType(t schema.InsightType, useColors bool) string {
	if !useColors {
		return string(t)
	}
	switch t {
	case schema.SuccessInsight:
		return successColor.Sprint(t)
	case schema.WarningInsight:
		return warningColor.Sprint(t)
	case schema.DangerInsight:
		return dangerColor.Sprint(t)
	default:
		return infoColor.Sprint(t)
	}
}

// ColorTrend returns the trend direction string, colored when requested.
// Rising execution times read as red since slower is worse.
func ColorTrend(d schema.TrendDirection, useColors bool) string {
	if !useColors {
		return string(d)
	}
	switch d {
	case schema.TrendIncreasing:
		return upColor.Sprint(d)
	case schema.TrendDecreasing:
		return downColor.Sprint(d)
	default:
		return flatColor.Sprint(d)
	}
}

// TruncateName shortens an algorithm name with a leading ellipsis so the
// distinguishing suffix stays visible in narrow tables.
func TruncateName(name string, maxLen int) string {
	if len(name) <= maxLen || maxLen <= 3 {
		return name
	}
	return "..." + name[len(name)-(maxLen-3):]
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
