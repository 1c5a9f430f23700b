package schema

// Custom string types for type safety.
type (
	// Period represents a time bucketing granularity.
	Period string

	// TrendDirection classifies a fitted trend.
	TrendDirection string

	// InsightType represents the severity class of an insight.
	InsightType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for record storage.
	DatabaseBackend string
)

// All bucketing periods supported.
const (
	HourPeriod  Period = "hour"
	DayPeriod   Period = "day"
	WeekPeriod  Period = "week"
	MonthPeriod Period = "month"
)

// All trend directions.
const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// All insight types.
const (
	SuccessInsight InsightType = "success"
	WarningInsight InsightType = "warning"
	InfoInsight    InsightType = "info"
	DangerInsight  InsightType = "danger"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Heuristic thresholds for trend classification and insight generation.
// Named here rather than inlined in the derivation logic so that tests can
// exercise the exact boundary values.
const (
	// TrendIncreaseThreshold is the fitted percent change above which a
	// trend classifies as increasing.
	TrendIncreaseThreshold = 5.0

	// TrendDecreaseThreshold is the fitted percent change below which a
	// trend classifies as decreasing.
	TrendDecreaseThreshold = -5.0

	// HighVariabilityCV is the coefficient-of-variation percentage above
	// which an algorithm is flagged as inconsistent.
	HighVariabilityCV = 50.0

	// LowUsageSharePercent is the share of total operations below which an
	// algorithm counts as rarely used.
	LowUsageSharePercent = 5.0

	// LowUsageMinCount is the minimum record count before low usage fires;
	// a brand-new algorithm with one or two runs is not "low usage" yet.
	LowUsageMinCount = 2

	// DegradationChangePercent is the trend change above which an
	// increasing trend counts as performance degradation.
	DegradationChangePercent = 10.0

	// OptimizationFactor flags algorithms slower than this multiple of the
	// overall average time as optimization candidates.
	OptimizationFactor = 1.5
)

// TrendPeriods lists the periods trend analysis runs over, in output order.
var TrendPeriods = []Period{DayPeriod, WeekPeriod, MonthPeriod}

// ValidPeriods lists all valid bucketing periods.
var ValidPeriods = map[Period]struct{}{
	HourPeriod:  {},
	DayPeriod:   {},
	WeekPeriod:  {},
	MonthPeriod: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid storage backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
