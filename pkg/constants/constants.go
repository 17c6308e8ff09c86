// Package constants provides shared constants for the fintrack application.
package constants

// DateLayout is the ISO calendar-date format used by expense records and
// projected expenses.
const DateLayout = "2006-01-02"

// Period buckets
const (
	// MonthKeyLayout is the bucket key layout for monthly budgets
	MonthKeyLayout = "2006-01"

	// MonthLabelLayout is the human label layout for monthly buckets
	MonthLabelLayout = "January 2006"

	// DayLabelLayout is the human label layout for daily buckets
	DayLabelLayout = "Jan 02, 2006"

	// WeekKeyPrefix prefixes the week offset in weekly bucket keys
	WeekKeyPrefix = "week-"

	// DaysPerWeek is the number of days grouped into a weekly bucket
	DaysPerWeek = 7
)

// Projection defaults
const (
	// DefaultProjectionDays is the default projection horizon (about 3 months)
	DefaultProjectionDays = 90

	// DefaultDailyFrequency is the fallback cadence in days for daily projections
	DefaultDailyFrequency = 1

	// DefaultWeeklyFrequency is the fallback cadence in days for weekly projections
	DefaultWeeklyFrequency = 7

	// DefaultMonthlyFrequency is the fallback cadence in days for monthly projections
	DefaultMonthlyFrequency = 30

	// ProjectionIDPrefix prefixes synthetic projected expense IDs
	ProjectionIDPrefix = "projection"

	// ProjectedDescriptionPrefix prefixes synthetic projected expense descriptions
	ProjectedDescriptionPrefix = "Projected "
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyPlaces is the number of decimal places displayed for currency
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxPercentage is the upper clamp for displayed percentages
	MaxPercentage = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Allocation recommendations
const (
	// EssentialCategoryCount is the number of leading allocations treated as essential
	EssentialCategoryCount = 3

	// SavingsKeyword identifies savings allocations (case-insensitive substring)
	SavingsKeyword = "saving"

	// MinimumSavingsPercent is the recommended savings allocation floor
	MinimumSavingsPercent = 20.0
)

// Currency defaults
const (
	// DefaultCurrencyCode is the default ISO currency code
	DefaultCurrencyCode = "PHP"

	// DefaultCurrencySymbol is the symbol for the default currency
	DefaultCurrencySymbol = "₱"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default ledger snapshot file name
	DefaultConfigFile = "ledger.yaml"

	// ExampleConfigFile is the example ledger snapshot file name
	ExampleConfigFile = "ledger.yaml.example"
)
