// Package config defines the data structures of a ledger snapshot file and
// includes functions for loading, normalizing and validating it.
package config

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/format"
	"github.com/iwvelando/fintrack/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// FINTRACK_PROJECTION_DAYS=30.
const EnvPrefix = "FINTRACK"

// Configuration holds a ledger snapshot and the settings used to analyze it.
type Configuration struct {
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Currency   string           `yaml:"currency,omitempty"`
	Projection ProjectionConfig `yaml:"projection,omitempty"`
	Expenses   []Expense        `yaml:"expenses,omitempty"`
	Budgets    []Budget         `yaml:"budgets,omitempty"`
	Goals      []Goal           `yaml:"goals,omitempty"`
	Allocation AllocationConfig `yaml:"allocation,omitempty"`
	Training   []TrainingItem   `yaml:"training,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// ProjectionConfig holds the expense projection horizon.
type ProjectionConfig struct {
	Days   int    `yaml:"days,omitempty"`
	Period string `yaml:"period,omitempty"` // daily, weekly, monthly
}

// Expense is a recorded expense as written in the snapshot.
type Expense struct {
	ID          string  `yaml:"id"`
	Amount      float64 `yaml:"amount"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description,omitempty"`
	Date        string  `yaml:"date"`
}

// Budget is a recurring spending ceiling as written in the snapshot.
type Budget struct {
	ID       string  `yaml:"id"`
	Category string  `yaml:"category"`
	Amount   float64 `yaml:"amount"`
	Period   string  `yaml:"period"`
}

// Goal is a savings target as written in the snapshot.
type Goal struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description,omitempty"`
	Category      string  `yaml:"category,omitempty"`
	TargetAmount  float64 `yaml:"targetAmount"`
	CurrentAmount float64 `yaml:"currentAmount"`
	Deadline      string  `yaml:"deadline,omitempty"`
}

// AllocationConfig is the input to the budget allocator.
type AllocationConfig struct {
	TotalBudget float64    `yaml:"totalBudget,omitempty"`
	Income      float64    `yaml:"income,omitempty"`
	Categories  []Category `yaml:"categories,omitempty"`
}

// Category is one prioritized allocation request.
type Category struct {
	Name           string  `yaml:"name"`
	RequiredAmount float64 `yaml:"requiredAmount"`
	Priority       int     `yaml:"priority"`
}

// TrainingItem is a labelled example for the text classifier.
type TrainingItem struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// ledger snapshot there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted ledger snapshot from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("currency", constants.DefaultCurrencyCode)
	v.SetDefault("projection.days", constants.DefaultProjectionDays)
	v.SetDefault("projection.period", "monthly")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&configuration, hook); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	configuration.Normalize()
	return &configuration, nil
}

// timeToDateHook turns unquoted YAML dates, which the parser may already have
// read as timestamps, back into record date strings.
func timeToDateHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to.Kind() != reflect.String {
			return data, nil
		}
		if t, ok := data.(time.Time); ok {
			return t.Format(constants.DateLayout), nil
		}
		return data, nil
	}
}

// Normalize applies defaults for unset settings and canonicalizes names.
func (c *Configuration) Normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}

	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = constants.DefaultCurrencyCode
	}

	if c.Projection.Days == 0 {
		c.Projection.Days = constants.DefaultProjectionDays
	}
	c.Projection.Period = strings.ToLower(strings.TrimSpace(c.Projection.Period))
	if c.Projection.Period == "" {
		c.Projection.Period = "monthly"
	}

	c.assignMissingIDs()
}

// ValidateConfiguration checks the snapshot for records the analytics will
// silently skip or misread and returns a warning for each.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		warnings = append(warnings, err.Error())
	}
	if c.Logging.Level != "" {
		if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if _, ok := model.ParsePeriod(c.Projection.Period); !ok {
		warnings = append(warnings, fmt.Sprintf("Projection period '%s' is not recognized, using monthly", c.Projection.Period))
	}
	if c.Projection.Days < 0 {
		warnings = append(warnings, fmt.Sprintf("Projection days is negative (%d), no expenses will be projected", c.Projection.Days))
	}
	if _, ok := format.LookupCurrency(c.Currency); !ok {
		warnings = append(warnings, fmt.Sprintf("Currency '%s' is not supported, amounts will use %s", c.Currency, constants.DefaultCurrencySymbol))
	}

	for _, e := range c.Expenses {
		warnings = append(warnings, validation.ValidateExpense(e.ID, e.Category, e.Date, e.Amount)...)
	}
	seen := make(map[string]string)
	for _, b := range c.Budgets {
		warnings = append(warnings, validation.ValidateBudget(b.ID, b.Category, b.Period, b.Amount)...)
		if first, ok := seen[b.Category]; ok {
			warnings = append(warnings, fmt.Sprintf("Budget '%s' repeats category '%s' of budget '%s', both count the same expenses", b.ID, b.Category, first))
			continue
		}
		seen[b.Category] = b.ID
	}
	for _, g := range c.Goals {
		warnings = append(warnings, validation.ValidateGoal(g.ID, g.Title, g.Deadline, g.TargetAmount)...)
	}
	for _, cat := range c.Allocation.Categories {
		warnings = append(warnings, validation.ValidateCategory(cat.Name, cat.RequiredAmount, cat.Priority)...)
	}

	return warnings
}
