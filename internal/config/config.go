package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/grandcafe/venueops/pkg/core/schedule"
)

const configFileName = "venueops_config.yaml"

// ShiftTemplate defines a recurring shift used to generate draft weeks.
// The rrule controls which days of the week the template lands on.
type ShiftTemplate struct {
	Name            string `yaml:"name" validate:"required"`
	RRule           string `yaml:"rrule" validate:"required"`
	StartTime       string `yaml:"startTime" validate:"required"`
	EndTime         string `yaml:"endTime" validate:"required"`
	SecondStartTime string `yaml:"secondStartTime,omitempty"`
	SecondEndTime   string `yaml:"secondEndTime,omitempty"`
	BreakMinutes    int    `yaml:"breakMinutes,omitempty" validate:"min=0"`
	Role            string `yaml:"role,omitempty"`
}

// LaborOverrides optionally tightens or relaxes the default labor policy.
// Absent fields fall back to the documented defaults.
type LaborOverrides struct {
	MaxWeeklyHours           *float64 `yaml:"maxWeeklyHours,omitempty" validate:"omitempty,gt=0"`
	MinRestBetweenShifts     *float64 `yaml:"minRestBetweenShifts,omitempty" validate:"omitempty,min=0"`
	MinDaysOffPerWeek        *int     `yaml:"minDaysOffPerWeek,omitempty" validate:"omitempty,min=0,max=7"`
	OvertimeMultiplier       *float64 `yaml:"overtimeMultiplier,omitempty" validate:"omitempty,gte=1"`
	OvertimeWarningThreshold *float64 `yaml:"overtimeWarningThreshold,omitempty" validate:"omitempty,gt=0"`
}

// Config represents the application configuration
type Config struct {
	VenueName      string          `yaml:"venueName" validate:"required"`
	DatabaseURL    string          `yaml:"databaseURL" validate:"required"`
	Labor          *LaborOverrides `yaml:"labor,omitempty"`
	ShiftTemplates []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from venueops_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the rrule syntax and the
// clock strings of every shift template
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, tmpl := range cfg.ShiftTemplates {
		if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}

		clocks := []string{tmpl.StartTime, tmpl.EndTime}
		if tmpl.SecondStartTime != "" || tmpl.SecondEndTime != "" {
			if tmpl.SecondStartTime == "" || tmpl.SecondEndTime == "" {
				return fmt.Errorf("shiftTemplates[%d] must set both second start and end times", i)
			}
			clocks = append(clocks, tmpl.SecondStartTime, tmpl.SecondEndTime)
		}
		for _, clock := range clocks {
			if err := validateClock(clock); err != nil {
				return fmt.Errorf("invalid time in shiftTemplates[%d]: %w", i, err)
			}
		}
	}

	return nil
}

// LaborConstraintOverrides converts the config's labor section into the
// schedule package's override value. Returns nil when no overrides are set.
func (c *Config) LaborConstraintOverrides() *schedule.Overrides {
	if c.Labor == nil {
		return nil
	}
	return &schedule.Overrides{
		MaxWeeklyHours:           c.Labor.MaxWeeklyHours,
		MinRestBetweenShifts:     c.Labor.MinRestBetweenShifts,
		MinDaysOffPerWeek:        c.Labor.MinDaysOffPerWeek,
		OvertimeMultiplier:       c.Labor.OvertimeMultiplier,
		OvertimeWarningThreshold: c.Labor.OvertimeWarningThreshold,
	}
}

func validateClock(clock string) error {
	if _, err := time.Parse("15:04", clock); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04:05", clock); err == nil {
		return nil
	}
	return fmt.Errorf("%q is not an HH:MM or HH:MM:SS time", clock)
}

// findConfigFile looks for the config file in the current directory, then the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(home, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current or home directory", configFileName)
}
