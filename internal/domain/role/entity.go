package role

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Role is a department-scoped job category. BreakMinutes is subtracted from
// gross shift duration when computing worked hours.
type Role struct {
	ID           string
	DepartmentID string
	Name         string
	Description  *string
	BreakMinutes int
	DayConfig    DayConfig // legacy role-level weekly day-enable map
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const DefaultBreakMinutes = 60

// DaySetting holds the per-weekday enable flag.
type DaySetting struct {
	Enabled bool `json:"enabled"`
}

// DayConfig maps weekday names ("Monday"..."Sunday") to their settings.
// Stored as JSONB.
type DayConfig map[string]DaySetting

// ConfigMode names the two interpretations of a day-enable map.
type ConfigMode string

const (
	// LegacyAllDaysEnabled: no config stored, every day runs. Rows created
	// before per-day configuration existed take this path.
	LegacyAllDaysEnabled ConfigMode = "legacy_all_days_enabled"
	// ExplicitDayConfig: config present, days are an allow-list. A weekday
	// missing from the map is disabled.
	ExplicitDayConfig ConfigMode = "explicit_day_config"
)

// Mode reports which interpretation applies to c.
func (c DayConfig) Mode() ConfigMode {
	if len(c) == 0 {
		return LegacyAllDaysEnabled
	}
	return ExplicitDayConfig
}

// RunsOn reports whether the weekday is enabled under c's mode.
func (c DayConfig) RunsOn(weekday time.Weekday) bool {
	if c.Mode() == LegacyAllDaysEnabled {
		return true
	}
	setting, ok := c[weekday.String()]
	return ok && setting.Enabled
}

// Value implements driver.Valuer for database storage.
func (c DayConfig) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval.
func (c *DayConfig) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DayConfig: invalid type")
	}

	return json.Unmarshal(bytes, c)
}
