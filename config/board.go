package config

import (
	"github.com/spf13/viper"
)

const (
	defaultTaskHours = 8.0
	defaultMinHours  = 0.5
	defaultTimeFmt   = "yyyy-MM-dd HH:mm:ss"
	defaultExportFmt = "csv"
)

// Board board behaviour config struct
type Board struct {
	DefaultTaskHours float64 `json:"default_task_hours" yaml:"default_task_hours"`
	MinHours         float64 `json:"min_hours" yaml:"min_hours"`
	WeekStartsOn     int     `json:"week_starts_on" yaml:"week_starts_on"` // 0 Sunday .. 6 Saturday
	Seed             bool    `json:"seed" yaml:"seed"`
	CSV              *CSV    `json:"csv" yaml:"csv"`
	Export           *Export `json:"export" yaml:"export"`
}

// CSV interchange config struct
type CSV struct {
	QuoteAware bool   `json:"quote_aware" yaml:"quote_aware"`
	TimeLayout string `json:"time_layout" yaml:"time_layout"`
}

// Export file output config struct
type Export struct {
	Dir    string `json:"dir" yaml:"dir"`
	Format string `json:"format" yaml:"format"`
}

// DefaultBoard returns the board config used without a config file
func DefaultBoard() *Board {
	return getBoardConfig(viper.New())
}

// getBoardConfig get board config
func getBoardConfig(v *viper.Viper) *Board {
	return &Board{
		DefaultTaskHours: valueOr(v, "board.default_task_hours", defaultTaskHours, v.GetFloat64),
		MinHours:         valueOr(v, "board.min_hours", defaultMinHours, v.GetFloat64),
		WeekStartsOn:     valueOr(v, "board.week_starts_on", 1, v.GetInt),
		Seed:             valueOr(v, "board.seed", false, v.GetBool),
		CSV: &CSV{
			QuoteAware: valueOr(v, "board.csv.quote_aware", false, v.GetBool),
			TimeLayout: valueOr(v, "board.csv.time_layout", defaultTimeFmt, v.GetString),
		},
		Export: &Export{
			Dir:    valueOr(v, "board.export.dir", ".", v.GetString),
			Format: valueOr(v, "board.export.format", defaultExportFmt, v.GetString),
		},
	}
}

// valueOr returns the value at key, or def when the key is unset.
// An empty string also falls back to def, zero numbers and false do not.
func valueOr[T comparable](v *viper.Viper, key string, def T, get func(string) T) T {
	if !v.IsSet(key) {
		return def
	}
	val := get(key)
	if s, ok := any(val).(string); ok && s == "" {
		return def
	}
	return val
}
