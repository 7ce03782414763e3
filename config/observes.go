package config

import (
	"github.com/spf13/viper"
)

// Observes observability config struct
type Observes struct {
	Sentry *Sentry `json:"sentry" yaml:"sentry"`
}

// Sentry config struct
type Sentry struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	Environment string `json:"environment" yaml:"environment"`
	Release     string `json:"release" yaml:"release"`
}

// getObservesConfig get observes config
func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: &Sentry{
			Endpoint:    v.GetString("observes.sentry.endpoint"),
			Environment: valueOr(v, "observes.sentry.environment", v.GetString("run_mode"), v.GetString),
			Release:     v.GetString("observes.sentry.release"),
		},
	}
}
