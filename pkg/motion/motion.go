// Package motion resolves the reduced-motion accessibility preference.
package motion

import (
	"os"
	"strconv"
	"strings"
)

// EnvVars are consulted in order; the first one set decides.
var EnvVars = []string{"PIXELMUSE_REDUCED_MOTION", "REDUCE_MOTION"}

// Source names where the preference came from.
type Source string

const (
	SourceFlag     Source = "flag"
	SourceEnv      Source = "env"
	SourceSettings Source = "settings"
	SourceDefault  Source = "default"
)

// Preference is the resolved reduced-motion setting.
type Preference struct {
	Reduced bool
	Source  Source
}

// Resolve applies flag > environment > settings file > off. flag is nil when the
// command-line flag was not given.
func Resolve(flag *bool, settings bool) Preference {
	return resolve(flag, settings, os.LookupEnv)
}

func resolve(flag *bool, settings bool, lookup func(string) (string, bool)) Preference {
	if flag != nil {
		return Preference{Reduced: *flag, Source: SourceFlag}
	}
	for _, name := range EnvVars {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			return Preference{Reduced: truthy(v), Source: SourceEnv}
		}
	}
	if settings {
		return Preference{Reduced: true, Source: SourceSettings}
	}
	return Preference{Source: SourceDefault}
}

func truthy(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "yes", "on", "reduce":
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
