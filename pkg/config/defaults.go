package config

import (
	"os"
	"strconv"
)

// Levels are the accepted values of the level filter.
var Levels = []string{"INFO", "WARNING", "ERROR"}

// Environment variable names.
const (
	EnvQuiet     = "LOGFILTER_QUIET"
	EnvSummary   = "LOGFILTER_SUMMARY"
	EnvLogFormat = "LOGFILTER_LOG_FORMAT"
)

// applyEnvironmentOverrides fills options left unset on the command line.
func (o *Options) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvQuiet); v != "" && !o.Quiet {
		if quiet, err := strconv.ParseBool(v); err == nil {
			o.Quiet = quiet
		}
	}
	if v := os.Getenv(EnvSummary); v != "" && o.Summary == "" {
		o.Summary = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" && o.LogFormat == "" {
		o.LogFormat = v
	}
}
