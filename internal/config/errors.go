package config

import "fmt"

// ConfigError marks a fatal configuration problem found at startup.
// It is never recovered mid-session; callers are expected to abort.
type ConfigError struct {
	Source string // which config surface failed, e.g. "presets", "llm"
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error in %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("config error in %s: %s", e.Source, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
