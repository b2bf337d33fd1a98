package config

// GetPresetsPath returns the path of the personality preset file
func GetPresetsPath() string {
	return GetEnvOrDefault("CALLIOPE_PRESETS_PATH", "config/presets.json")
}
