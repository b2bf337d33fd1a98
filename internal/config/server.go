package config

// GetListenAddr returns the address the HTTP server binds to
func GetListenAddr() string {
	return GetEnvOrDefault("CALLIOPE_LISTEN_ADDR", ":8080")
}

// GetWebDir returns the directory the static UI shell is served from
func GetWebDir() string {
	return GetEnvOrDefault("CALLIOPE_WEB_DIR", "web")
}
