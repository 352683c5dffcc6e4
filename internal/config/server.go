package config

type ServerConfig struct {
	HTTP HTTPConfig
}

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}
