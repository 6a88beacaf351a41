package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	JWTSecret   string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	JWTIssuer   string        `mapstructure:"jwt_issuer" yaml:"jwt_issuer"`
	JWTAudience string        `mapstructure:"jwt_audience" yaml:"jwt_audience"`
	JWTTTL      time.Duration `mapstructure:"jwt_ttl" yaml:"jwt_ttl"`

	// AdminPassword is the password of the bootstrap account.
	AdminPassword string `mapstructure:"admin_password" yaml:"admin_password"`
	// SeedPath optionally points at a YAML file with initial channels,
	// messages and users.
	SeedPath string `mapstructure:"seed_path" yaml:"seed_path"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		JWTSecret:         "change-me",
		JWTIssuer:         "chatterbox",
		JWTAudience:       "chatterbox-clients",
		JWTTTL:            24 * time.Hour,
		AdminPassword:     "admin",
		SeedPath:          "",
	}
}
