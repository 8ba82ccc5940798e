package config

import "fmt"

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetDatabasePath() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
}

// New resolves the configuration once at process start. The session secret is either
// loaded from SESSION_SECRET or generated here, and the returned Config never changes it.
func New() (Config, error) {
	security, err := loadSecurity()
	if err != nil {
		return nil, fmt.Errorf("[config New] %w", err)
	}
	return mainConfig{
		Cors:     loadCors(),
		Security: security,
	}, nil
}
