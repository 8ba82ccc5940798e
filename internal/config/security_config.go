package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

const (
	sessionSecretEnvVar   = "SESSION_SECRET"
	sessionLifetimeEnvVar = "SESSION_LIFETIME"
	cookieSecureEnvVar    = "COOKIE_SECURE"
	adminUsernameEnvVar   = "ADMIN_USERNAME"
	adminPasswordEnvVar   = "ADMIN_PASSWORD"
	adminHashEnvVar       = "ADMIN_PASSWORD_HASH"

	defaultSessionLifetime = 24 * time.Hour
	generatedSecretBytes   = 16
)

type SecurityConfig interface {
	GetSessionSecret() []byte
	GetSessionLifetime() time.Duration
	GetCookieSecure() bool
	GetAdminUsername() string
	GetAdminPassword() string
	GetAdminPasswordHash() string
}

// Security is resolved by loadSecurity and is immutable afterwards.
type Security struct {
	secret          []byte
	sessionLifetime time.Duration
	cookieSecure    bool
	adminUsername   string
	adminPassword   string
	adminHash       string
}

var _ SecurityConfig = Security{}

func loadSecurity() (Security, error) {
	s := Security{
		sessionLifetime: defaultSessionLifetime,
		adminUsername:   GetEnv(adminUsernameEnvVar, "admin"),
		adminPassword:   GetEnv(adminPasswordEnvVar, "admin123"),
		adminHash:       GetEnv(adminHashEnvVar, ""),
	}

	if v := GetEnv(sessionLifetimeEnvVar, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Security{}, fmt.Errorf("invalid %s %q: %w", sessionLifetimeEnvVar, v, err)
		}
		if d <= 0 {
			return Security{}, fmt.Errorf("invalid %s %q: must be positive", sessionLifetimeEnvVar, v)
		}
		s.sessionLifetime = d
	}

	if v := GetEnv(cookieSecureEnvVar, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Security{}, fmt.Errorf("invalid %s %q: %w", cookieSecureEnvVar, v, err)
		}
		s.cookieSecure = b
	}

	secret := GetEnv(sessionSecretEnvVar, "")
	if secret == "" {
		generated, err := generateSecret()
		if err != nil {
			return Security{}, err
		}
		secret = generated
	}
	s.secret = []byte(secret)

	return s, nil
}

func generateSecret() (string, error) {
	b := make([]byte, generatedSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GetSessionSecret returns a copy so callers cannot alter the process-wide key.
func (s Security) GetSessionSecret() []byte {
	return append([]byte(nil), s.secret...)
}

func (s Security) GetSessionLifetime() time.Duration {
	return s.sessionLifetime
}

// GetCookieSecure forces the Secure cookie flag even on plain HTTP (e.g. behind TLS termination).
func (s Security) GetCookieSecure() bool {
	return s.cookieSecure
}

func (s Security) GetAdminUsername() string {
	return s.adminUsername
}

func (s Security) GetAdminPassword() string {
	return s.adminPassword
}

// GetAdminPasswordHash returns a bcrypt hash; when set it takes precedence over GetAdminPassword.
func (s Security) GetAdminPasswordHash() string {
	return s.adminHash
}
