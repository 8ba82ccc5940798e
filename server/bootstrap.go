package server

import (
	"fmt"

	"github.com/jrsteele09/go-employee-server/auth"
	"github.com/jrsteele09/go-employee-server/internal/config"
	"github.com/jrsteele09/go-employee-server/users"
	"github.com/rs/zerolog/log"
)

// NewCredentialVerifier picks the admin credential check. With ADMIN_PASSWORD_HASH set the
// admin is seeded into userRepo and checked with bcrypt, otherwise the plaintext
// ADMIN_PASSWORD is compared directly.
func NewCredentialVerifier(cfg config.SecurityConfig, userRepo users.UserRepo) (auth.Verifier, error) {
	username := cfg.GetAdminUsername()
	hash := cfg.GetAdminPasswordHash()

	if hash == "" {
		log.Info().Str("username", username).Msg("Bootstrap: using static admin credentials")
		return auth.NewStaticVerifier(users.Summary{ID: users.AdminUserID, Username: username}, cfg.GetAdminPassword()), nil
	}

	if err := users.ValidateHash(hash); err != nil {
		return nil, fmt.Errorf("[NewCredentialVerifier] invalid admin password hash: %w", err)
	}
	admin := &users.User{
		ID:           users.AdminUserID,
		Username:     username,
		PasswordHash: hash,
	}
	if err := userRepo.Upsert(admin); err != nil {
		return nil, fmt.Errorf("[NewCredentialVerifier] failed to seed admin user: %w", err)
	}
	log.Info().Str("username", username).Msg("Bootstrap: using hashed admin credentials")
	return auth.NewHashedVerifier(userRepo), nil
}
