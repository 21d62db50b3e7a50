package auth

import (
	"database/sql"
	"errors"
	"time"

	"hardware-catalog/internal/database"
	"hardware-catalog/pkg/logger"
)

// CredentialStore is the account storage the service needs. It is
// satisfied by *repositories.AdminUserRepository.
type CredentialStore interface {
	GetByUsername(username string) (*database.AdminUser, error)
	GetByEmail(email string) (*database.AdminUser, error)
	GetByID(userID int64) (*database.AdminUser, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *database.AdminUser) error
	List() ([]database.AdminUser, error)
	UpdateLastLogin(userID int64) error
	UpdatePassword(userID int64, passwordHash string) error
	UpdateProfile(userID int64, fullName, email string) error
	SetActive(userID int64, active bool) (bool, error)
}

// Service implements account authentication: credential verification,
// token issuance, and account lifecycle operations.
type Service struct {
	store          CredentialStore
	verifier       *PasswordVerifier
	codec          *TokenCodec
	defaultRole    string
	minPasswordLen int
	log            *logger.Logger
}

// ServiceOptions carries the provisioning knobs for NewService.
type ServiceOptions struct {
	DefaultRole       string
	PasswordMinLength int
}

// NewService wires a Service from its collaborators.
func NewService(store CredentialStore, verifier *PasswordVerifier, codec *TokenCodec, opts ServiceOptions, log *logger.Logger) *Service {
	minLen := opts.PasswordMinLength
	if minLen <= 0 {
		minLen = 8
	}
	return &Service{
		store:          store,
		verifier:       verifier,
		codec:          codec,
		defaultRole:    NormalizeRole(opts.DefaultRole),
		minPasswordLen: minLen,
		log:            log.WithComponent("auth"),
	}
}

// Codec exposes the token codec so transport code can parse tokens.
func (s *Service) Codec() *TokenCodec {
	return s.codec
}

// Session is the outcome of a successful login.
type Session struct {
	Token       string
	ExpiresAt   time.Time
	Subject     string
	Role        string
	DisplayName string
}

// Login verifies credentials and issues a session token. Every failure
// mode returns ErrInvalidCredentials: an unknown account, a deactivated
// account and a wrong password are indistinguishable to the caller.
func (s *Service) Login(identifier, password string) (*Session, error) {
	user, err := s.store.GetByUsername(identifier)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error("credential lookup failed: %v", err)
		}
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if !s.verifier.Verify(password, user.PasswordHash) {
		s.log.Warning("failed login attempt for %s", identifier)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	token, expiry, err := s.codec.Issue(user.Username, NormalizeRole(user.Role), now)
	if err != nil {
		return nil, err
	}

	// Best effort: a login should not fail because the audit column
	// could not be written.
	if err := s.store.UpdateLastLogin(user.ID); err != nil {
		s.log.Warning("could not record last login for %s: %v", user.Username, err)
	}

	s.log.Info("user %s logged in", user.Username)

	return &Session{
		Token:       token,
		ExpiresAt:   expiry,
		Subject:     user.Username,
		Role:        NormalizeRole(user.Role),
		DisplayName: user.FullName,
	}, nil
}

// Register creates a new active account with the default role.
func (s *Service) Register(username, email, password, fullName string) (*database.AdminUser, error) {
	if len(password) < s.minPasswordLen {
		return nil, ErrWeakPassword
	}

	taken, err := s.store.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	inUse, err := s.store.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &database.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         s.defaultRole,
		IsActive:     true,
	}
	if err := s.store.Create(user); err != nil {
		return nil, err
	}

	s.log.Info("registered account %s", username)
	return user, nil
}

// ChangePassword rotates a user's password after re-verifying the
// current one.
func (s *Service) ChangePassword(username, currentPassword, newPassword string) error {
	if len(newPassword) < s.minPasswordLen {
		return ErrWeakPassword
	}

	user, err := s.store.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if !s.verifier.Verify(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := s.verifier.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.store.UpdatePassword(user.ID, hash); err != nil {
		return err
	}

	s.log.Info("password changed for %s", username)
	return nil
}

// ResetPassword sets a new password without knowing the old one. Only
// reachable through admin-protected routes.
func (s *Service) ResetPassword(userID int64, newPassword string) error {
	if len(newPassword) < s.minPasswordLen {
		return ErrWeakPassword
	}

	user, err := s.store.GetByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	hash, err := s.verifier.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.store.UpdatePassword(user.ID, hash); err != nil {
		return err
	}

	s.log.Info("password reset for %s", user.Username)
	return nil
}

// SetActive activates or deactivates an account. A deactivated account
// can no longer log in; tokens already issued stay valid until expiry.
func (s *Service) SetActive(userID int64, active bool) error {
	updated, err := s.store.SetActive(userID, active)
	if err != nil {
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	s.log.Info("account %d active=%t", userID, active)
	return nil
}

// GetProfile returns the account for a username.
func (s *Service) GetProfile(username string) (*database.AdminUser, error) {
	user, err := s.store.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the display fields of an account. A new email
// must not collide with another account.
func (s *Service) UpdateProfile(username, fullName, email string) (*database.AdminUser, error) {
	user, err := s.store.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if email != user.Email {
		inUse, err := s.store.ExistsByEmail(email)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, ErrDuplicateEmail
		}
	}

	if err := s.store.UpdateProfile(user.ID, fullName, email); err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Email = email
	return user, nil
}

// ListUsers returns all accounts.
func (s *Service) ListUsers() ([]database.AdminUser, error) {
	return s.store.List()
}

// GetUserByEmail returns the account holding an email address.
func (s *Service) GetUserByEmail(email string) (*database.AdminUser, error) {
	user, err := s.store.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// EnsureBootstrapAdmin creates the configured admin account on first
// start so a fresh deployment is reachable. It does nothing when the
// username already exists.
func (s *Service) EnsureBootstrapAdmin(username, password, email string) error {
	if username == "" || password == "" {
		return nil
	}

	exists, err := s.store.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return err
	}

	user := &database.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         RoleAdmin,
		IsActive:     true,
	}
	if err := s.store.Create(user); err != nil {
		return err
	}

	s.log.Info("bootstrap admin account %s created", username)
	return nil
}
