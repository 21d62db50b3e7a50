package auth

import (
	"database/sql"
	"testing"
	"time"

	"hardware-catalog/internal/database"
	"hardware-catalog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore is an in-memory CredentialStore for service tests.
type fakeStore struct {
	users  map[string]*database.AdminUser
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*database.AdminUser), nextID: 1}
}

func (s *fakeStore) GetByUsername(username string) (*database.AdminUser, error) {
	if u, ok := s.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *fakeStore) GetByEmail(email string) (*database.AdminUser, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeStore) GetByID(userID int64) (*database.AdminUser, error) {
	for _, u := range s.users {
		if u.ID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeStore) ExistsByUsername(username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func (s *fakeStore) ExistsByEmail(email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) Create(user *database.AdminUser) error {
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.Username] = &copied
	return nil
}

func (s *fakeStore) List() ([]database.AdminUser, error) {
	var out []database.AdminUser
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeStore) UpdateLastLogin(userID int64) error {
	for _, u := range s.users {
		if u.ID == userID {
			now := time.Now()
			u.LastLogin = &now
		}
	}
	return nil
}

func (s *fakeStore) UpdatePassword(userID int64, passwordHash string) error {
	for _, u := range s.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

func (s *fakeStore) UpdateProfile(userID int64, fullName, email string) error {
	for _, u := range s.users {
		if u.ID == userID {
			u.FullName = fullName
			u.Email = email
		}
	}
	return nil
}

func (s *fakeStore) SetActive(userID int64, active bool) (bool, error) {
	for _, u := range s.users {
		if u.ID == userID {
			u.IsActive = active
			return true, nil
		}
	}
	return false, nil
}

func newTestService(store *fakeStore) *Service {
	verifier := NewPasswordVerifier(bcrypt.MinCost)
	codec := NewTokenCodec("service-test-secret", time.Hour)
	return NewService(store, verifier, codec, ServiceOptions{
		DefaultRole:       "ADMIN",
		PasswordMinLength: 8,
	}, logger.NewTestLogger())
}

func seedUser(t *testing.T, store *fakeStore, svc *Service, username, password string, active bool) {
	t.Helper()
	hash, err := svc.verifier.Hash(password)
	require.NoError(t, err)
	require.NoError(t, store.Create(&database.AdminUser{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		FullName:     "Test User",
		Role:         "ADMIN",
		IsActive:     active,
	}))
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedUser(t, store, svc, "alice", "hunter2hunter2", true)

	session, err := svc.Login("alice", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Subject)
	assert.Equal(t, RoleAdmin, session.Role)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	// The issued token parses back to the same identity.
	claims, err := svc.Codec().Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)

	// Login records the audit column.
	stored := store.users["alice"]
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedUser(t, store, svc, "alice", "hunter2hunter2", true)
	seedUser(t, store, svc, "mallory", "hunter2hunter2", false)

	cases := []struct {
		name       string
		identifier string
		password   string
	}{
		{"UnknownAccount", "nobody", "hunter2hunter2"},
		{"WrongPassword", "alice", "wrong password"},
		{"InactiveAccount", "mallory", "hunter2hunter2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := svc.Login(tc.identifier, tc.password)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRegister(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Register("bob", "bob@example.com", "long enough pw", "Bob Builder")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "long enough pw", user.PasswordHash)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := svc.Register("bob", "other@example.com", "long enough pw", "")
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register("carol", "bob@example.com", "long enough pw", "")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("WeakPassword", func(t *testing.T) {
		_, err := svc.Register("dave", "dave@example.com", "short", "")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestChangePassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedUser(t, store, svc, "alice", "original pass", true)
	before := store.users["alice"].PasswordHash

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		err := svc.ChangePassword("alice", "not the password", "replacement pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, before, store.users["alice"].PasswordHash)
	})

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword("alice", "original pass", "replacement pass"))
		assert.NotEqual(t, before, store.users["alice"].PasswordHash)

		_, err := svc.Login("alice", "replacement pass")
		assert.NoError(t, err)
		_, err = svc.Login("alice", "original pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestResetPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedUser(t, store, svc, "alice", "original pass", true)

	require.NoError(t, svc.ResetPassword(store.users["alice"].ID, "admin chosen pw"))
	_, err := svc.Login("alice", "admin chosen pw")
	assert.NoError(t, err)

	err = svc.ResetPassword(999, "whatever works")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetActive(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedUser(t, store, svc, "alice", "hunter2hunter2", true)

	require.NoError(t, svc.SetActive(store.users["alice"].ID, false))
	_, err := svc.Login("alice", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.SetActive(store.users["alice"].ID, true))
	_, err = svc.Login("alice", "hunter2hunter2")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.SetActive(999, true), ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedUser(t, store, svc, "alice", "hunter2hunter2", true)
	seedUser(t, store, svc, "bob", "hunter2hunter2", true)

	t.Run("Success", func(t *testing.T) {
		user, err := svc.UpdateProfile("alice", "Alice A.", "alice.new@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice A.", user.FullName)
		assert.Equal(t, "alice.new@example.com", user.Email)
	})

	t.Run("EmailCollision", func(t *testing.T) {
		_, err := svc.UpdateProfile("alice", "Alice A.", "bob@example.com")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	require.NoError(t, svc.EnsureBootstrapAdmin("root", "bootstrap pass", ""))
	user := store.users["root"]
	require.NotNil(t, user)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.True(t, user.IsActive)

	// Idempotent: a second start must not duplicate or overwrite.
	hash := user.PasswordHash
	require.NoError(t, svc.EnsureBootstrapAdmin("root", "different pass", ""))
	assert.Equal(t, hash, store.users["root"].PasswordHash)

	// Unconfigured credentials are a no-op.
	require.NoError(t, svc.EnsureBootstrapAdmin("", "", ""))
}
