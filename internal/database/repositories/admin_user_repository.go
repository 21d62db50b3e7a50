package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type AdminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

const adminUserColumns = `id, username, email, password_hash, full_name, role,
               is_active, last_login, created_at, updated_at`

func scanAdminUser(row *sql.Row) (*database.AdminUser, error) {
	var user database.AdminUser
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Role, &user.IsActive, &user.LastLogin,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) Create(user *database.AdminUser) error {
	query := `
        INSERT INTO admin_users (username, email, password_hash, full_name, role, is_active)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, user.Username, user.Email, user.PasswordHash,
		user.FullName, user.Role, user.IsActive)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by username, active or not. Callers
// decide what an inactive account means for them.
func (r *AdminUserRepository) GetByUsername(username string) (*database.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE username = ?`
	return scanAdminUser(r.db.QueryRow(query, username))
}

// GetByID retrieves a user by ID
func (r *AdminUserRepository) GetByID(userID int64) (*database.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE id = ?`
	return scanAdminUser(r.db.QueryRow(query, userID))
}

// GetByEmail retrieves a user by email
func (r *AdminUserRepository) GetByEmail(email string) (*database.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE email = ?`
	return scanAdminUser(r.db.QueryRow(query, email))
}

// ExistsByUsername checks whether a username is already taken
func (r *AdminUserRepository) ExistsByUsername(username string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM admin_users WHERE username = ?`, username).Scan(&count)
	return count > 0, err
}

// ExistsByEmail checks whether an email is already in use
func (r *AdminUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM admin_users WHERE email = ?`, email).Scan(&count)
	return count > 0, err
}

// List retrieves all admin users
func (r *AdminUserRepository) List() ([]database.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []database.AdminUser
	for rows.Next() {
		var user database.AdminUser
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.FullName, &user.Role, &user.IsActive, &user.LastLogin,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *AdminUserRepository) UpdateLastLogin(userID int64) error {
	query := `
        UPDATE admin_users
        SET last_login = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	_, err := r.db.Exec(query, userID)
	return err
}

// UpdatePassword updates the stored password hash
func (r *AdminUserRepository) UpdatePassword(userID int64, passwordHash string) error {
	query := `UPDATE admin_users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.Exec(query, passwordHash, userID)
	return err
}

// UpdateProfile updates the display fields of an account
func (r *AdminUserRepository) UpdateProfile(userID int64, fullName, email string) error {
	query := `UPDATE admin_users SET full_name = ?, email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.Exec(query, fullName, email, userID)
	return err
}

// SetActive flips the active flag on an account
func (r *AdminUserRepository) SetActive(userID int64, active bool) (bool, error) {
	query := `UPDATE admin_users SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	result, err := r.db.Exec(query, active, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
