package repositories

import (
	"database/sql"
	"strings"

	"hardware-catalog/internal/database"
)

type ConfigRepository struct {
	db *sql.DB
}

func NewConfigRepository(db *sql.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) queryConfigs(query string, args ...interface{}) ([]database.AppConfig, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []database.AppConfig
	for rows.Next() {
		var c database.AppConfig
		err := rows.Scan(&c.ID, &c.KeyName, &c.Value, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}

	return configs, rows.Err()
}

// GetAll retrieves all config entries ordered by key
func (r *ConfigRepository) GetAll() ([]database.AppConfig, error) {
	return r.queryConfigs(`SELECT id, key_name, value, updated_at FROM app_config ORDER BY key_name ASC`)
}

// GetByKey retrieves a single config entry
func (r *ConfigRepository) GetByKey(keyName string) (*database.AppConfig, error) {
	var c database.AppConfig
	err := r.db.QueryRow(`SELECT id, key_name, value, updated_at FROM app_config WHERE key_name = ?`, keyName).
		Scan(&c.ID, &c.KeyName, &c.Value, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByKeys retrieves the config entries for a set of keys
func (r *ConfigRepository) GetByKeys(keyNames []string) ([]database.AppConfig, error) {
	if len(keyNames) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(keyNames)), ", ")
	args := make([]interface{}, len(keyNames))
	for i, k := range keyNames {
		args[i] = k
	}

	query := `SELECT id, key_name, value, updated_at FROM app_config
        WHERE key_name IN (` + placeholders + `) ORDER BY key_name ASC`
	return r.queryConfigs(query, args...)
}

// ExistsByKey checks whether a config key exists
func (r *ConfigRepository) ExistsByKey(keyName string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM app_config WHERE key_name = ?`, keyName).Scan(&count)
	return count > 0, err
}

func (r *ConfigRepository) Create(c *database.AppConfig) error {
	result, err := r.db.Exec(`INSERT INTO app_config (key_name, value) VALUES (?, ?)`, c.KeyName, c.Value)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

// Save inserts the key or updates its value if it already exists
func (r *ConfigRepository) Save(keyName, value string) (*database.AppConfig, error) {
	exists, err := r.ExistsByKey(keyName)
	if err != nil {
		return nil, err
	}

	if exists {
		_, err = r.db.Exec(`UPDATE app_config SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key_name = ?`,
			value, keyName)
		if err != nil {
			return nil, err
		}
	} else {
		if _, err = r.db.Exec(`INSERT INTO app_config (key_name, value) VALUES (?, ?)`, keyName, value); err != nil {
			return nil, err
		}
	}

	return r.GetByKey(keyName)
}

// UpdateByID updates a config entry addressed by ID
func (r *ConfigRepository) UpdateByID(id int64, keyName, value string) (bool, error) {
	result, err := r.db.Exec(`UPDATE app_config SET key_name = ?, value = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		keyName, value, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *ConfigRepository) DeleteByID(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM app_config WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *ConfigRepository) DeleteByKey(keyName string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM app_config WHERE key_name = ?`, keyName)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
