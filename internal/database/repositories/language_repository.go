package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type LanguageRepository struct {
	db *sql.DB
}

func NewLanguageRepository(db *sql.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

const languageColumns = `id, code, name, native_name, is_default, is_active`

func (r *LanguageRepository) queryLanguages(query string, args ...interface{}) ([]database.SupportedLanguage, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []database.SupportedLanguage
	for rows.Next() {
		var l database.SupportedLanguage
		err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.IsActive)
		if err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}

	return languages, rows.Err()
}

// GetAll retrieves every language ordered by name
func (r *LanguageRepository) GetAll() ([]database.SupportedLanguage, error) {
	return r.queryLanguages(`SELECT ` + languageColumns + ` FROM supported_languages ORDER BY name ASC`)
}

// GetActive retrieves active languages ordered by name
func (r *LanguageRepository) GetActive() ([]database.SupportedLanguage, error) {
	return r.queryLanguages(`SELECT ` + languageColumns + ` FROM supported_languages
        WHERE is_active = TRUE ORDER BY name ASC`)
}

// GetByID retrieves a language by ID
func (r *LanguageRepository) GetByID(id int64) (*database.SupportedLanguage, error) {
	var l database.SupportedLanguage
	err := r.db.QueryRow(`SELECT `+languageColumns+` FROM supported_languages WHERE id = ?`, id).
		Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.IsActive)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetByCode retrieves a language by its code
func (r *LanguageRepository) GetByCode(code string) (*database.SupportedLanguage, error) {
	var l database.SupportedLanguage
	err := r.db.QueryRow(`SELECT `+languageColumns+` FROM supported_languages WHERE code = ?`, code).
		Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.IsActive)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetDefault retrieves the active default language
func (r *LanguageRepository) GetDefault() (*database.SupportedLanguage, error) {
	var l database.SupportedLanguage
	err := r.db.QueryRow(`SELECT ` + languageColumns + ` FROM supported_languages
        WHERE is_default = TRUE AND is_active = TRUE`).
		Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.IsActive)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ExistsByCode checks whether a language code is registered
func (r *LanguageRepository) ExistsByCode(code string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM supported_languages WHERE code = ?`, code).Scan(&count)
	return count > 0, err
}

func (r *LanguageRepository) Create(l *database.SupportedLanguage) error {
	result, err := r.db.Exec(`INSERT INTO supported_languages (code, name, native_name, is_default, is_active)
        VALUES (?, ?, ?, ?, ?)`, l.Code, l.Name, l.NativeName, l.IsDefault, l.IsActive)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	l.ID = id
	return nil
}

func (r *LanguageRepository) Update(l *database.SupportedLanguage) (bool, error) {
	query := `
        UPDATE supported_languages
        SET code = ?, name = ?, native_name = ?, is_default = ?, is_active = ?
        WHERE id = ?
    `
	result, err := r.db.Exec(query, l.Code, l.Name, l.NativeName, l.IsDefault, l.IsActive, l.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// ResetDefaults clears the default flag on every language. Only one
// language may be default at a time.
func (r *LanguageRepository) ResetDefaults() error {
	_, err := r.db.Exec(`UPDATE supported_languages SET is_default = FALSE`)
	return err
}

// SetDefaultByCode makes the given language the single default
func (r *LanguageRepository) SetDefaultByCode(code string) (bool, error) {
	if err := r.ResetDefaults(); err != nil {
		return false, err
	}
	result, err := r.db.Exec(`UPDATE supported_languages SET is_default = TRUE, is_active = TRUE WHERE code = ?`, code)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// SetActive flips the active flag on a language
func (r *LanguageRepository) SetActive(id int64, active bool) (bool, error) {
	result, err := r.db.Exec(`UPDATE supported_languages SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *LanguageRepository) DeleteByID(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM supported_languages WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *LanguageRepository) DeleteByCode(code string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM supported_languages WHERE code = ?`, code)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
