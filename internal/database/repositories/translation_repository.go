package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type TranslationRepository struct {
	db *sql.DB
}

func NewTranslationRepository(db *sql.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

func (r *TranslationRepository) queryTranslations(query string, args ...interface{}) ([]database.ProductTranslation, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []database.ProductTranslation
	for rows.Next() {
		var t database.ProductTranslation
		err := rows.Scan(&t.ID, &t.ProductID, &t.LanguageCode, &t.Name, &t.Description)
		if err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}

	return translations, rows.Err()
}

// GetByProduct retrieves all translations for a product
func (r *TranslationRepository) GetByProduct(productID int64) ([]database.ProductTranslation, error) {
	query := `SELECT id, product_id, language_code, name, description
        FROM product_translations WHERE product_id = ? ORDER BY language_code ASC`
	return r.queryTranslations(query, productID)
}

// GetByLanguage retrieves all translations in a language
func (r *TranslationRepository) GetByLanguage(languageCode string) ([]database.ProductTranslation, error) {
	query := `SELECT id, product_id, language_code, name, description
        FROM product_translations WHERE language_code = ? ORDER BY product_id ASC`
	return r.queryTranslations(query, languageCode)
}

// Get retrieves the translation of a product in a language
func (r *TranslationRepository) Get(productID int64, languageCode string) (*database.ProductTranslation, error) {
	var t database.ProductTranslation
	err := r.db.QueryRow(`SELECT id, product_id, language_code, name, description
        FROM product_translations WHERE product_id = ? AND language_code = ?`,
		productID, languageCode).
		Scan(&t.ID, &t.ProductID, &t.LanguageCode, &t.Name, &t.Description)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Exists checks whether a product has a translation in a language
func (r *TranslationRepository) Exists(productID int64, languageCode string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM product_translations
        WHERE product_id = ? AND language_code = ?`, productID, languageCode).Scan(&count)
	return count > 0, err
}

func (r *TranslationRepository) Create(t *database.ProductTranslation) error {
	query := `INSERT INTO product_translations (product_id, language_code, name, description)
        VALUES (?, ?, ?, ?)`
	result, err := r.db.Exec(query, t.ProductID, t.LanguageCode, t.Name, t.Description)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	t.ID = id
	return nil
}

func (r *TranslationRepository) Update(productID int64, languageCode, name, description string) (bool, error) {
	query := `UPDATE product_translations SET name = ?, description = ?
        WHERE product_id = ? AND language_code = ?`
	result, err := r.db.Exec(query, name, description, productID, languageCode)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *TranslationRepository) Delete(productID int64, languageCode string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM product_translations
        WHERE product_id = ? AND language_code = ?`, productID, languageCode)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
