package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type TemplateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = `id, type, language_code, template, updated_at`

func (r *TemplateRepository) queryTemplates(query string, args ...interface{}) ([]database.MessageTemplate, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []database.MessageTemplate
	for rows.Next() {
		var t database.MessageTemplate
		err := rows.Scan(&t.ID, &t.Type, &t.LanguageCode, &t.Template, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

// GetAll retrieves all templates ordered by type
func (r *TemplateRepository) GetAll() ([]database.MessageTemplate, error) {
	return r.queryTemplates(`SELECT ` + templateColumns + ` FROM message_templates ORDER BY type ASC`)
}

// GetByID retrieves a template by ID
func (r *TemplateRepository) GetByID(id int64) (*database.MessageTemplate, error) {
	var t database.MessageTemplate
	err := r.db.QueryRow(`SELECT `+templateColumns+` FROM message_templates WHERE id = ?`, id).
		Scan(&t.ID, &t.Type, &t.LanguageCode, &t.Template, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByTypeAndLanguage retrieves the template for a type/language pair
func (r *TemplateRepository) GetByTypeAndLanguage(templateType, languageCode string) (*database.MessageTemplate, error) {
	var t database.MessageTemplate
	err := r.db.QueryRow(`SELECT `+templateColumns+` FROM message_templates
        WHERE type = ? AND language_code = ?`, templateType, languageCode).
		Scan(&t.ID, &t.Type, &t.LanguageCode, &t.Template, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByType retrieves all language variants of a template type
func (r *TemplateRepository) GetByType(templateType string) ([]database.MessageTemplate, error) {
	return r.queryTemplates(`SELECT `+templateColumns+` FROM message_templates
        WHERE type = ? ORDER BY language_code ASC`, templateType)
}

// GetByLanguage retrieves all templates in a language
func (r *TemplateRepository) GetByLanguage(languageCode string) ([]database.MessageTemplate, error) {
	return r.queryTemplates(`SELECT `+templateColumns+` FROM message_templates
        WHERE language_code = ? ORDER BY type ASC`, languageCode)
}

// GetDistinctTypes lists every template type present
func (r *TemplateRepository) GetDistinctTypes() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT type FROM message_templates ORDER BY type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Exists checks whether a type/language pair already has a template
func (r *TemplateRepository) Exists(templateType, languageCode string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM message_templates
        WHERE type = ? AND language_code = ?`, templateType, languageCode).Scan(&count)
	return count > 0, err
}

func (r *TemplateRepository) Create(t *database.MessageTemplate) error {
	result, err := r.db.Exec(`INSERT INTO message_templates (type, language_code, template)
        VALUES (?, ?, ?)`, t.Type, t.LanguageCode, t.Template)
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

// Save inserts the template or replaces its content if the pair exists
func (r *TemplateRepository) Save(templateType, languageCode, content string) (*database.MessageTemplate, error) {
	exists, err := r.Exists(templateType, languageCode)
	if err != nil {
		return nil, err
	}

	if exists {
		_, err = r.db.Exec(`UPDATE message_templates SET template = ?, updated_at = CURRENT_TIMESTAMP
            WHERE type = ? AND language_code = ?`, content, templateType, languageCode)
		if err != nil {
			return nil, err
		}
	} else {
		if _, err = r.db.Exec(`INSERT INTO message_templates (type, language_code, template)
            VALUES (?, ?, ?)`, templateType, languageCode, content); err != nil {
			return nil, err
		}
	}

	return r.GetByTypeAndLanguage(templateType, languageCode)
}

// UpdateByID updates a template addressed by ID
func (r *TemplateRepository) UpdateByID(id int64, templateType, languageCode, content string) (bool, error) {
	result, err := r.db.Exec(`UPDATE message_templates
        SET type = ?, language_code = ?, template = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?`, templateType, languageCode, content, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *TemplateRepository) DeleteByID(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM message_templates WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *TemplateRepository) DeleteByTypeAndLanguage(templateType, languageCode string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM message_templates WHERE type = ? AND language_code = ?`,
		templateType, languageCode)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
