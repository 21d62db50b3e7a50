package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, image_url, sort_order, is_active, created_at, updated_at`

func (r *CategoryRepository) queryCategories(query string, args ...interface{}) ([]database.Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []database.Category
	for rows.Next() {
		var c database.Category
		err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetActive retrieves all active categories
func (r *CategoryRepository) GetActive() ([]database.Category, error) {
	return r.queryCategories(`SELECT ` + categoryColumns + ` FROM categories WHERE is_active = TRUE`)
}

// GetActiveOrdered retrieves all active categories sorted by sort order
func (r *CategoryRepository) GetActiveOrdered() ([]database.Category, error) {
	return r.queryCategories(`SELECT ` + categoryColumns + ` FROM categories WHERE is_active = TRUE ORDER BY sort_order ASC`)
}

// GetAll retrieves every category including inactive ones
func (r *CategoryRepository) GetAll() ([]database.Category, error) {
	return r.queryCategories(`SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order ASC`)
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id int64) (*database.Category, error) {
	var c database.Category
	err := r.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ImageURL, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(c *database.Category) error {
	query := `INSERT INTO categories (name, image_url, sort_order, is_active) VALUES (?, ?, ?, ?)`
	result, err := r.db.Exec(query, c.Name, c.ImageURL, c.SortOrder, c.IsActive)
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

func (r *CategoryRepository) Update(c *database.Category) (bool, error) {
	query := `
        UPDATE categories
        SET name = ?, image_url = ?, sort_order = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	result, err := r.db.Exec(query, c.Name, c.ImageURL, c.SortOrder, c.IsActive, c.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *CategoryRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
