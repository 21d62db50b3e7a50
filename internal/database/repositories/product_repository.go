package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, category_id, brand, image_url, technical_specs, usage_info,
               is_active, created_at, updated_at`

func (r *ProductRepository) queryProducts(query string, args ...interface{}) ([]database.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []database.Product
	for rows.Next() {
		var p database.Product
		err := rows.Scan(&p.ID, &p.CategoryID, &p.Brand, &p.ImageURL, &p.TechnicalSpecs,
			&p.UsageInfo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetActive retrieves active products with pagination
func (r *ProductRepository) GetActive(limit, offset int) ([]database.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE
        ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return r.queryProducts(query, limit, offset)
}

// GetByCategory retrieves active products for a category with pagination
func (r *ProductRepository) GetByCategory(categoryID int64, limit, offset int) ([]database.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
        WHERE category_id = ? AND is_active = TRUE
        ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return r.queryProducts(query, categoryID, limit, offset)
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id int64) (*database.Product, error) {
	var p database.Product
	err := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.CategoryID, &p.Brand, &p.ImageURL, &p.TechnicalSpecs,
			&p.UsageInfo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Search retrieves active products whose translated name matches the
// search term, optionally restricted to a category. categoryID <= 0
// means no category filter.
func (r *ProductRepository) Search(term string, categoryID int64, limit, offset int) ([]database.Product, error) {
	like := "%" + term + "%"
	if categoryID > 0 {
		query := `
            SELECT DISTINCT p.id, p.category_id, p.brand, p.image_url, p.technical_specs,
                   p.usage_info, p.is_active, p.created_at, p.updated_at
            FROM products p
            JOIN product_translations t ON t.product_id = p.id
            WHERE p.is_active = TRUE AND p.category_id = ? AND t.name LIKE ?
            ORDER BY p.created_at DESC LIMIT ? OFFSET ?`
		return r.queryProducts(query, categoryID, like, limit, offset)
	}

	query := `
        SELECT DISTINCT p.id, p.category_id, p.brand, p.image_url, p.technical_specs,
               p.usage_info, p.is_active, p.created_at, p.updated_at
        FROM products p
        JOIN product_translations t ON t.product_id = p.id
        WHERE p.is_active = TRUE AND t.name LIKE ?
        ORDER BY p.created_at DESC LIMIT ? OFFSET ?`
	return r.queryProducts(query, like, limit, offset)
}

// CountActive counts active products
func (r *ProductRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

// CountByCategory counts active products in a category
func (r *ProductRepository) CountByCategory(categoryID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products WHERE category_id = ? AND is_active = TRUE`, categoryID).Scan(&count)
	return count, err
}

func (r *ProductRepository) Create(p *database.Product) error {
	query := `
        INSERT INTO products (category_id, brand, image_url, technical_specs, usage_info, is_active)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, p.CategoryID, p.Brand, p.ImageURL, p.TechnicalSpecs, p.UsageInfo, p.IsActive)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

func (r *ProductRepository) Update(p *database.Product) (bool, error) {
	query := `
        UPDATE products
        SET category_id = ?, brand = ?, image_url = ?, technical_specs = ?,
            usage_info = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	result, err := r.db.Exec(query, p.CategoryID, p.Brand, p.ImageURL, p.TechnicalSpecs,
		p.UsageInfo, p.IsActive, p.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// SoftDelete marks a product inactive
func (r *ProductRepository) SoftDelete(id int64) (bool, error) {
	result, err := r.db.Exec(`UPDATE products SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// HardDelete removes a product and its translations
func (r *ProductRepository) HardDelete(id int64) (bool, error) {
	if _, err := r.db.Exec(`DELETE FROM product_translations WHERE product_id = ?`, id); err != nil {
		return false, err
	}
	result, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
