package repositories

import (
	"database/sql"
	"time"

	"hardware-catalog/internal/database"
)

type QuoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `id, name, phone, product_id, quantity, location, language_code,
               status, created_at, updated_at`

func (r *QuoteRepository) queryQuotes(query string, args ...interface{}) ([]database.QuoteRequest, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []database.QuoteRequest
	for rows.Next() {
		var q database.QuoteRequest
		err := rows.Scan(&q.ID, &q.Name, &q.Phone, &q.ProductID, &q.Quantity, &q.Location,
			&q.LanguageCode, &q.Status, &q.CreatedAt, &q.UpdatedAt)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

func (r *QuoteRepository) Create(q *database.QuoteRequest) error {
	query := `
        INSERT INTO quote_requests (name, phone, product_id, quantity, location, language_code, status)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, q.Name, q.Phone, q.ProductID, q.Quantity, q.Location,
		q.LanguageCode, q.Status)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	q.ID = id
	return nil
}

// GetAll retrieves quote requests with pagination, newest first
func (r *QuoteRepository) GetAll(limit, offset int) ([]database.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests
        ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return r.queryQuotes(query, limit, offset)
}

// GetByID retrieves a quote request by ID
func (r *QuoteRepository) GetByID(id int64) (*database.QuoteRequest, error) {
	var q database.QuoteRequest
	err := r.db.QueryRow(`SELECT `+quoteColumns+` FROM quote_requests WHERE id = ?`, id).
		Scan(&q.ID, &q.Name, &q.Phone, &q.ProductID, &q.Quantity, &q.Location,
			&q.LanguageCode, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetByStatus retrieves quote requests in a given status with pagination
func (r *QuoteRepository) GetByStatus(status string, limit, offset int) ([]database.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests
        WHERE status = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return r.queryQuotes(query, status, limit, offset)
}

// GetRecent retrieves the ten most recent quote requests
func (r *QuoteRepository) GetRecent() ([]database.QuoteRequest, error) {
	return r.queryQuotes(`SELECT ` + quoteColumns + ` FROM quote_requests
        ORDER BY created_at DESC LIMIT 10`)
}

// Search retrieves quote requests matching a name or phone fragment
func (r *QuoteRepository) Search(term string, limit, offset int) ([]database.QuoteRequest, error) {
	like := "%" + term + "%"
	query := `SELECT ` + quoteColumns + ` FROM quote_requests
        WHERE name LIKE ? OR phone LIKE ?
        ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return r.queryQuotes(query, like, like, limit, offset)
}

// GetByDateRange retrieves quote requests created within [start, end]
func (r *QuoteRepository) GetByDateRange(start, end time.Time, limit, offset int) ([]database.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests
        WHERE created_at BETWEEN ? AND ?
        ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return r.queryQuotes(query, start, end, limit, offset)
}

// GetByProduct retrieves quote requests for a product
func (r *QuoteRepository) GetByProduct(productID int64) ([]database.QuoteRequest, error) {
	return r.queryQuotes(`SELECT `+quoteColumns+` FROM quote_requests
        WHERE product_id = ? ORDER BY created_at DESC`, productID)
}

// GetByPhone retrieves quote requests submitted from a phone number
func (r *QuoteRepository) GetByPhone(phone string) ([]database.QuoteRequest, error) {
	return r.queryQuotes(`SELECT `+quoteColumns+` FROM quote_requests
        WHERE phone = ? ORDER BY created_at DESC`, phone)
}

// GetByLanguage retrieves quote requests submitted in a language
func (r *QuoteRepository) GetByLanguage(languageCode string) ([]database.QuoteRequest, error) {
	return r.queryQuotes(`SELECT `+quoteColumns+` FROM quote_requests
        WHERE language_code = ? ORDER BY created_at DESC`, languageCode)
}

func (r *QuoteRepository) Update(q *database.QuoteRequest) (bool, error) {
	query := `
        UPDATE quote_requests
        SET name = ?, phone = ?, product_id = ?, quantity = ?, location = ?,
            language_code = ?, status = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	result, err := r.db.Exec(query, q.Name, q.Phone, q.ProductID, q.Quantity, q.Location,
		q.LanguageCode, q.Status, q.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// UpdateStatus sets the status of a quote request
func (r *QuoteRepository) UpdateStatus(id int64, status string) (bool, error) {
	result, err := r.db.Exec(`UPDATE quote_requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *QuoteRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM quote_requests WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Count counts all quote requests
func (r *QuoteRepository) Count() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM quote_requests`).Scan(&count)
	return count, err
}

// CountByStatus counts quote requests in a given status
func (r *QuoteRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM quote_requests WHERE status = ?`, status).Scan(&count)
	return count, err
}
