package repositories

import (
	"database/sql"
	"hardware-catalog/internal/database"
)

type BannerRepository struct {
	db *sql.DB
}

func NewBannerRepository(db *sql.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

const bannerColumns = `id, title, image_url, link_url, sort_order, is_active, created_at, updated_at`

func (r *BannerRepository) queryBanners(query string, args ...interface{}) ([]database.Banner, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []database.Banner
	for rows.Next() {
		var b database.Banner
		err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.SortOrder,
			&b.IsActive, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}

	return banners, rows.Err()
}

// GetActiveSorted retrieves active banners ordered by sort order
func (r *BannerRepository) GetActiveSorted() ([]database.Banner, error) {
	return r.queryBanners(`SELECT ` + bannerColumns + ` FROM banners
        WHERE is_active = TRUE ORDER BY sort_order ASC`)
}

// GetAll retrieves every banner ordered by sort order
func (r *BannerRepository) GetAll() ([]database.Banner, error) {
	return r.queryBanners(`SELECT ` + bannerColumns + ` FROM banners ORDER BY sort_order ASC`)
}

// GetByID retrieves a banner by ID
func (r *BannerRepository) GetByID(id int64) (*database.Banner, error) {
	var b database.Banner
	err := r.db.QueryRow(`SELECT `+bannerColumns+` FROM banners WHERE id = ?`, id).
		Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.SortOrder,
			&b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerRepository) Create(b *database.Banner) error {
	query := `INSERT INTO banners (title, image_url, link_url, sort_order, is_active)
        VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.Exec(query, b.Title, b.ImageURL, b.LinkURL, b.SortOrder, b.IsActive)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	b.ID = id
	return nil
}

func (r *BannerRepository) Update(b *database.Banner) (bool, error) {
	query := `
        UPDATE banners
        SET title = ?, image_url = ?, link_url = ?, sort_order = ?, is_active = ?,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	result, err := r.db.Exec(query, b.Title, b.ImageURL, b.LinkURL, b.SortOrder, b.IsActive, b.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// SoftDelete marks a banner inactive
func (r *BannerRepository) SoftDelete(id int64) (bool, error) {
	result, err := r.db.Exec(`UPDATE banners SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// HardDelete removes a banner permanently
func (r *BannerRepository) HardDelete(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM banners WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// UpdateSortOrder sets the sort order of one banner
func (r *BannerRepository) UpdateSortOrder(id int64, sortOrder int) (bool, error) {
	result, err := r.db.Exec(`UPDATE banners SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		sortOrder, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// BatchUpdateSortOrder re-numbers banners in the order the IDs are given
func (r *BannerRepository) BatchUpdateSortOrder(ids []int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	for i, id := range ids {
		if _, err := tx.Exec(`UPDATE banners SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			i, id); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
