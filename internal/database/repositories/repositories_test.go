package repositories

import (
	"database/sql"
	"testing"

	"hardware-catalog/internal/database"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestAdminUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminUserRepository(db)

	user := &database.AdminUser{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fakehash",
		FullName:     "Alice",
		Role:         "ADMIN",
		IsActive:     true,
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := repo.GetByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.True(t, got.IsActive)
		assert.Nil(t, got.LastLogin)

		_, err = repo.GetByUsername("nobody")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Exists", func(t *testing.T) {
		taken, err := repo.ExistsByUsername("alice")
		require.NoError(t, err)
		assert.True(t, taken)

		inUse, err := repo.ExistsByEmail("alice@example.com")
		require.NoError(t, err)
		assert.True(t, inUse)

		free, err := repo.ExistsByUsername("bob")
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("UpdateLastLogin", func(t *testing.T) {
		require.NoError(t, repo.UpdateLastLogin(user.ID))
		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.LastLogin)
	})

	t.Run("SetActive", func(t *testing.T) {
		updated, err := repo.SetActive(user.ID, false)
		require.NoError(t, err)
		assert.True(t, updated)

		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		missing, err := repo.SetActive(999, true)
		require.NoError(t, err)
		assert.False(t, missing)
	})
}

func TestQuoteRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuoteRepository(db)

	quote := &database.QuoteRequest{
		Name:         "Customer",
		Phone:        "+1234567",
		Quantity:     "10 units",
		Location:     "Warehouse district",
		LanguageCode: "en",
		Status:       database.QuoteStatusPending,
	}
	require.NoError(t, repo.Create(quote))
	assert.NotZero(t, quote.ID)

	t.Run("CountByStatus", func(t *testing.T) {
		pending, err := repo.CountByStatus(database.QuoteStatusPending)
		require.NoError(t, err)
		assert.EqualValues(t, 1, pending)

		completed, err := repo.CountByStatus(database.QuoteStatusCompleted)
		require.NoError(t, err)
		assert.EqualValues(t, 0, completed)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		updated, err := repo.UpdateStatus(quote.ID, database.QuoteStatusContacted)
		require.NoError(t, err)
		assert.True(t, updated)

		got, err := repo.GetByID(quote.ID)
		require.NoError(t, err)
		assert.Equal(t, database.QuoteStatusContacted, got.Status)
	})

	t.Run("Search", func(t *testing.T) {
		byName, err := repo.Search("Custom", 10, 0)
		require.NoError(t, err)
		assert.Len(t, byName, 1)

		byPhone, err := repo.Search("234", 10, 0)
		require.NoError(t, err)
		assert.Len(t, byPhone, 1)

		none, err := repo.Search("does-not-match", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(quote.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		again, err := repo.Delete(quote.ID)
		require.NoError(t, err)
		assert.False(t, again)
	})
}

func TestConfigRepositorySave(t *testing.T) {
	db := newTestDB(t)
	repo := NewConfigRepository(db)

	created, err := repo.Save("store_phone", "+111111")
	require.NoError(t, err)
	assert.Equal(t, "+111111", created.Value)

	// Saving the same key again updates in place.
	updated, err := repo.Save("store_phone", "+222222")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "+222222", updated.Value)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTemplateRepositorySave(t *testing.T) {
	db := newTestDB(t)
	repo := NewTemplateRepository(db)

	_, err := repo.Save("quote_confirmation", "en", "Hello {name}, we received your request.")
	require.NoError(t, err)
	_, err = repo.Save("quote_confirmation", "ar", "مرحبا {name}")
	require.NoError(t, err)

	t.Run("UniquePerPair", func(t *testing.T) {
		replaced, err := repo.Save("quote_confirmation", "en", "Updated {name}.")
		require.NoError(t, err)
		assert.Equal(t, "Updated {name}.", replaced.Template)

		variants, err := repo.GetByType("quote_confirmation")
		require.NoError(t, err)
		assert.Len(t, variants, 2)
	})

	t.Run("DistinctTypes", func(t *testing.T) {
		types, err := repo.GetDistinctTypes()
		require.NoError(t, err)
		assert.Equal(t, []string{"quote_confirmation"}, types)
	})
}

func TestLanguageRepositoryDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewLanguageRepository(db)

	require.NoError(t, repo.Create(&database.SupportedLanguage{Code: "en", Name: "English", IsDefault: true, IsActive: true}))
	require.NoError(t, repo.Create(&database.SupportedLanguage{Code: "ar", Name: "Arabic", IsActive: true}))

	got, err := repo.GetDefault()
	require.NoError(t, err)
	assert.Equal(t, "en", got.Code)

	// Promoting a new default demotes the previous one.
	updated, err := repo.SetDefaultByCode("ar")
	require.NoError(t, err)
	assert.True(t, updated)

	got, err = repo.GetDefault()
	require.NoError(t, err)
	assert.Equal(t, "ar", got.Code)

	en, err := repo.GetByCode("en")
	require.NoError(t, err)
	assert.False(t, en.IsDefault)
}

func TestBannerRepositoryReorder(t *testing.T) {
	db := newTestDB(t)
	repo := NewBannerRepository(db)

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		b := &database.Banner{Title: title, ImageURL: "https://example.com/" + title + ".png", IsActive: true}
		require.NoError(t, repo.Create(b))
		ids = append(ids, b.ID)
	}

	// Reverse the display order.
	require.NoError(t, repo.BatchUpdateSortOrder([]int64{ids[2], ids[1], ids[0]}))

	banners, err := repo.GetActiveSorted()
	require.NoError(t, err)
	require.Len(t, banners, 3)
	assert.Equal(t, "third", banners[0].Title)
	assert.Equal(t, "second", banners[1].Title)
	assert.Equal(t, "first", banners[2].Title)
}
