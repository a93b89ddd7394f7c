package store

import (
	"fmt"
	"time"
)

// AddBookmark saves an article. Re-bookmarking an already saved article
// is a no-op. The article must exist in the catalog.
func (db *DB) AddBookmark(articleID string) error {
	if _, err := db.GetArticle(articleID); err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO bookmarks (article_id, created_at) VALUES (?, ?)
		ON CONFLICT(article_id) DO NOTHING
	`, articleID, now)
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark deletes a saved article. Returns ErrNotFound if the
// article was not bookmarked.
func (db *DB) RemoveBookmark(articleID string) error {
	result, err := db.Exec(`DELETE FROM bookmarks WHERE article_id = ?`, articleID)
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// IsBookmarked reports whether an article is saved.
func (db *DB) IsBookmarked(articleID string) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM bookmarks WHERE article_id = ?`, articleID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return count > 0, nil
}

// ListBookmarks returns saved articles, most recently saved first.
func (db *DB) ListBookmarks() ([]Article, error) {
	rows, err := db.Query(`
		SELECT a.id, a.title, a.category, a.region, a.era, a.summary, a.image_url, a.read_minutes, a.created_at
		FROM bookmarks b
		JOIN articles a ON a.id = b.article_id
		ORDER BY b.created_at DESC, a.rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}
