package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Article is a single catalog entry. Catalog order is insertion order,
// which the feed ranker uses as its tie-break.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Region      string `json:"region,omitempty"`
	Era         string `json:"era,omitempty"`
	Summary     string `json:"summary,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	ReadMinutes int    `json:"read_minutes,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

const articleColumns = "id, title, category, region, era, summary, image_url, read_minutes, created_at"

// InsertArticle adds an article to the end of the catalog.
func (db *DB) InsertArticle(a *Article) error {
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().UnixMilli()
	}
	_, err := db.Exec(`
		INSERT INTO articles (id, title, category, region, era, summary, image_url, read_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.Title, a.Category, a.Region, a.Era, a.Summary, a.ImageURL, a.ReadMinutes, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetArticle returns an article by ID, or ErrNotFound.
func (db *DB) GetArticle(id string) (*Article, error) {
	var a Article
	err := db.QueryRow(`
		SELECT `+articleColumns+` FROM articles WHERE id = ?
	`, id).Scan(&a.ID, &a.Title, &a.Category, &a.Region, &a.Era, &a.Summary, &a.ImageURL, &a.ReadMinutes, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// ListArticles returns the full catalog in insertion order.
func (db *DB) ListArticles() ([]Article, error) {
	rows, err := db.Query(`SELECT ` + articleColumns + ` FROM articles ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

// SearchArticles returns catalog entries whose title, summary, or category
// contains q, case-insensitively, in insertion order.
func (db *DB) SearchArticles(q string) ([]Article, error) {
	pattern := "%" + q + "%"
	rows, err := db.Query(`
		SELECT `+articleColumns+` FROM articles
		WHERE title LIKE ? COLLATE NOCASE
		   OR summary LIKE ? COLLATE NOCASE
		   OR category LIKE ? COLLATE NOCASE
		ORDER BY rowid
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

// CountArticles returns the number of catalog entries.
func (db *DB) CountArticles() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

func scanArticles(rows *sql.Rows) ([]Article, error) {
	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Region, &a.Era, &a.Summary, &a.ImageURL, &a.ReadMinutes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
