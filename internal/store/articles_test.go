package store

import (
	"errors"
	"testing"
)

func insertTestCatalog(t *testing.T, db *DB) []Article {
	t.Helper()
	catalog := []Article{
		{ID: "a-1", Title: "Flamenco Roots", Category: "Dance"},
		{ID: "a-2", Title: "Roman Aqueducts", Category: "Heritage"},
		{ID: "a-3", Title: "Mole Poblano", Category: "Food"},
	}
	for i := range catalog {
		if err := db.InsertArticle(&catalog[i]); err != nil {
			t.Fatalf("InsertArticle %s: %v", catalog[i].ID, err)
		}
	}
	return catalog
}

func TestListArticlesInsertionOrder(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	insertTestCatalog(t, db)

	articles, err := db.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("len = %d, want 3", len(articles))
	}
	want := []string{"a-1", "a-2", "a-3"}
	for i, id := range want {
		if articles[i].ID != id {
			t.Errorf("articles[%d].ID = %q, want %q", i, articles[i].ID, id)
		}
	}
}

func TestGetArticle(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	insertTestCatalog(t, db)

	a, err := db.GetArticle("a-2")
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if a.Title != "Roman Aqueducts" {
		t.Errorf("Title = %q, want Roman Aqueducts", a.Title)
	}

	_, err = db.GetArticle("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetArticle missing = %v, want ErrNotFound", err)
	}
}

func TestSearchArticles(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	insertTestCatalog(t, db)

	// Case-insensitive title match
	results, err := db.SearchArticles("aqueduct")
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a-2" {
		t.Errorf("search aqueduct = %v, want [a-2]", results)
	}

	// Category match
	results, err = db.SearchArticles("dance")
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a-1" {
		t.Errorf("search dance = %v, want [a-1]", results)
	}

	// No match
	results, err = db.SearchArticles("zeppelin")
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("search zeppelin returned %d results, want 0", len(results))
	}
}

func TestSeed(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	n, err := db.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != len(seedArticles) {
		t.Errorf("seeded %d, want %d", n, len(seedArticles))
	}

	// Second seed is a no-op
	n, err = db.Seed()
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if n != 0 {
		t.Errorf("second seed inserted %d, want 0", n)
	}

	count, err := db.CountArticles()
	if err != nil {
		t.Fatalf("CountArticles: %v", err)
	}
	if count != len(seedArticles) {
		t.Errorf("count = %d, want %d", count, len(seedArticles))
	}
}
