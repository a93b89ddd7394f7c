package store

import (
	"errors"
	"testing"
)

func TestBookmarkLifecycle(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	insertTestCatalog(t, db)

	if err := db.AddBookmark("a-1"); err != nil {
		t.Fatalf("AddBookmark: %v", err)
	}

	saved, err := db.IsBookmarked("a-1")
	if err != nil {
		t.Fatalf("IsBookmarked: %v", err)
	}
	if !saved {
		t.Error("expected a-1 bookmarked")
	}

	// Re-bookmarking is a no-op
	if err := db.AddBookmark("a-1"); err != nil {
		t.Fatalf("duplicate AddBookmark: %v", err)
	}

	bookmarks, err := db.ListBookmarks()
	if err != nil {
		t.Fatalf("ListBookmarks: %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].ID != "a-1" {
		t.Errorf("bookmarks = %v, want [a-1]", bookmarks)
	}

	if err := db.RemoveBookmark("a-1"); err != nil {
		t.Fatalf("RemoveBookmark: %v", err)
	}
	saved, _ = db.IsBookmarked("a-1")
	if saved {
		t.Error("expected a-1 no longer bookmarked")
	}
}

func TestBookmarkNotFound(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	insertTestCatalog(t, db)

	// Bookmarking an unknown article fails
	if err := db.AddBookmark("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddBookmark unknown article = %v, want ErrNotFound", err)
	}

	// Removing a bookmark that was never set fails
	if err := db.RemoveBookmark("a-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveBookmark unset = %v, want ErrNotFound", err)
	}
}
