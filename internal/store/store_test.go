package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/hangman/internal/hangman"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "hangman.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVTableCreated(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='kv'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "kv" {
		t.Errorf("table name = %q, want 'kv'", name)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("put again: %v", err)
	}

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("value = %q, want two", got)
	}

	var rows int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM kv").Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}
}

func TestScoreSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	if _, err := repo.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load before save = %v, want ErrNotFound", err)
	}

	want := hangman.Score{Wins: 4, Losses: 2}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("score = %+v, want %+v", got, want)
	}

	raw, err := s.Get(ctx, ScoreKey)
	if err != nil {
		t.Fatalf("get raw: %v", err)
	}
	if string(raw) != `{"wins":4,"losses":2}` {
		t.Errorf("stored record = %s", raw)
	}
}

func TestScoreLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{wins"},
		{"wrong types", `{"wins":"many","losses":1}`},
		{"negative", `{"wins":-1,"losses":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			ctx := context.Background()
			if err := s.Put(ctx, ScoreKey, []byte(tt.raw)); err != nil {
				t.Fatalf("put: %v", err)
			}
			_, err := s.ScoreRepo().Load(ctx)
			if err == nil {
				t.Fatal("expected decode error")
			}
			if errors.Is(err, ErrNotFound) {
				t.Errorf("malformed record reported as missing: %v", err)
			}
		})
	}
}

func TestScorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.ScoreRepo().Save(ctx, hangman.Score{Wins: 1, Losses: 7}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.ScoreRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Wins != 1 || got.Losses != 7 {
		t.Errorf("score = %+v, want {1 7}", got)
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "score.db")
	t.Setenv("HANGMAN_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HANGMAN_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "hangman", "hangman.db"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
