package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/hoopstats/internal/domain/game"
)

func TestGameRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "yesterdays_games.txt")
	repo := NewGameRepository(path)

	if err := repo.Save(context.Background(), game.Slate{GameIDs: []string{"0022300500", " 0022300501 ", "0022300500"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(raw) != "0022300500\n0022300501\n" {
		t.Fatalf("unexpected file contents: %q", raw)
	}

	slate, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(slate.GameIDs) != 2 || slate.GameIDs[1] != "0022300501" {
		t.Fatalf("unexpected ids: %v", slate.GameIDs)
	}
}

func TestGameRepository_LoadTrimsAndSkipsBlankLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.txt")
	if err := os.WriteFile(path, []byte("  0022300500\r\n\n0022300501  \n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	slate, err := NewGameRepository(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(slate.GameIDs) != 2 || slate.GameIDs[0] != "0022300500" || slate.GameIDs[1] != "0022300501" {
		t.Fatalf("unexpected ids: %q", slate.GameIDs)
	}
}

func TestGameRepository_MissingFile(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository(filepath.Join(t.TempDir(), "missing.txt"))
	if _, err := repo.Load(context.Background()); !errors.Is(err, game.ErrSlateNotFound) {
		t.Fatalf("expected ErrSlateNotFound, got=%v", err)
	}
}

func TestGameRepository_SaveEmptySlateTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.txt")
	repo := NewGameRepository(path)
	if err := repo.Save(context.Background(), game.Slate{GameIDs: []string{"0022300500"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(context.Background(), game.Slate{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	slate, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slate.Empty() {
		t.Fatalf("expected empty slate, got=%v", slate.GameIDs)
	}
}
