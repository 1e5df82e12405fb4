// Package file stores game slates as plain text files.
package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/valyala/bytebufferpool"
)

// GameRepository writes one game ID per line with no header. The file
// carries no date, so Load returns a zero Slate.Date.
type GameRepository struct {
	path string
}

func NewGameRepository(path string) *GameRepository {
	return &GameRepository{path: path}
}

// Save replaces the file atomically through a temp file in the same directory.
func (r *GameRepository) Save(_ context.Context, slate game.Slate) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, id := range game.UniqueIDs(slate.GameIDs) {
		_, _ = buf.WriteString(id)
		_ = buf.WriteByte('\n')
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp game id file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write game id file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close game id file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod game id file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace game id file %s: %w", r.path, err)
	}
	return nil
}

// Load reads the IDs back, trimming whitespace and skipping blank lines.
func (r *GameRepository) Load(_ context.Context) (game.Slate, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.Slate{}, game.ErrSlateNotFound
	}
	if err != nil {
		return game.Slate{}, fmt.Errorf("open game id file: %w", err)
	}
	defer f.Close()

	ids := make([]string, 0, 16)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ids = append(ids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return game.Slate{}, fmt.Errorf("read game id file: %w", err)
	}

	return game.Slate{GameIDs: ids}, nil
}
