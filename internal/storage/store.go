// Package storage persists best scores as plaintext integer files.
// Each mode gets one file, <dir>/<mode>.highscore, holding a single decimal integer.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// fileSuffix is appended to the mode ID to build the score file name.
const fileSuffix = ".highscore"

// Store manages the directory holding high score files.
type Store struct {
	dir string
}

// Open prepares a score directory at the given path.
// It expands a leading ~ and creates the directory if needed.
func Open(dir string) (*Store, error) {
	// Expand ~ to home directory
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if dir == "" {
		return nil, errors.New("storage: empty score directory")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the score files.
func (s *Store) Dir() string {
	return s.dir
}

// path returns the score file for a mode.
func (s *Store) path(gameID string) string {
	return filepath.Join(s.dir, gameID+fileSuffix)
}

// HighScore returns the best score recorded for the given mode.
// Returns 0 if nothing has been recorded yet.
func (s *Store) HighScore(gameID string) (int, error) {
	data, err := os.ReadFile(s.path(gameID))
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file %s: %w", s.path(gameID), err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: corrupt high score file %s: negative score %d", s.path(gameID), score)
	}
	return score, nil
}

// SaveScore records a finished game's score.
// The file is only rewritten when the score beats the stored best.
// Returns true if the score is a new best.
func (s *Store) SaveScore(gameID string, score int) (bool, error) {
	if score < 0 {
		return false, fmt.Errorf("storage: negative score %d", score)
	}

	best, err := s.HighScore(gameID)
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}

	if err := s.write(gameID, score); err != nil {
		return false, err
	}
	return true, nil
}

// write replaces the score file through a temp file and rename.
func (s *Store) write(gameID string, score int) error {
	tmp, err := os.CreateTemp(s.dir, gameID+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := os.Rename(tmpPath, s.path(gameID)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// ClearScore deletes the recorded best for the given mode.
func (s *Store) ClearScore(gameID string) error {
	err := os.Remove(s.path(gameID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear score: %w", err)
	}
	return nil
}

// Close releases the store. Scores are written eagerly, so there is nothing
// to flush.
func (s *Store) Close() error {
	return nil
}
