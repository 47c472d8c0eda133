// Package record persists the high score and best level between runs.
package record

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

const (
	section      = "record"
	keyHighScore = "highScore"
	keyBestLevel = "bestLevel"
)

// Record is the persisted best result
type Record struct {
	HighScore float64
	BestLevel int
}

// Default is the record used when nothing usable is stored
func Default() Record {
	return Record{HighScore: 0, BestLevel: 1}
}

// Improves reports whether a run result beats r in either field
func (r Record) Improves(score float64, level int) bool {
	return score > r.HighScore || level > r.BestLevel
}

// Merge returns the field-wise maximum of r and a run result
func (r Record) Merge(score float64, level int) Record {
	return Record{
		HighScore: math.Max(r.HighScore, score),
		BestLevel: max(r.BestLevel, level),
	}
}

// Store reads and writes a Record in an ini file
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored record; it never fails on content
// A missing file, missing keys or unparseable values fall back to the defaults field by field
func (s *Store) Load() Record {
	rec := Default()
	if s.path == "" {
		return rec
	}

	file, err := ini.Load(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[record] ignoring unreadable %s: %v", s.path, err)
		}
		return rec
	}

	sec := file.Section(section)
	if v, err := strconv.ParseFloat(sec.Key(keyHighScore).String(), 64); err == nil && v >= 0 && !math.IsInf(v, 0) {
		rec.HighScore = v
	}
	if v, err := strconv.Atoi(sec.Key(keyBestLevel).String()); err == nil && v >= 1 {
		rec.BestLevel = v
	}
	return rec
}

// Save writes rec atomically: a temp file in the same directory renamed over the target
func (s *Store) Save(rec Record) error {
	if s.path == "" {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}

	file := ini.Empty()
	sec := file.Section(section)
	sec.Key(keyHighScore).SetValue(strconv.FormatFloat(rec.HighScore, 'f', -1, 64))
	sec.Key(keyBestLevel).SetValue(strconv.Itoa(rec.BestLevel))

	tmp, err := os.CreateTemp(dir, ".record-*.ini")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := file.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close record: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace record: %w", err)
	}
	return nil
}
