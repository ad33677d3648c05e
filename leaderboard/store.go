// Package leaderboard keeps the fixed-size high-score table on disk.
//
// The table is stored as JSON under a "scores" key. Updates are applied in
// place with sjson so any other keys in the file survive a save.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"termblox/types"
)

// DefaultSize is the number of rows on the table.
const DefaultSize = 10

const (
	scoresKey  = "scores"
	versionKey = "version"
	version    = 1
)

// ErrCorrupt is returned when the score file is not valid JSON.
var ErrCorrupt = errors.New("corrupt score file")

var defaultNames = []string{"PJF", "BLX", "BRK", "PAD", "ZAP", "ACE", "JET", "MAX", "ORB", "RAY"}

// DefaultEntries returns the seed table: evenly spaced scores, highest first.
func DefaultEntries(size int) []types.ScoreEntry {
	entries := make([]types.ScoreEntry, size)
	for i := range entries {
		entries[i] = types.ScoreEntry{
			Score: uint32((size - i) * 100),
			Name:  defaultNames[i%len(defaultNames)],
		}
	}
	return entries
}

// Store is a high-score table backed by a JSON file.
type Store struct {
	path    string
	size    int
	log     *slog.Logger
	now     func() time.Time
	entries []types.ScoreEntry
	mu      sync.Mutex
}

// Open loads the table at path. A missing file yields the default table;
// nothing is written until the first save.
func Open(path string, size int, logger *slog.Logger) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path: path,
		size: size,
		log:  logger,
		now:  time.Now,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.entries = DefaultEntries(size)
		s.log.Debug("no score file, using defaults", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score file: %w", err)
	}

	entries, err := parseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.entries = s.normalize(entries)
	return s, nil
}

func parseEntries(data []byte) ([]types.ScoreEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrCorrupt
	}
	var entries []types.ScoreEntry
	arr := gjson.GetBytes(data, scoresKey)
	if !arr.Exists() {
		return entries, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("%w: %q is not an array", ErrCorrupt, scoresKey)
	}
	arr.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if _, err := types.ParseInitials(name); err != nil {
			name = "???"
		}
		entries = append(entries, types.ScoreEntry{
			Score: uint32(v.Get("score").Uint()),
			Name:  name,
			Date:  v.Get("date").String(),
		})
		return true
	})
	return entries, nil
}

// normalize sorts highest first, truncates to the table size and pads short
// tables with zero-score rows so the lowest score is always defined.
func (s *Store) normalize(entries []types.ScoreEntry) []types.ScoreEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > s.size {
		entries = entries[:s.size]
	}
	for len(entries) < s.size {
		entries = append(entries, types.ScoreEntry{Name: "---"})
	}
	return entries
}

// LowestScore returns the score a new entry has to beat.
func (s *Store) LowestScore() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1].Score
}

// Entries returns a copy of the table, highest first.
func (s *Store) Entries() []types.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ScoreEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Rank returns the 1-based row holding score and name, or 0 if no row does.
func (s *Store) Rank(score uint32, name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.Score == score && e.Name == name {
			return i + 1
		}
	}
	return 0
}

// Save inserts a new entry and writes the table. The in-memory table is
// updated even if the write fails.
func (s *Store) Save(score uint32, name types.Initials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := types.ScoreEntry{
		Score: score,
		Name:  name.String(),
		Date:  s.now().Format("2006-01-02"),
	}
	s.entries = s.normalize(append(s.entries, entry))
	return s.persist()
}

// Reset restores the default table and writes it.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = DefaultEntries(s.size)
	return s.persist()
}

func (s *Store) persist() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read score file: %w", err)
	}
	if len(data) == 0 || !gjson.ValidBytes(data) {
		if len(data) > 0 {
			s.log.Warn("replacing corrupt score file", "path", s.path)
		}
		data = []byte(`{}`)
	}

	buf, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if data, err = sjson.SetRawBytes(data, scoresKey, buf); err != nil {
		return fmt.Errorf("update scores: %w", err)
	}
	if data, err = sjson.SetBytes(data, versionKey, version); err != nil {
		return fmt.Errorf("update version: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write score file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace score file: %w", err)
	}
	return nil
}
