package leaderboard

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"termblox/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustInitials(t *testing.T, s string) types.Initials {
	t.Helper()
	in, err := types.ParseInitials(s)
	if err != nil {
		t.Fatalf("ParseInitials(%q): %v", s, err)
	}
	return in
}

func TestOpenMissingUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := Open(path, 5, quietLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if diff := cmp.Diff(DefaultEntries(5), s.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if got := s.LowestScore(); got != 100 {
		t.Fatalf("LowestScore = %d, want 100", got)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("opening should not create the file")
	}
}

func TestSaveInsertsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	s, err := Open(path, 3, quietLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.now = func() time.Time { return time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC) }

	if err := s.Save(250, mustInitials(t, "B Q")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := []types.ScoreEntry{
		{Score: 300, Name: "PJF"},
		{Score: 250, Name: "B Q", Date: "2020-05-01"},
		{Score: 200, Name: "BLX"},
	}
	if diff := cmp.Diff(want, s.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	reopened, err := Open(path, 3, quietLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if diff := cmp.Diff(want, reopened.Entries()); diff != "" {
		t.Fatalf("reopened entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	seed := `{"playtime": 12.5, "scores": [{"score": 50, "name": "OLD"}]}`
	if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, 2, quietLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.LowestScore(); got != 0 {
		t.Fatalf("short table should pad with zero rows, lowest = %d", got)
	}
	if err := s.Save(75, mustInitials(t, "NEW")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "playtime").Float(); got != 12.5 {
		t.Fatalf("playtime = %v, want 12.5", got)
	}
	if got := gjson.GetBytes(data, "scores.0.name").String(); got != "NEW" {
		t.Fatalf("top entry = %q, want NEW", got)
	}
	if got := gjson.GetBytes(data, "scores.#").Int(); got != 2 {
		t.Fatalf("table has %d rows, want 2", got)
	}
	if got := gjson.GetBytes(data, "version").Int(); got != 1 {
		t.Fatalf("version = %d, want 1", got)
	}
}

func TestOpenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, 3, quietLogger()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Open error = %v, want ErrCorrupt", err)
	}

	if err := os.WriteFile(path, []byte(`{"scores": 5}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, 3, quietLogger()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Open error = %v, want ErrCorrupt", err)
	}
}

func TestOpenTruncatesAndSorts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	seed := `{"scores": [
		{"score": 10, "name": "LOW"},
		{"score": 900, "name": "TOP"},
		{"score": 500, "name": "MID"},
		{"score": 20, "name": "lowercase"}
	]}`
	if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, 3, quietLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	want := []types.ScoreEntry{
		{Score: 900, Name: "TOP"},
		{Score: 500, Name: "MID"},
		{Score: 20, Name: "???"},
	}
	if diff := cmp.Diff(want, s.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRank(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "scores.json"), 3, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(250, mustInitials(t, "NEW")); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		score uint32
		name  string
		want  int
	}{
		{300, "PJF", 1},
		{250, "NEW", 2},
		{200, "BLX", 3},
		{100, "BRK", 0},
		{250, "OLD", 0},
	}
	for _, tt := range tests {
		if got := s.Rank(tt.score, tt.name); got != tt.want {
			t.Errorf("Rank(%d, %q) = %d, want %d", tt.score, tt.name, got, tt.want)
		}
	}
}

func TestSaveWriteFailureKeepsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	// A directory where the temporary file should go makes the write fail.
	if err := os.Mkdir(path+".tmp", 0755); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, 2, quietLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(999, mustInitials(t, "ERR")); err == nil {
		t.Fatal("expected a write error")
	}
	if got := s.Entries()[0].Name; got != "ERR" {
		t.Fatalf("top entry = %q, want ERR", got)
	}
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := Open(path, 2, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(5000, mustInitials(t, "WIN")); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	reopened, err := Open(path, 2, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultEntries(2), reopened.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}
