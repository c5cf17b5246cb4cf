package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PIXELMUSE_HOME", dir)
	return dir
}

func TestLoadStateDefaultsWhenMissing(t *testing.T) {
	useTempHome(t)

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state.Version != currentStateVersion {
		t.Fatalf("version = %d want %d", state.Version, currentStateVersion)
	}
	if state.History.Requests == nil || len(state.History.Requests) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", state.History.Requests)
	}
}

func TestLoadStateToleratesCorruptFile(t *testing.T) {
	dir := useTempHome(t)
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if len(state.History.Requests) != 0 {
		t.Fatalf("expected default history after corrupt file")
	}
}

func TestAddHistoryNewestFirstAndCapped(t *testing.T) {
	useTempHome(t)
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	for i := 0; i < MaxHistory+5; i++ {
		rec := GenerationRecord{
			ID:        string(rune('a' + i%26)),
			Prompt:    "prompt",
			Quality:   "HD",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := AddHistory(rec); err != nil {
			t.Fatalf("AddHistory() error = %v", err)
		}
	}

	history, err := GetHistory()
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != MaxHistory {
		t.Fatalf("history length = %d want %d", len(history), MaxHistory)
	}
	if !history[0].CreatedAt.After(history[1].CreatedAt) {
		t.Fatalf("history is not newest first: %v then %v", history[0].CreatedAt, history[1].CreatedAt)
	}

	if err := ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	if history, _ := GetHistory(); len(history) != 0 {
		t.Fatalf("history length after clear = %d", len(history))
	}
}

func TestLastQualityRoundTrip(t *testing.T) {
	useTempHome(t)

	if err := SetLastQuality("HD"); err != nil {
		t.Fatalf("SetLastQuality() error = %v", err)
	}
	got, err := GetLastQuality()
	if err != nil {
		t.Fatalf("GetLastQuality() error = %v", err)
	}
	if got != "HD" {
		t.Fatalf("last quality = %q want %q", got, "HD")
	}
}

func TestLoadSettings(t *testing.T) {
	dir := useTempHome(t)

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() with no file error = %v", err)
	}
	if s.ReducedMotion || len(s.Suggestions) != 0 {
		t.Fatalf("expected zero settings, got %+v", s)
	}

	content := `reduced_motion = true
suggestions = ["One weird trick", "", "Day in my life"]
`
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err = LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !s.ReducedMotion {
		t.Fatalf("expected reduced_motion = true")
	}
	got := s.SuggestionsOr(nil)
	if len(got) != 2 || got[0] != "One weird trick" || got[1] != "Day in my life" {
		t.Fatalf("suggestions = %q", got)
	}
}

func TestLoadSettingsRejectsInvalidTOML(t *testing.T) {
	dir := useTempHome(t)
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("reduced_motion = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSuggestionsOrFallback(t *testing.T) {
	fallback := []string{"default"}
	if got := (Settings{}).SuggestionsOr(fallback); len(got) != 1 || got[0] != "default" {
		t.Fatalf("SuggestionsOr() = %q want fallback", got)
	}
}
