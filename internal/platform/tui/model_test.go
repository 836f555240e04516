package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ropejump/internal/core"
	"github.com/vovakirdan/tui-ropejump/internal/games/ropejump"
	"github.com/vovakirdan/tui-ropejump/internal/storage"
)

func testModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdirTest(t, t.TempDir())

	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	m := NewModel(ropejump.New(ropejump.ModeClassic), store, cfg)
	m.Init()
	return m, store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

// playUntilOver jumps on the first tick and then stands still.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 500 && !m.gameState.GameOver; i++ {
		m = send(t, m, TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("game did not end")
	}
	return m
}

func TestModelSavesBestOnce(t *testing.T) {
	m, store := testModel(t)

	m = playUntilOver(t, m)
	for i := 0; i < 10; i++ {
		m = send(t, m, TickMsg{})
	}

	res := m.Result()
	if res.Games != 1 {
		t.Errorf("Games = %d, want 1", res.Games)
	}
	if res.LastScore != 1 || res.Best != 1 || !res.NewBest {
		t.Errorf("result = %+v, want a new best of 1", res)
	}
	if res.SaveErr != nil {
		t.Errorf("SaveErr = %v", res.SaveErr)
	}

	best, err := store.HighScore(ropejump.ModeClassic.ID)
	if err != nil {
		t.Fatal(err)
	}
	if best != 1 {
		t.Errorf("stored best = %d, want 1", best)
	}
}

func TestModelRestart(t *testing.T) {
	m, _ := testModel(t)
	m = playUntilOver(t, m)

	m = send(t, m, runeKey("r"))
	m = send(t, m, TickMsg{})

	if m.gameState.GameOver || m.gameState.Score != 0 {
		t.Errorf("after restart state = %+v", m.gameState)
	}

	m = playUntilOver(t, m)
	if m.Result().Games != 2 {
		t.Errorf("Games = %d, want 2", m.Result().Games)
	}
	if !m.Result().NewBest || m.Result().Best != 1 {
		t.Errorf("result = %+v", m.Result())
	}
}

func TestModelIgnoresRestartWhilePlaying(t *testing.T) {
	m, _ := testModel(t)
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey("r"))

	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be ignored before game over")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := testModel(t)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View after quit = %q, want empty", v)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, _ := testModel(t)
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d, want 120x%d", m.screen.Width(), m.screen.Height(), 40-helpRows)
	}
	g, ok := m.game.(*ropejump.Game)
	if !ok {
		t.Fatalf("game is %T", m.game)
	}
	if g.Session().Tick() != 5 {
		t.Errorf("Tick = %d after resize, want 5", g.Session().Tick())
	}
}

func TestModelViewShowsHUDAndHelp(t *testing.T) {
	m, _ := testModel(t)
	m = send(t, m, TickMsg{})

	view := m.View()
	for _, want := range []string{"Score: 0", "Best: 0", "jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	m, store := testModel(t)
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	shots := m.Result().Shots
	if len(shots) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(shots))
	}
	if filepath.Dir(shots[0]) != filepath.Join(store.Dir(), "screenshots") {
		t.Errorf("screenshot written to %s", shots[0])
	}
	data, err := os.ReadFile(shots[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot missing HUD")
	}
}

// chdirTest changes the working directory for the duration of the test,
// restoring it on cleanup.
func chdirTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
