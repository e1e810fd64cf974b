package registry

import (
	"testing"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q", g.ID())
	}

	list := List()
	a, b := -1, -1
	for i, info := range list {
		switch info.ID {
		case "stub-a":
			a = i
			if info.Title != "Stub stub-a" {
				t.Errorf("title = %q", info.Title)
			}
		case "stub-b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
