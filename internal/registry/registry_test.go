package registry

import (
	"testing"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return &stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Error("Exists() = false, expected true")
	}
	if Exists("zz-missing") {
		t.Error("Exists() = true for unknown id")
	}

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub-a" {
		t.Errorf("ID() = %q, expected zz-stub-a", g.ID())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create() should fail for unknown id")
	}

	list := List()
	var a, b = -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz-stub-a":
			a = i
			if info.Title != "Stub zz-stub-a" {
				t.Errorf("Title = %q, expected Stub zz-stub-a", info.Title)
			}
		case "zz-stub-b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate id should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
