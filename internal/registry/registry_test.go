package registry

import (
	"errors"
	"testing"

	"github.com/iamraziq/glitch-memory/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("created %q", g.ID())
	}

	list := List()
	if len(list) < 2 {
		t.Fatalf("list = %+v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("list not sorted: %+v", list)
		}
	}
	for _, info := range list {
		if info.ID == "aa_stub" && info.Title != "Stub aa_stub" {
			t.Errorf("title = %q", info.Title)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
