package memory

import (
	"github.com/iamraziq/glitch-memory/internal/config"
	memcore "github.com/iamraziq/glitch-memory/internal/games/memory/core"
)

// boardView is the Renderer for the terminal. Card state itself is read
// from the grid at draw time; the view only keeps short-lived highlights.
type boardView struct {
	popTicks int
	pops     map[int]int // card index -> ticks left
	changes  int
}

func newBoardView(tickRate int) *boardView {
	return &boardView{
		popTicks: max(1, tickRate/2),
		pops:     make(map[int]int),
	}
}

func (b *boardView) CardChanged(view memcore.CardView, t memcore.Transition) {
	b.changes++
	switch t {
	case memcore.TransitionPop:
		b.pops[view.Index] = b.popTicks
	case memcore.TransitionHide, memcore.TransitionRestore:
		delete(b.pops, view.Index)
	}
}

func (b *boardView) popped(index int) bool {
	return b.pops[index] > 0
}

func (b *boardView) step() {
	for i, n := range b.pops {
		if n <= 1 {
			delete(b.pops, i)
			continue
		}
		b.pops[i] = n - 1
	}
}

// hud plays audio cues as a banner line plus the terminal bell, and
// mirrors the score.
type hud struct {
	cues       config.CueConfig
	bannerTTL  int
	banner     string
	bannerLeft int
	bell       bool
	score      int
}

func newHUD(cues config.CueConfig, tickRate int) *hud {
	return &hud{cues: cues, bannerTTL: max(1, tickRate)}
}

func (h *hud) play(c config.Cue) {
	if c.Empty() {
		return
	}
	if c.Text != "" {
		h.banner = c.Text
		h.bannerLeft = h.bannerTTL
	}
	if c.Bell {
		h.bell = true
	}
}

func (h *hud) Flip()     { h.play(h.cues.Flip) }
func (h *hud) Match()    { h.play(h.cues.Match) }
func (h *hud) Mismatch() { h.play(h.cues.Mismatch) }
func (h *hud) GameOver() { h.play(h.cues.GameOver) }

func (h *hud) ScoreChanged(score int) {
	h.score = score
}

func (h *hud) step() {
	if h.bannerLeft > 0 {
		h.bannerLeft--
		if h.bannerLeft == 0 {
			h.banner = ""
		}
	}
}

func (h *hud) takeBell() bool {
	ring := h.bell
	h.bell = false
	return ring
}
