package core

// Transition describes which state change a Renderer is being told about.
type Transition int

const (
	TransitionReveal  Transition = iota // card turned face up by play
	TransitionHide                      // card turned face down
	TransitionMatch                     // card became part of a matched pair
	TransitionRestore                   // flags set directly (load, preview)
	TransitionPop                       // delayed highlight after a match
)

// String returns a human-readable name for the transition.
func (t Transition) String() string {
	switch t {
	case TransitionReveal:
		return "reveal"
	case TransitionHide:
		return "hide"
	case TransitionMatch:
		return "match"
	case TransitionRestore:
		return "restore"
	case TransitionPop:
		return "pop"
	default:
		return "unknown"
	}
}

// CardView is a read-only copy of a card's state handed to collaborators.
type CardView struct {
	Index   int
	ID      int
	Flipped bool
	Matched bool
}

// Renderer is notified of every visual state change. Calls are
// fire-and-forget; the engine never waits for an animation.
type Renderer interface {
	CardChanged(view CardView, t Transition)
}

// Audio receives discrete sound cues.
type Audio interface {
	Flip()
	Match()
	Mismatch()
	GameOver()
}

// ScoreDisplay receives the score after every ledger mutation.
type ScoreDisplay interface {
	ScoreChanged(score int)
}

// FlipListener is notified when a card is flipped by the player.
type FlipListener interface {
	CardFlipped(c *Card)
}

// FlipListenerFunc adapts a function to FlipListener.
type FlipListenerFunc func(c *Card)

// CardFlipped calls f(c).
func (f FlipListenerFunc) CardFlipped(c *Card) {
	f(c)
}

type nopRenderer struct{}

func (nopRenderer) CardChanged(CardView, Transition) {}

type nopAudio struct{}

func (nopAudio) Flip()     {}
func (nopAudio) Match()    {}
func (nopAudio) Mismatch() {}
func (nopAudio) GameOver() {}

type nopScoreDisplay struct{}

func (nopScoreDisplay) ScoreChanged(int) {}
