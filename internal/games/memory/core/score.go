package core

// Ledger holds the running score. It does not clamp; a run of
// mismatches can take the score below zero.
type Ledger struct {
	score   int
	display ScoreDisplay
}

// NewLedger creates a ledger at zero that reports to display (may be nil).
func NewLedger(display ScoreDisplay) *Ledger {
	if display == nil {
		display = nopScoreDisplay{}
	}
	return &Ledger{display: display}
}

// Add increases the score by amount.
func (l *Ledger) Add(amount int) {
	l.score += amount
	l.display.ScoreChanged(l.score)
}

// Subtract decreases the score by amount.
func (l *Ledger) Subtract(amount int) {
	l.score -= amount
	l.display.ScoreChanged(l.score)
}

// Current returns the score.
func (l *Ledger) Current() int {
	return l.score
}

// Set moves the score to an absolute value by applying the delta through Add.
func (l *Ledger) Set(value int) {
	l.Add(value - l.score)
}
