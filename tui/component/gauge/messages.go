package gauge

// startMsg triggers the first render from inside Update.
type startMsg struct{}

// tickMsg carries the id of the tick chain that produced it. Ticks from a
// superseded chain are dropped.
type tickMsg struct {
	id int
}
