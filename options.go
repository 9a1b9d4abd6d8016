package rubik

// Option configures Session behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	observers   []func(Event)
	scrambler   *Scrambler
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), every applied move is kept and returned by
// History. Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithObserver registers a function called after every applied move.
// Observers run synchronously, in registration order, on the goroutine
// that applied the move.
func WithObserver(fn func(Event)) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithScrambler sets the generator used by Session.Scramble.
// The default is time-seeded.
func WithScrambler(s *Scrambler) Option {
	return func(c *config) {
		c.scrambler = s
	}
}
