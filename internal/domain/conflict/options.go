package conflict

import "time"

// Default conflict window within which shared officials are double-booked.
const defaultConflictWindow = 3 * time.Hour

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithWindow sets the double-booking window. The window is symmetric around
// the candidate's kickoff; non-positive values are ignored.
func WithWindow(window time.Duration) Option {
	return func(v *Validator) {
		if window > 0 {
			v.window = window
		}
	}
}
