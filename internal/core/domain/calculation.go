package domain

import "time"

// Calculation is a successfully evaluated expression as kept in history.
type Calculation struct {
	// ID is a unique identifier (UUID).
	ID string

	// Expression is the text exactly as the user entered it.
	Expression string

	// Result is the finite evaluated value.
	Result float64

	// Display is the formatted result shown to the user.
	Display string

	// CreatedAt is when the calculation was evaluated.
	CreatedAt time.Time
}

// String renders the calculation the way history lists show it.
func (c Calculation) String() string {
	return c.Expression + " = " + c.Display
}
