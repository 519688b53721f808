package core

import "fmt"

// UsageError reports a controller constructed without its required parent.
// It signals a structural wiring mistake by the integrator rather than a
// runtime condition, so constructors panic with it instead of degrading into
// a silently non-functional widget. No other error kind exists in the engine;
// every reducer transition is total.
type UsageError struct {
	Child  string
	Parent string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("flyout: %s must be created with an enclosing %s", e.Child, e.Parent)
}

func mustMachine(child string, m *Machine) {
	if m == nil {
		panic(&UsageError{Child: child, Parent: "Machine"})
	}
}
