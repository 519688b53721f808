// Package core contains the popover coordination engine.
//
// Allowed here:
// - popover state machine, reducer, and action contracts
// - button/panel controllers and the focus scope they share
// - group registry (mutual exclusion, outside-focus dismissal)
// - key binding registry and identifier sources
//
// Not allowed here:
// - low-level widget rendering primitives (core/widgets)
// - host wiring, configuration loading, program setup (cmd)
package core
