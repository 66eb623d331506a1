// Package action defines the keybinding action alphabet: the sole
// grammar of user-initiated state change.
package action

// Kind enumerates the action variants a keybinding can resolve to.
type Kind int

const (
	Spawn Kind = iota
	Kill
	NextWindow
	PrevWindow
	SwapLeft
	SwapRight
	IncreaseWindowWeight
	DecreaseWindowWeight
	IncreaseWindowGap
	DecreaseWindowGap
	GoToWorkspace
	SendToWorkspace
	ToggleFullscreen
	CycleLayout
)

// Event is one resolved action. Only the fields relevant to Kind are
// populated.
type Event struct {
	Kind Kind

	// Cmd is the shell command for Spawn.
	Cmd string

	// N is the adjustment amount for IncreaseWindowWeight,
	// DecreaseWindowWeight, IncreaseWindowGap, DecreaseWindowGap.
	N uint32

	// Workspace is the target index for GoToWorkspace and
	// SendToWorkspace.
	Workspace int
}
