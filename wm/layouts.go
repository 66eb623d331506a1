package wm

import "github.com/kestrelwm/kestrel/layout"

// defaultLayouts registers every built-in layout algorithm, horizontal
// first so a fresh workspace starts side-by-side.
func defaultLayouts() *layout.Manager {
	return layout.NewManager(
		layout.Registration{Kind: layout.KindHorizontal, Algorithm: layout.Horizontal{}},
		layout.Registration{Kind: layout.KindMaster, Algorithm: layout.Master{}},
	)
}
