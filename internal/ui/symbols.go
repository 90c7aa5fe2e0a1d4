package ui

// Unicode symbols for status indicators and drawing.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "!"

	// SymbolBlock fills occupied cells when labels and colors are drawn apart.
	SymbolBlock = '█'
)

// Box drawing for the timeline frame.
const (
	boxVertical    = "│"
	boxHorizontal  = "─"
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
)
