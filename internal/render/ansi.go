package render

// Terminal control sequences (VT100 subset).
const (
	ESC = "\x1b"
	CSI = ESC + "["

	ClearScreen = CSI + "2J"
	CursorHome  = CSI + "H"
	HideCursor  = CSI + "?25l"
	ShowCursor  = CSI + "?25h"
	ResetStyle  = CSI + "0m"
)
