package app

// Key binding constants used in handleKey.
const (
	KeyQuit      = "ctrl+c"
	KeyEnter     = "enter"
	KeyFocusNext = "tab"
	KeyFocusPrev = "shift+tab"
	KeySubmit    = "ctrl+s"
	KeyNow       = "ctrl+t"
	KeyDelete    = "d"
	KeySpace     = " "
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyUp        = "up"
	KeyDown      = "down"
)
