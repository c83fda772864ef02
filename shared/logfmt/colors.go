package logfmt

import "github.com/muesli/termenv"

// Color is the color type accepted by StyleConfig fields.
type Color = termenv.Color

var (
	ANSIBlack         Color = termenv.ANSIBlack
	ANSIRed           Color = termenv.ANSIRed
	ANSIGreen         Color = termenv.ANSIGreen
	ANSIYellow        Color = termenv.ANSIYellow
	ANSIBlue          Color = termenv.ANSIBlue
	ANSIMagenta       Color = termenv.ANSIMagenta
	ANSICyan          Color = termenv.ANSICyan
	ANSIWhite         Color = termenv.ANSIWhite
	ANSIBrightBlack   Color = termenv.ANSIBrightBlack
	ANSIBrightRed     Color = termenv.ANSIBrightRed
	ANSIBrightGreen   Color = termenv.ANSIBrightGreen
	ANSIBrightYellow  Color = termenv.ANSIBrightYellow
	ANSIBrightBlue    Color = termenv.ANSIBrightBlue
	ANSIBrightMagenta Color = termenv.ANSIBrightMagenta
	ANSIBrightCyan    Color = termenv.ANSIBrightCyan
	ANSIBrightWhite   Color = termenv.ANSIBrightWhite
)
