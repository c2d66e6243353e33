package graphics

import "strings"

// DigitGlyphs are the 4x4 big-digit blocks for 0-9.
var DigitGlyphs = [10]string{
	" __ \n|  |\n|__|\n    ",
	"    \n|   \n|   \n    ",
	" __ \n __|\n|__ \n    ",
	" __ \n __|\n __|\n    ",
	"    \n|__|\n   |\n    ",
	" __ \n|__ \n __|\n    ",
	" __ \n|__ \n|__|\n    ",
	" __ \n|  |\n   |\n    ",
	" __ \n|__|\n|__|\n    ",
	" __ \n|__|\n   |\n    ",
}

// DecimalPointGlyph is the one-column block between seconds and hundredths.
const DecimalPointGlyph = " \n \n.\n "

// GlyphRows is the height of every big-digit block.
const GlyphRows = 4

// StartingTime is the canonical zero shown before the first solve and after
// a reset.
const StartingTime = " __     __   __\n|  |   |  | |  |\n|__| . |__| |__|"

// TimerBackground is the frame drawn around the clock.
var TimerBackground = box(48, 8)

// Title is shown once at startup.
const Title = `
   ___ _   _| |__   ___  | |_(_)_ __ ___   ___ _ __
  / __| | | | '_ \ / _ \ | __| | '_ ` + "`" + ` _ \ / _ \ '__|
 | (__| |_| | |_) |  __/ | |_| | | | | | |  __/ |
  \___|\__,_|_.__/ \___|  \__|_|_| |_| |_|\___|_|


press any key to continue`

// Disclaimer is shown after the session is chosen.
const Disclaimer = `Hold the spacebar and let go to start the timer; press it again to stop.
The clock can trail the real time by a frame while running, but every
recorded time is taken from the monotonic clock and is accurate to the
hundredth of a second, as are the statistics derived from it.

Type : to open the command line, Esc to leave it.

press any key to continue`

// SolvePage is the template for the single-solve stats page.
const SolvePage = `STATS FOR SOLVE %d

Time: %s
Average of 5: %s
Average of 12: %s
Scramble: %s


press any key to exit`

func box(width, height int) string {
	edge := strings.Repeat("-", width)
	inner := "|" + strings.Repeat(" ", width-2) + "|"
	rows := make([]string, 0, height)
	rows = append(rows, edge)
	for i := 0; i < height-2; i++ {
		rows = append(rows, inner)
	}
	rows = append(rows, edge)
	return strings.Join(rows, "\n")
}
