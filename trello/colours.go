package trello

import "strings"

// LabelColour is a Trello label colour name resolved to an embed colour value.
type LabelColour int

const (
	LabelColourYellow LabelColour = 0xF2D600
	LabelColourPurple LabelColour = 0xC377E0
	LabelColourBlue   LabelColour = 0x0079BF
	LabelColourRed    LabelColour = 0xEB5A46
	LabelColourGreen  LabelColour = 0x61BD4F
	LabelColourOrange LabelColour = 0xFF9F1A
	LabelColourBlack  LabelColour = 0x355263
	LabelColourSky    LabelColour = 0x00C2E0
	LabelColourPink   LabelColour = 0xFF78CB
	LabelColourLime   LabelColour = 0x51E898

	// LabelColourNull is the fallback for colourless or unrecognized labels.
	LabelColourNull LabelColour = 0xB3BEC4
)

var labelColours = map[string]LabelColour{
	"yellow": LabelColourYellow,
	"purple": LabelColourPurple,
	"blue":   LabelColourBlue,
	"red":    LabelColourRed,
	"green":  LabelColourGreen,
	"orange": LabelColourOrange,
	"black":  LabelColourBlack,
	"sky":    LabelColourSky,
	"pink":   LabelColourPink,
	"lime":   LabelColourLime,
}

// LabelColourFromString resolves a Trello colour name. Unknown names yield
// LabelColourNull and ok=false; one bad label never fails a whole card.
func LabelColourFromString(name string) (LabelColour, bool) {
	if colour, ok := labelColours[strings.ToLower(name)]; ok {
		return colour, true
	}
	return LabelColourNull, false
}
