package report

import "fmt"

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Neutral is used for any status outside the known set.
var Neutral = RGB{128, 128, 128}

var palette = map[Status]RGB{
	NeedsRepair: {255, 75, 75},
	UnderRepair: {255, 165, 0},
	Fixed:       {0, 200, 120},
}

var badges = map[Status]string{
	NeedsRepair: "red",
	UnderRepair: "orange",
	Fixed:       "green",
}

// ColorOf is the marker, card, badge and chart color of a status.
func ColorOf(s Status) RGB {
	if c, ok := palette[s]; ok {
		return c
	}
	return Neutral
}

// BadgeClass is the CSS class of a status badge.
func BadgeClass(s Status) string {
	if b, ok := badges[s]; ok {
		return b
	}
	return "grey"
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Array is the [r, g, b] form map layers expect.
func (c RGB) Array() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
