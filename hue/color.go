package hue

import "image/color"

// Color is packed as 0RRRRRGG GGGBBBBB
func channel(f uint16) uint8 {
	return uint8(f * 255 / 31)
}

// FromColor16 converts a packed 15-bit color to its 8-bit equivalent. Each
// 5-bit field scales linearly onto 0-255 with the result truncated, matching
// the client, so 16 maps to 131 and not 132.
func FromColor16(c uint16) color.RGBA {
	return color.RGBA{
		channel(c >> 10 & 0x1f),
		channel(c >> 5 & 0x1f),
		channel(c & 0x1f),
		0xff,
	}
}
