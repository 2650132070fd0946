/*
Package hue implements a decoder for the Ultima Online hues.mul palette
table.

The file is a sequence of groups repeated until end of file. Each group is a
4 byte header followed by exactly eight hue entries. A hue entry is 32
little-endian 16-bit packed colors forming the gradient, a 16-bit start and
end value, and a 20 byte NUL-padded name, for 88 bytes per entry and 708
bytes per group. There is no record count, magic number or checksum; the
stream simply ends when the bytes run out, and real-world files are
frequently truncated mid-group.
*/
package hue

import (
	"fmt"
	"image/color"
)

const (
	groupHeaderSize = 4
	huesPerGroup    = 8

	// ColorsPerHue is the number of gradient steps in every hue.
	ColorsPerHue = 32

	nameSize  = 20
	entrySize = ColorsPerHue*2 + 2 + 2 + nameSize
	groupSize = groupHeaderSize + huesPerGroup*entrySize
)

// Hue is one decoded palette record. Values are only ever created by the
// decoder and are not modified afterwards.
type Hue struct {
	// Index is the 1-based position of the entry across the whole file.
	Index int
	// Name is the display label with trailing padding stripped. Bytes
	// that do not decode as ASCII are dropped rather than failing.
	Name string
	// Start and End are passed through from the file unchanged; their
	// meaning is up to the client.
	Start, End uint16
	// Colors16 holds the raw packed colors in slot order.
	Colors16 [ColorsPerHue]uint16
	// ColorsRGB holds the corresponding 8-bit colors, one per slot.
	ColorsRGB [ColorsPerHue]color.RGBA
}

// String returns the index and name of the hue. Plenty of entries are
// unnamed in shipped clients.
func (h Hue) String() string {
	name := h.Name
	if name == "" {
		name = "(no name)"
	}
	return fmt.Sprintf("%4d - %s", h.Index, name)
}
