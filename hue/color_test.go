package hue

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel(t *testing.T) {
	// Truncating scale, not rounding
	for f := uint16(0); f < 32; f++ {
		assert.Equal(t, uint8(int(f)*255/31), channel(f))
	}

	assert.Equal(t, uint8(0), channel(0))
	assert.Equal(t, uint8(131), channel(16))
	assert.Equal(t, uint8(255), channel(31))
}

func TestFromColor16(t *testing.T) {
	tables := []struct {
		name string
		c16  uint16
		rgb  color.RGBA
	}{
		{"black", 0x0000, color.RGBA{0, 0, 0, 0xff}},
		{"white", 0x7fff, color.RGBA{255, 255, 255, 0xff}},
		{"red", 0x7c00, color.RGBA{255, 0, 0, 0xff}},
		{"green", 0x03e0, color.RGBA{0, 255, 0, 0xff}},
		{"blue", 0x001f, color.RGBA{0, 0, 255, 0xff}},
		{"mid", 0x4104, color.RGBA{131, 65, 32, 0xff}}, // R=16, G=8, B=4
		{"unused top bit ignored", 0xffff, color.RGBA{255, 255, 255, 0xff}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.rgb, FromColor16(table.c16))
		})
	}
}
