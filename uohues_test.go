package uohues

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type testHue struct {
	name string
	c16  uint16
}

const (
	testRed  = uint16(0x7c00)
	testBlue = uint16(0x001f)
)

// writeMul writes a single-group hue table where each entry's gradient is
// one solid packed color repeated across all 32 slots.
func writeMul(t *testing.T, path string, hues []testHue) {
	require.LessOrEqual(t, len(hues), 8)

	b := new(bytes.Buffer)
	b.Write([]byte{0, 0, 0, 0})

	for i := 0; i < 8; i++ {
		var th testHue
		if i < len(hues) {
			th = hues[i]
		}
		for j := 0; j < 32; j++ {
			binary.Write(b, binary.LittleEndian, th.c16)
		}
		binary.Write(b, binary.LittleEndian, uint16(i))
		binary.Write(b, binary.LittleEndian, uint16(i+10))
		var name [20]byte
		copy(name[:], th.name)
		b.Write(name[:])
	}

	require.NoError(t, os.WriteFile(path, b.Bytes(), 0644))
}

func writePNG(t *testing.T, path string, c color.RGBA) {
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
}
