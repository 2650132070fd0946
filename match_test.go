package uohues

import (
	"bytes"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/uohues/hue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidHue(index int, name string, c16 uint16) hue.Hue {
	h := hue.Hue{
		Index: index,
		Name:  name,
	}
	for i := range h.Colors16 {
		h.Colors16[i] = c16
		h.ColorsRGB[i] = hue.FromColor16(c16)
	}
	return h
}

func TestDistance(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	assert.Equal(t, uint32(0), distance(red, red))
	assert.NotZero(t, distance(red, blue))
	assert.Equal(t, distance(red, blue), distance(blue, red))
}

func TestClosestHue(t *testing.T) {
	hues := []hue.Hue{
		solidHue(1, "Red", testRed),
		solidHue(2, "Blue", testBlue),
	}

	h, _ := closestHue(hues, color.Palette{color.RGBA{250, 10, 10, 255}})
	assert.Equal(t, "Red", h.Name)

	h, _ = closestHue(hues, color.Palette{color.RGBA{10, 10, 250, 255}})
	assert.Equal(t, "Blue", h.Name)

	h, sum := closestHue(hues, color.Palette{color.RGBA{255, 0, 0, 255}})
	assert.Equal(t, "Red", h.Name)
	assert.Zero(t, sum)
}

func TestIsImage(t *testing.T) {
	tables := []struct {
		file     string
		expected bool
	}{
		{"shot.png", true},
		{"shot.jpg", true},
		{"shot.jpeg", true},
		{"shot.gif", true},
		{"shot.PNG", true},
		{"shot.Jpg", true},
		{"hues.mul", false},
		{"README", false},
	}

	for _, table := range tables {
		t.Run(table.file, func(t *testing.T) {
			assert.Equal(t, table.expected, isImage(table.file))
		})
	}
}

func TestMatchFile(t *testing.T) {
	dir := t.TempDir()

	mul := filepath.Join(dir, "hues.mul")
	writeMul(t, mul, []testHue{{"Red", testRed}, {"Blue", testBlue}})

	img := filepath.Join(dir, "red.png")
	writePNG(t, img, color.RGBA{255, 0, 0, 255})

	b := new(bytes.Buffer)
	require.NoError(t, Match(b, mul, img, log.New(io.Discard, "", 0)))

	assert.Contains(t, b.String(), "Red")
	assert.NotContains(t, b.String(), "Blue")
}

func TestMatchDirectory(t *testing.T) {
	dir := t.TempDir()

	mul := filepath.Join(dir, "hues.mul")
	writeMul(t, mul, []testHue{{"Red", testRed}, {"Blue", testBlue}})

	images := filepath.Join(dir, "images")
	require.NoError(t, os.Mkdir(images, 0755))
	writePNG(t, filepath.Join(images, "red.png"), color.RGBA{255, 0, 0, 255})
	writePNG(t, filepath.Join(images, "blue.png"), color.RGBA{0, 0, 255, 255})

	// Not an image, should be skipped rather than fail the run
	require.NoError(t, os.WriteFile(filepath.Join(images, "broken.png"), []byte("not a png"), 0644))

	b := new(bytes.Buffer)
	require.NoError(t, Match(b, mul, images, log.New(io.Discard, "", 0)))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, b.String(), "red.png")
	assert.Contains(t, b.String(), "blue.png")
}

func TestMatchNoHues(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.mul")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	img := filepath.Join(dir, "red.png")
	writePNG(t, img, color.RGBA{255, 0, 0, 255})

	err := Match(new(bytes.Buffer), empty, img, log.New(io.Discard, "", 0))
	assert.ErrorIs(t, err, ErrNoHues)
}
