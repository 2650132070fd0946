package hue

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"
)

type decoder struct {
	r    io.Reader
	hues []Hue

	// Enough to hold one entry
	tmp [entrySize]byte
}

func trimName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s := make([]byte, 0, len(b))
	for _, c := range b {
		if c < 0x80 {
			s = append(s, c)
		}
	}
	return strings.TrimSpace(string(s))
}

func (d *decoder) readHue() (bool, error) {
	if _, err := io.ReadFull(d.r, d.tmp[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}

	h := Hue{Index: len(d.hues) + 1}
	for i := range h.Colors16 {
		h.Colors16[i] = binary.LittleEndian.Uint16(d.tmp[i*2:])
		h.ColorsRGB[i] = FromColor16(h.Colors16[i])
	}
	h.Start = binary.LittleEndian.Uint16(d.tmp[ColorsPerHue*2:])
	h.End = binary.LittleEndian.Uint16(d.tmp[ColorsPerHue*2+2:])
	h.Name = trimName(d.tmp[entrySize-nameSize:])

	d.hues = append(d.hues, h)

	return true, nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	for {
		var header [groupHeaderSize]byte
		if _, err := io.ReadFull(d.r, header[:]); err != nil {
			// A missing or short group header is the normal end of
			// the stream
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return err
		}

		for i := 0; i < huesPerGroup; i++ {
			ok, err := d.readHue()
			if err != nil {
				return err
			}
			if !ok {
				// Truncated mid-entry; keep everything decoded
				// so far
				return nil
			}
		}
	}
}

// Decode reads a hue table from r until the stream is exhausted and returns
// the hues in file order. Trailing partial data ends the decode silently as
// these files are often truncated; only genuine read failures are returned.
// An empty stream yields an empty table.
func Decode(r io.Reader) ([]Hue, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.hues, nil
}

// DecodeFile decodes the hue table stored in the named file, usually
// hues.mul inside a client installation.
func DecodeFile(path string) ([]Hue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}
