package uohues

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Hue tables carry no version tag so the CRC of the whole file is the only
// way to tell two client revisions apart.
func crcFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
