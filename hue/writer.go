package hue

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the hues to w as CSV. The header row is index, name,
// start, end followed by a cN_R, cN_G, cN_B column triplet for each of the
// 32 gradient slots, and each hue becomes one row with the triplets in slot
// order.
func WriteCSV(w io.Writer, hues []Hue) error {
	cw := csv.NewWriter(w)

	record := make([]string, 0, 4+ColorsPerHue*3)

	record = append(record, "index", "name", "start", "end")
	for i := 0; i < ColorsPerHue; i++ {
		record = append(record, fmt.Sprintf("c%d_R", i), fmt.Sprintf("c%d_G", i), fmt.Sprintf("c%d_B", i))
	}
	if err := cw.Write(record); err != nil {
		return err
	}

	for _, h := range hues {
		record = record[:0]
		record = append(record,
			strconv.Itoa(h.Index),
			h.Name,
			strconv.Itoa(int(h.Start)),
			strconv.Itoa(int(h.End)))
		for _, c := range h.ColorsRGB {
			record = append(record,
				strconv.Itoa(int(c.R)),
				strconv.Itoa(int(c.G)),
				strconv.Itoa(int(c.B)))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
