package ocr

import (
	"fmt"
	"strconv"
	"strings"
)

// tsvColumns is the fixed column layout of tesseract's TSV renderer: level,
// page_num, block_num, par_num, line_num, word_num, left, top, width,
// height, conf, text.
const tsvColumns = 12

// parseTSV converts tesseract's TSV rendering into Data records. The header
// row is skipped; every other non-empty row must carry all twelve columns.
func parseTSV(out string) (*Data, error) {
	data := &Data{}

	for i, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i == 0 && strings.HasPrefix(line, "level\t") {
			continue
		}

		cols := strings.SplitN(line, "\t", tsvColumns)
		if len(cols) < tsvColumns {
			return nil, fmt.Errorf("malformed tsv row %d: %q", i, line)
		}

		level, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, fmt.Errorf("malformed tsv level in row %d: %q", i, line)
		}
		box := make([]int, 4)
		for j, col := range cols[6:10] {
			v, err := strconv.Atoi(col)
			if err != nil {
				return nil, fmt.Errorf("malformed tsv box in row %d: %q", i, line)
			}
			box[j] = v
		}
		// Tesseract 5 prints word confidences as floats; truncate like the
		// integer confidences of older versions.
		confF, err := strconv.ParseFloat(cols[10], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed tsv conf in row %d: %q", i, line)
		}

		data.add(level, box[0], box[1], box[2], box[3], int(confF), cols[11])
	}

	return data, nil
}
