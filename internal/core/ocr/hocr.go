package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// hocrLevels maps hOCR element classes to Tesseract unit levels. Headers,
// captions and floats are line variants and share the line level.
var hocrLevels = map[string]int{
	"ocr_page":      LevelPage,
	"ocr_carea":     LevelBlock,
	"ocr_par":       LevelParagraph,
	"ocr_line":      LevelLine,
	"ocr_header":    LevelLine,
	"ocr_caption":   LevelLine,
	"ocr_textfloat": LevelLine,
	"ocrx_word":     LevelWord,
}

type hocrBox struct {
	left, top, right, bottom int
}

// parseHOCR converts Tesseract's hOCR rendering into Data records. Elements
// are visited in document order, which is Tesseract's reading order, so the
// records come out in the same sequence as the TSV rendering.
func parseHOCR(hocr string) (*Data, error) {
	doc, err := html.Parse(strings.NewReader(hocr))
	if err != nil {
		return nil, fmt.Errorf("invalid hocr: %v", err)
	}

	data := &Data{}
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode {
			if level, ok := hocrLevels[nodeAttr(n, "class")]; ok {
				if err := addHOCRNode(data, n, level); err != nil {
					return err
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc); err != nil {
		return nil, err
	}

	return data, nil
}

func addHOCRNode(data *Data, n *html.Node, level int) error {
	box, wconf, err := parseHOCRTitle(nodeAttr(n, "title"))
	if err != nil {
		return err
	}

	// Only word units carry text and a confidence; everything above them
	// records the -1 sentinel and an empty string, like the TSV rows.
	conf := -1
	text := ""
	if level == LevelWord {
		conf = wconf
		text = textContent(n)
	}

	data.add(level, box.left, box.top, box.right-box.left, box.bottom-box.top, conf, text)
	return nil
}

// parseHOCRTitle extracts the bbox and x_wconf fields from an hOCR title
// attribute, e.g. `bbox 36 92 96 122; x_wconf 96`.
func parseHOCRTitle(title string) (hocrBox, int, error) {
	var box hocrBox
	conf := -1
	found := false

	for _, field := range strings.Split(title, ";") {
		parts := strings.Fields(field)
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "bbox":
			if len(parts) != 5 {
				return box, conf, fmt.Errorf("malformed bbox in title %q", title)
			}
			vals := make([]int, 4)
			for i, p := range parts[1:] {
				v, err := strconv.Atoi(p)
				if err != nil {
					return box, conf, fmt.Errorf("malformed bbox in title %q", title)
				}
				vals[i] = v
			}
			box = hocrBox{left: vals[0], top: vals[1], right: vals[2], bottom: vals[3]}
			found = true
		case "x_wconf":
			if len(parts) == 2 {
				if v, err := strconv.ParseFloat(parts[1], 64); err == nil {
					conf = int(v)
				}
			}
		}
	}

	if !found {
		return box, conf, fmt.Errorf("no bbox in title %q", title)
	}
	return box, conf, nil
}

func nodeAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent returns the concatenated text beneath a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(textContent(child))
	}
	return sb.String()
}
