package ocr

import (
	"strings"
	"testing"
)

const hocrFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
 <head>
  <title></title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name='ocr-system' content='tesseract 5.3.4'/>
  <meta name='ocr-capabilities' content='ocr_page ocr_carea ocr_par ocr_line ocrx_word ocrp_wconf'/>
 </head>
 <body>
  <div class='ocr_page' id='page_1' title='image "/tmp/in.png"; bbox 0 0 640 480; ppageno 0; scan_res 70 70'>
   <div class='ocr_carea' id='block_1_1' title="bbox 36 92 618 184">
    <p class='ocr_par' id='par_1_1' lang='eng' title="bbox 36 92 618 184">
     <span class='ocr_line' id='line_1_1' title="bbox 36 92 580 122; baseline 0 -1; x_size 30; x_descenders 7; x_ascenders 8">
      <span class='ocrx_word' id='word_1_1' title='bbox 36 92 96 122; x_wconf 96'>Total</span>
      <span class='ocrx_word' id='word_1_2' title='bbox 110 92 200 122; x_wconf 91'>$45.00</span>
     </span>
     <span class='ocr_line' id='line_1_2' title="bbox 36 140 420 170; baseline 0 0; x_size 28">
      <span class='ocrx_word' id='word_1_3' title='bbox 36 140 150 170; x_wconf 88.52'><strong>Paid</strong></span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>
`

func TestParseHOCR(t *testing.T) {
	data, err := parseHOCR(hocrFixture)
	if err != nil {
		t.Fatalf("parseHOCR() error = %v", err)
	}

	wantLevels := []int{LevelPage, LevelBlock, LevelParagraph, LevelLine, LevelWord, LevelWord, LevelLine, LevelWord}
	if data.Len() != len(wantLevels) {
		t.Fatalf("Len() = %d, want %d", data.Len(), len(wantLevels))
	}
	for i, want := range wantLevels {
		if data.Level[i] != want {
			t.Errorf("Level[%d] = %d, want %d", i, data.Level[i], want)
		}
	}

	// Page record: full image box, sentinel confidence, no text.
	if data.Left[0] != 0 || data.Top[0] != 0 || data.Width[0] != 640 || data.Height[0] != 480 {
		t.Errorf("page box = (%d,%d,%d,%d), want (0,0,640,480)", data.Left[0], data.Top[0], data.Width[0], data.Height[0])
	}
	if data.Conf[0] != -1 || data.Text[0] != "" {
		t.Errorf("page record = conf %d text %q, want sentinel", data.Conf[0], data.Text[0])
	}

	// First word: box converted from corners to width/height.
	if data.Text[4] != "Total" {
		t.Errorf("Text[4] = %q, want %q", data.Text[4], "Total")
	}
	if data.Conf[4] != 96 {
		t.Errorf("Conf[4] = %d, want 96", data.Conf[4])
	}
	if data.Left[4] != 36 || data.Top[4] != 92 || data.Width[4] != 60 || data.Height[4] != 30 {
		t.Errorf("word box = (%d,%d,%d,%d), want (36,92,60,30)", data.Left[4], data.Top[4], data.Width[4], data.Height[4])
	}

	if data.Text[5] != "$45.00" {
		t.Errorf("Text[5] = %q, want %q", data.Text[5], "$45.00")
	}

	// Nested markup inside a word span and a fractional confidence.
	if data.Text[7] != "Paid" {
		t.Errorf("Text[7] = %q, want %q", data.Text[7], "Paid")
	}
	if data.Conf[7] != 88 {
		t.Errorf("Conf[7] = %d, want 88", data.Conf[7])
	}
}

func TestParseHOCREmptyPage(t *testing.T) {
	hocr := `<html><body><div class='ocr_page' id='page_1' title='image "x"; bbox 0 0 100 50; ppageno 0'></div></body></html>`

	data, err := parseHOCR(hocr)
	if err != nil {
		t.Fatalf("parseHOCR() error = %v", err)
	}
	if data.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", data.Len())
	}
	if data.Level[0] != LevelPage || data.Conf[0] != -1 {
		t.Errorf("record = level %d conf %d, want page sentinel", data.Level[0], data.Conf[0])
	}
}

func TestParseHOCRMissingBBox(t *testing.T) {
	hocr := `<html><body><div class='ocr_page' title='ppageno 0'></div></body></html>`

	if _, err := parseHOCR(hocr); err == nil {
		t.Fatal("parseHOCR() expected error for missing bbox")
	}
}

func TestParseHOCRIgnoresUnknownClasses(t *testing.T) {
	hocr := `<html><body>
<div class='ocr_page' title='bbox 0 0 10 10'>
<span class='ocr_photo' title='bbox 1 1 5 5'>x</span>
</div></body></html>`

	data, err := parseHOCR(hocr)
	if err != nil {
		t.Fatalf("parseHOCR() error = %v", err)
	}
	if data.Len() != 1 {
		t.Errorf("Len() = %d, want 1", data.Len())
	}
}

func TestParseHOCRTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantBox  hocrBox
		wantConf int
		wantErr  bool
	}{
		{
			name:     "word title",
			title:    "bbox 36 92 96 122; x_wconf 96",
			wantBox:  hocrBox{left: 36, top: 92, right: 96, bottom: 122},
			wantConf: 96,
		},
		{
			name:     "bbox after other fields",
			title:    `image "/tmp/in.png"; bbox 0 0 640 480; ppageno 0`,
			wantBox:  hocrBox{right: 640, bottom: 480},
			wantConf: -1,
		},
		{
			name:     "fractional confidence truncates",
			title:    "bbox 1 2 3 4; x_wconf 88.52",
			wantBox:  hocrBox{left: 1, top: 2, right: 3, bottom: 4},
			wantConf: 88,
		},
		{
			name:    "missing bbox",
			title:   "x_wconf 90",
			wantErr: true,
		},
		{
			name:    "short bbox",
			title:   "bbox 1 2 3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, conf, err := parseHOCRTitle(tt.title)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHOCRTitle() error = %v", err)
			}
			if box != tt.wantBox {
				t.Errorf("box = %+v, want %+v", box, tt.wantBox)
			}
			if conf != tt.wantConf {
				t.Errorf("conf = %d, want %d", conf, tt.wantConf)
			}
		})
	}
}

func TestParseHOCRReadingOrder(t *testing.T) {
	data, err := parseHOCR(hocrFixture)
	if err != nil {
		t.Fatalf("parseHOCR() error = %v", err)
	}

	var words []string
	for i := 0; i < data.Len(); i++ {
		if data.Level[i] == LevelWord {
			words = append(words, data.Text[i])
		}
	}
	if got := strings.Join(words, " "); got != "Total $45.00 Paid" {
		t.Errorf("word order = %q, want %q", got, "Total $45.00 Paid")
	}
}
