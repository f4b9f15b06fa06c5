// Package docx reads and writes Office Open XML word-processing
// documents using nothing beyond the archive and XML machinery in the
// standard library. Documents are treated as a flat paragraph stream
// with style hints; structure recovery belongs to the segmenting
// package.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/segmenting"
)

// Parse extracts the paragraph stream from .docx bytes. Each paragraph
// carries two style hints: Heading when the paragraph style is a
// heading style, Bold when every non-empty run in it is bold.
func Parse(data []byte) ([]segmenting.Paragraph, error) {
	if len(data) == 0 {
		return nil, &ParseError{Message: "empty input"}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Message: "not a zip archive", Cause: err}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, &ParseError{Message: "word/document.xml not found"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, &ParseError{Message: "open word/document.xml", Cause: err}
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ParseError{Message: "read word/document.xml", Cause: err}
	}

	paragraphs, err := walkDocumentXML(raw)
	if err != nil {
		return nil, &ParseError{Message: "parse word/document.xml", Cause: err}
	}
	return paragraphs, nil
}

// paragraphState accumulates one w:p while the decoder walks it.
type paragraphState struct {
	text        strings.Builder
	headed      bool
	runs        int
	boldRuns    int
	runHasText  bool
	runBold     bool
	inRunProps  bool
	inParaProps bool
}

func (p *paragraphState) closeRun() {
	if !p.runHasText {
		return
	}
	p.runs++
	if p.runBold {
		p.boldRuns++
	}
}

func (p *paragraphState) paragraph() (segmenting.Paragraph, bool) {
	text := strings.TrimSpace(p.text.String())
	if text == "" {
		return segmenting.Paragraph{}, false
	}
	return segmenting.Paragraph{
		Text:    text,
		Heading: p.headed,
		Bold:    p.runs > 0 && p.boldRuns == p.runs,
	}, true
}

func walkDocumentXML(raw []byte) ([]segmenting.Paragraph, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var paragraphs []segmenting.Paragraph
	var current *paragraphState
	inRun := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current = &paragraphState{}
				inRun = false
			case "pPr":
				if current != nil {
					current.inParaProps = true
				}
			case "pStyle":
				if current != nil && current.inParaProps && isHeadingStyle(attrValue(t, "val")) {
					current.headed = true
				}
			case "r":
				if current != nil {
					inRun = true
					current.runBold = false
					current.runHasText = false
				}
			case "rPr":
				if current != nil && inRun {
					current.inRunProps = true
				}
			case "b":
				if current != nil && current.inRunProps && boldEnabled(attrValue(t, "val")) {
					current.runBold = true
				}
			case "t":
				if current != nil && inRun {
					inText = true
				}
			case "tab", "br":
				if current != nil {
					current.text.WriteString(" ")
				}
			}
		case xml.CharData:
			if current != nil && inText {
				current.text.Write(t)
				if len(bytes.TrimSpace(t)) > 0 {
					current.runHasText = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if current != nil {
					if para, ok := current.paragraph(); ok {
						paragraphs = append(paragraphs, para)
					}
					current = nil
				}
			case "pPr":
				if current != nil {
					current.inParaProps = false
				}
			case "rPr":
				if current != nil {
					current.inRunProps = false
				}
			case "t":
				inText = false
			case "r":
				if current != nil {
					current.closeRun()
				}
				inRun = false
			}
		}
	}

	return paragraphs, nil
}

func attrValue(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func isHeadingStyle(style string) bool {
	return strings.Contains(strings.ToLower(style), "heading")
}

// boldEnabled treats a bare <w:b/> as on; only an explicit false or 0
// turns it off.
func boldEnabled(val string) bool {
	switch strings.ToLower(val) {
	case "false", "0", "off", "none":
		return false
	default:
		return true
	}
}
