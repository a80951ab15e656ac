package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-screener/internal/models"
)

type TextExtractor interface {
	Extract(doc *models.Document) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract implements TextExtractor. A document whose text is empty or only
// whitespace yields ErrNoTextContent.
func (e *textExtractor) Extract(doc *models.Document) (string, error) {
	var (
		text string
		err  error
	)

	switch doc.MediaType {
	case models.MediaTypePDF:
		text, err = extractPDFText(doc.Data)
	case models.MediaTypeDOCX:
		text, err = extractDocxText(doc.Data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, doc.MediaType)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextContent
	}

	return text, nil
}

// extractPDFText joins page texts with a single space. Pages with no text,
// including pages whose text is only whitespace, are skipped entirely and
// contribute no separator.
func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtractionFailed, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrExtractionFailed, err)
	}

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if strings.TrimSpace(pageText) == "" {
			continue
		}

		pages = append(pages, pageText)
	}

	return strings.Join(pages, " "), nil
}

// extractDocxText joins every body paragraph with a single space. Empty
// paragraphs are kept, so they show up as doubled separators.
func extractDocxText(data []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open DOCX: %v", ErrExtractionFailed, err)
	}
	defer r.Close()

	paragraphs, err := docxParagraphs(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse DOCX body: %v", ErrExtractionFailed, err)
	}

	return strings.Join(paragraphs, " "), nil
}

// docxParagraphs returns the text of each w:p that is a direct child of
// w:body, in document order. Table cells and text boxes are not body
// paragraphs.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inPara     bool
		paraDepth  int
		textBoxes  int
	)

	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			name := el.Name.Local
			switch {
			case !inPara && name == "p" && parent() == "body":
				inPara = true
				paraDepth = len(stack)
				current.Reset()
			case inPara && name == "txbxContent":
				textBoxes++
			case inPara && textBoxes == 0 && parent() == "r":
				switch name {
				case "tab":
					current.WriteString("\t")
				case "br", "cr":
					current.WriteString("\n")
				}
			}
			stack = append(stack, name)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if !inPara {
				continue
			}
			if el.Name.Local == "txbxContent" {
				textBoxes--
			}
			if el.Name.Local == "p" && len(stack) == paraDepth {
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}

		case xml.CharData:
			if inPara && textBoxes == 0 && parent() == "t" {
				current.Write(el)
			}
		}
	}

	return paragraphs, nil
}
