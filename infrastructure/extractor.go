package infrastructure

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	log "github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/render"
)

// ImageRecognizer turns a rasterized page into text. Satisfied by TesseractOCR.
type ImageRecognizer interface {
	Recognize(img image.Image) (string, error)
}

// Extractor pulls plain text out of uploaded resume files. Dispatch is by file
// extension; unknown extensions yield empty text without an error.
type Extractor struct {
	ocr ImageRecognizer
}

func NewExtractor(ocr ImageRecognizer) *Extractor {
	return &Extractor{ocr: ocr}
}

// Extract returns the text content of the file at path.
func (e *Extractor) Extract(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "pdf":
		return e.extractPDF(path)
	case "docx":
		return extractDocx(path)
	case "txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", nil
	}
}

// extractPDF reads the embedded text layer of every page. When no page has a
// text layer (scanned documents) it rasterizes each page and OCRs it instead.
func (e *Extractor) extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pdfReader, err := model.NewPdfReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}

	var parts []string
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("failed to get page %d: %w", i, err)
		}
		ex, err := extractor.New(page)
		if err != nil {
			return "", fmt.Errorf("failed to create extractor for page %d: %w", i, err)
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		parts = append(parts, pageText)
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if text != "" {
		return text, nil
	}

	log.WithField("file", path).Info("no embedded text layer, falling back to OCR")
	return e.ocrPDF(pdfReader, numPages)
}

func (e *Extractor) ocrPDF(pdfReader *model.PdfReader, numPages int) (string, error) {
	if e.ocr == nil {
		return "", fmt.Errorf("scanned PDF needs OCR but no recognizer is configured")
	}

	device := render.NewImageDevice()
	var parts []string
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("failed to get page %d: %w", i, err)
		}
		img, err := device.Render(page)
		if err != nil {
			return "", fmt.Errorf("failed to render page %d: %w", i, err)
		}
		pageText, err := e.ocr.Recognize(img)
		if err != nil {
			return "", fmt.Errorf("failed to OCR page %d: %w", i, err)
		}
		parts = append(parts, pageText)
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

var docxRunRe = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// extractDocx concatenates the document's paragraph texts.
func extractDocx(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer r.Close()

	return docxText(r.Editable().GetContent()), nil
}

// docxText flattens WordprocessingML to plain text. Word splits a paragraph
// into multiple <w:t> runs on formatting boundaries, so runs within a
// paragraph concatenate with no separator; paragraphs join with single spaces.
func docxText(content string) string {
	var paras []string
	for _, block := range strings.Split(content, "</w:p>") {
		var b strings.Builder
		for _, m := range docxRunRe.FindAllStringSubmatch(block, -1) {
			b.WriteString(unescapeXML(m[1]))
		}
		if p := strings.TrimSpace(b.String()); p != "" {
			paras = append(paras, p)
		}
	}
	return strings.TrimSpace(strings.Join(paras, " "))
}

var xmlReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func unescapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
