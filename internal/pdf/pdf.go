// Package pdf renders the printable sheet that accompanies every archived
// QR code: a title, the content type, the symbol itself at a scannable
// size, the encoded content, and the creation date.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"qrarchive/internal/archive"
)

// DependencyError reports that the embedded PDF renderer could not set up
// the document (fonts, page geometry, image registration). Distinct from
// filesystem failures so callers can exit with the dependency code.
type DependencyError struct {
	Message string
}

func (e *DependencyError) Error() string {
	return e.Message
}

// Sheet describes one printable QR page.
type Sheet struct {
	Label   string
	Type    string
	Content string
	QRPNG   []byte
	Created time.Time
}

// 100mm is roughly four inches: large enough to scan from across a desk.
const qrSizeMM = 100

// Write renders the sheet to path as a portrait letter page.
func Write(sheet Sheet, path string) error {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 15, sheet.Label, "", 1, "C", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("Type: %s", strings.ToUpper(sheet.Type)), "", 1, "C", false, 0, "")
	doc.Ln(10)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("qr", opts, bytes.NewReader(sheet.QRPNG))

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	x := left + (pageWidth-left-right-qrSizeMM)/2
	doc.ImageOptions("qr", x, doc.GetY(), qrSizeMM, qrSizeMM, false, opts, 0, "")
	doc.SetY(doc.GetY() + qrSizeMM + 10)

	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 7, fmt.Sprintf("Encoded: %s", sheet.Content), "", "C", false)
	doc.Ln(5)

	doc.SetFont("Helvetica", "I", 10)
	doc.CellFormat(0, 8, fmt.Sprintf("Created: %s", sheet.Created.Format("January 2, 2006")), "", 1, "C", false, 0, "")

	if doc.Err() {
		return &DependencyError{Message: fmt.Sprintf("PDF renderer failed: %v", doc.Error())}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return &archive.FilesystemError{Op: "write PDF", Path: path, Err: err}
	}
	return nil
}
