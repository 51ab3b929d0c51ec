package document

import (
	"bytes"
	"fmt"

	"github.com/signintech/gopdf"
)

type IRenderer interface {
	Render(doc *Document) ([]byte, error)
}

type pdfRenderer struct {
	fontPaths     []string
	boldFontPaths []string
}

// NewPDFRenderer renders laid-out documents to A4 PDF bytes using
// DejaVu fonts, trying the usual distro locations.
func NewPDFRenderer() IRenderer {
	return &pdfRenderer{
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
		boldFontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		},
	}
}

const (
	pageWidth  = 595.28
	pageHeight = 841.89
	marginX    = 40.0
	marginTop  = 50.0
	footerY    = pageHeight - 70.0

	regularFont = "DejaVu"
	boldFont    = "DejaVu-Bold"
)

var tableColumnX = []float64{marginX, 130, 250, 480}

func (r *pdfRenderer) Render(doc *Document) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := loadFont(&pdf, regularFont, r.fontPaths); err != nil {
		return nil, fmt.Errorf("failed to load font for PDF: %w", err)
	}
	// Section titles fall back to the regular face when no bold TTF is
	// installed.
	haveBold := loadFont(&pdf, boldFont, r.boldFontPaths) == nil

	for _, page := range doc.Pages {
		pdf.AddPage()
		pdf.SetY(marginTop)

		for _, line := range page.Lines {
			if err := r.drawLine(&pdf, line, haveBold); err != nil {
				return nil, err
			}
		}

		pdf.SetY(footerY)
		for _, line := range page.Footer {
			if err := r.drawFooterLine(&pdf, line); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func loadFont(pdf *gopdf.GoPdf, name string, paths []string) error {
	var lastErr error
	for _, path := range paths {
		if err := pdf.AddTTFFont(name, path); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("no usable TTF found for %s: %w", name, lastErr)
}

func (r *pdfRenderer) drawLine(pdf *gopdf.GoPdf, line Line, haveBold bool) error {
	titleFace := regularFont
	if haveBold {
		titleFace = boldFont
	}

	switch line.Kind {
	case KindTitle:
		if err := pdf.SetFont(titleFace, "", 20); err != nil {
			return err
		}
		r.cellAligned(pdf, line.Text, line.Align)
		pdf.Br(30)

	case KindMeta:
		if err := pdf.SetFont(regularFont, "", 11); err != nil {
			return err
		}
		r.cellAligned(pdf, line.Text, line.Align)
		pdf.Br(15)

	case KindRule:
		y := pdf.GetY()
		pdf.SetLineWidth(0.7)
		pdf.Line(marginX, y, pageWidth-marginX, y)
		pdf.Br(12)

	case KindTableHead, KindTableRow:
		size := 10.0
		face := regularFont
		if line.Kind == KindTableHead && haveBold {
			face = boldFont
		}
		if err := pdf.SetFont(face, "", size); err != nil {
			return err
		}
		y := pdf.GetY()
		for i, cell := range line.Cells {
			if i >= len(tableColumnX) {
				break
			}
			pdf.SetXY(tableColumnX[i], y)
			pdf.Cell(nil, cell)
		}
		pdf.SetXY(marginX, y)
		pdf.Br(15)

	case KindPlaceholder:
		if err := pdf.SetFont(regularFont, "", 11); err != nil {
			return err
		}
		pdf.SetX(marginX)
		pdf.Cell(nil, line.Text)
		pdf.Br(15)

	case KindSectionTitle:
		if err := pdf.SetFont(titleFace, "", 13); err != nil {
			return err
		}
		pdf.SetX(marginX)
		pdf.Cell(nil, line.Text)
		pdf.Br(17)

	case KindBody:
		if err := pdf.SetFont(regularFont, "", 11); err != nil {
			return err
		}
		pdf.SetX(marginX)
		pdf.Cell(nil, line.Text)
		pdf.Br(14)

	case KindSpacer:
		pdf.Br(10)
	}

	return nil
}

func (r *pdfRenderer) drawFooterLine(pdf *gopdf.GoPdf, line Line) error {
	if line.Kind == KindRule {
		y := pdf.GetY()
		pdf.SetLineWidth(0.5)
		pdf.Line(marginX, y, pageWidth-marginX, y)
		pdf.Br(10)
		return nil
	}

	if err := pdf.SetFont(regularFont, "", 9); err != nil {
		return err
	}
	r.cellAligned(pdf, line.Text, line.Align)
	pdf.Br(11)
	return nil
}

func (r *pdfRenderer) cellAligned(pdf *gopdf.GoPdf, text string, align Align) {
	x := marginX
	if w, err := pdf.MeasureTextWidth(text); err == nil {
		switch align {
		case AlignCenter:
			x = (pageWidth - w) / 2
		case AlignRight:
			x = pageWidth - marginX - w
		}
	}
	pdf.SetX(x)
	pdf.Cell(nil, text)
}
