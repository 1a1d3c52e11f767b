package certification

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	util "github.com/bunec-crvs/learning-api/internal/utils"
)

// PDFGenerator renders the certificate document under the media root and
// embeds a QR code pointing at the public verification endpoint.
type PDFGenerator struct {
	mediaRoot string
	baseURL   string
}

func NewPDFGenerator(mediaRoot, baseURL string) *PDFGenerator {
	return &PDFGenerator{
		mediaRoot: mediaRoot,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

func (g *PDFGenerator) Generate(ctx context.Context, cert *Certification, score float64) (string, error) {
	outDir := filepath.Join(g.mediaRoot, "certificates")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create certificates dir: %w", err)
	}

	verifyURL := fmt.Sprintf("%s/certifications/verify/%s", g.baseURL, cert.Code)
	qrPNG, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encode verification qr: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Certification", false)
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	// subtle diagonal mesh background
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	margin := 12.0
	for x := 0.0; x < width+70; x += 42 {
		pdf.Line(x-70, margin, x, height-margin)
		pdf.Line(x-70, height-margin, x, margin)
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(margin, margin+12, "CRVS TRAININGS")

	pdf.SetY(48)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Civil Status Registration Office (BUNEC) certifies that", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 14, strings.ToUpper(cert.User.Name), "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "has successfully completed all program requirements and is certified as a", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(220, 38, 38)
	pdf.CellFormat(0, 12, fmt.Sprintf("CRVS %s EXPERT", strings.ToUpper(cert.Course.Title)), "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Level: %s", cert.Level), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Final score: %.2f%%", score), "", 1, "C", false, 0, "")

	// signature block bottom-left
	sigY := height - 40
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(margin, sigY, "Alexandre M. YOMO")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Text(margin, sigY+5, "General Manager, BUNEC")
	pdf.SetLineWidth(0.4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(margin, sigY+8, margin+78, sigY+8)

	// verification QR bottom-right
	pdf.RegisterImageOptionsReader("verify-qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verify-qr", width-margin-26, height-48, 26, 26, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetY(height - 14)
	footer := fmt.Sprintf("Date of Issue: %s - Certificate Number: %s", util.IssueDate(time.Now()), cert.Code)
	pdf.CellFormat(0, 6, footer, "", 0, "C", false, 0, "")

	outPath := filepath.Join(outDir, cert.Code+".pdf")
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("write certificate pdf: %w", err)
	}

	return filepath.ToSlash(filepath.Join("certificates", cert.Code+".pdf")), nil
}
