package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"resumatch/internal/domain/analysis"
)

// Data holds everything a rendered report needs. Job fields are empty for
// ad hoc job description analyses.
type Data struct {
	Candidate   string
	JobTitle    string
	Company     string
	Result      analysis.Result
	GeneratedAt time.Time
}

// RenderPDF writes a single-page match report.
func RenderPDF(w io.Writer, d Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Resume Match Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Resume Match Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Candidate: %s", d.Candidate), "", 1, "L", false, 0, "")
	if d.JobTitle != "" {
		target := d.JobTitle
		if d.Company != "" {
			target += " at " + d.Company
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Position: %s", target), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", d.GeneratedAt.Format("2 Jan 2006 15:04 MST")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	setScoreColor(pdf, d.Result.Score)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 14, fmt.Sprintf("%.2f%%", d.Result.Score), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	section(pdf, "Matched Skills")
	bulletList(pdf, d.Result.MatchedSkills, "None of the required skills were found.")

	section(pdf, "Missing Skills")
	bulletList(pdf, d.Result.MissingSkills, "No skill gaps detected.")

	section(pdf, "Suggestions")
	bulletList(pdf, d.Result.Suggestions, "")

	section(pdf, "Critique")
	bulletList(pdf, d.Result.Critique, "")

	section(pdf, fmt.Sprintf("ATS Compatibility: %d/100", d.Result.ATSScore))
	bulletList(pdf, d.Result.ATSFindings, "No formatting issues detected.")

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func bulletList(pdf *gofpdf.Fpdf, items []string, empty string) {
	if len(items) == 0 {
		if empty != "" {
			pdf.MultiCell(0, 5, empty, "", "L", false)
		}
		pdf.Ln(3)
		return
	}
	for _, it := range items {
		pdf.MultiCell(0, 5, "- "+strings.TrimSpace(it), "", "L", false)
	}
	pdf.Ln(3)
}

func setScoreColor(pdf *gofpdf.Fpdf, score float64) {
	switch {
	case score >= 80:
		pdf.SetTextColor(34, 139, 34)
	case score >= 50:
		pdf.SetTextColor(218, 165, 32)
	default:
		pdf.SetTextColor(178, 34, 34)
	}
}
