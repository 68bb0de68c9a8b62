// Package export renders the tracker state as a PDF plan document.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"plafond/internal/cli"
	"plafond/internal/engine"
	"plafond/internal/model"
)

const disclaimer = "Avertissement : Cet outil est fourni à titre indicatif uniquement et ne " +
	"constitue pas un conseil fiscal ou juridique. Les calculs sont basés sur le plafond de " +
	"77 700 € HT applicable aux prestations de services (BNC). Pour toute question " +
	"spécifique, consultez un expert-comptable."

// Plan bundles everything the report consumes, read-only.
type Plan struct {
	State       model.State
	Snapshot    model.Snapshot
	GeneratedAt time.Time
}

// Filename returns the report filename for a generation date,
// e.g. "plafond-plan-2026-09-01.pdf".
func Filename(at time.Time) string {
	return fmt.Sprintf("plafond-plan-%s.pdf", at.Format("2006-01-02"))
}

// Save writes the report into dir and returns the full path.
func Save(dir string, p Plan) (string, error) {
	path := filepath.Join(dir, Filename(p.GeneratedAt))
	if err := build(p).OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// Write renders the report to w.
func Write(w io.Writer, p Plan) error {
	if err := build(p).Output(w); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

type reportDoc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func build(p Plan) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	d := &reportDoc{
		pdf: pdf,
		// Latin-1 translator covers French accents and the euro sign.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}

	d.title("Plafond - Mon Plan")
	d.subtitle("Généré le " + frenchDate(p.GeneratedAt))

	d.section("Plafond Micro-Entreprise")
	d.row("Plafond annuel (HT)", engine.FormatEuro(engine.Threshold), false)
	d.row("Applicable aux", "Prestations de services (BNC)", false)

	d.section("Situation Actuelle")
	d.row("CA encaissé", engine.FormatEuro(p.State.EarnedCA), false)
	d.row("CA sécurisé", engine.FormatEuro(p.State.SecuredCA), false)
	d.row("CA total engagé", engine.FormatEuro(p.Snapshot.TotalEngaged), true)
	d.row("CA restant autorisé", engine.FormatEuro(p.Snapshot.RemainingCA), true)
	d.row("Progression", engine.FormatPercent(p.Snapshot.ProgressPercentage)+" du plafond", false)
	if p.State.VATEnabled {
		d.row("TVA appliquée", fmt.Sprintf("%g%%", p.State.VATRate), false)
	}

	d.section("Projection")
	d.row("Mois restants dans l'année", fmt.Sprintf("%d mois", p.Snapshot.MonthsRemaining), false)
	limit := "N/A"
	if p.Snapshot.MonthsRemaining > 0 {
		limit = engine.FormatEuro(p.Snapshot.MonthlyLimit)
	}
	d.row("Montant max conseillé/mois", limit, false)
	if p.Snapshot.OverflowMonth != nil {
		d.row("Attention", "Risque de dépassement en "+*p.Snapshot.OverflowMonth, false)
	}

	d.section("Recommandation")
	d.row("Statut", cli.StatusLabel(p.Snapshot.Recommendation.Level), false)
	d.paragraph(p.Snapshot.Recommendation.Message)

	if len(p.State.Missions) > 0 {
		d.section("Missions Simulées")
		for i, m := range p.State.Missions {
			label := fmt.Sprintf("Mission %d: %g jours à %s/j",
				i+1, m.Days, engine.FormatEuro(m.TJM))
			d.row(label, engine.FormatEuro(m.AmountHT)+" HT", false)
		}
	}

	d.footer()
	return pdf
}

func (d *reportDoc) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 20)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *reportDoc) subtitle(text string) {
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(2)
}

func (d *reportDoc) section(title string) {
	d.pdf.Ln(6)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.CellFormat(0, 7, d.tr(title), "", 1, "L", false, 0, "")
	d.pdf.SetDrawColor(200, 200, 200)
	x, y := d.pdf.GetX(), d.pdf.GetY()
	pageW, _ := d.pdf.GetPageSize()
	d.pdf.Line(x, y, pageW-20, y)
	d.pdf.Ln(3)
}

func (d *reportDoc) row(label, value string, highlight bool) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.CellFormat(110, 6, d.tr(label), "", 0, "L", false, 0, "")
	if highlight {
		d.pdf.SetFont("Helvetica", "B", 11)
	}
	d.pdf.CellFormat(0, 6, d.tr(value), "", 1, "R", false, 0, "")
}

func (d *reportDoc) paragraph(text string) {
	d.pdf.Ln(2)
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "L", false)
}

func (d *reportDoc) footer() {
	_, pageH := d.pdf.GetPageSize()
	d.pdf.SetY(pageH - 40)
	d.pdf.SetDrawColor(200, 200, 200)
	x, y := d.pdf.GetX(), d.pdf.GetY()
	pageW, _ := d.pdf.GetPageSize()
	d.pdf.Line(x, y, pageW-20, y)
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.MultiCell(0, 4, d.tr(disclaimer), "", "L", false)
}

func frenchDate(at time.Time) string {
	return fmt.Sprintf("%d %s %d", at.Day(), engine.MonthName(int(at.Month())-1), at.Year())
}
