package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/agenciagand/orca/internal/cli"
	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/model"
)

// Page geometry in millimeters (A4 portrait, 20mm margins).
const (
	marginLeft  = 20.0
	marginRight = 190.0
	pageCenter  = 105.0
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DefaultFilename builds the proposal filename from the client company
// name and order number.
func DefaultFilename(s model.BudgetState, orderNumber string) string {
	company := whitespaceRun.ReplaceAllString(strings.TrimSpace(s.Client.CompanyName), "_")
	if company == "" {
		company = "cliente"
	}
	return fmt.Sprintf("orcamento_%s_%s.pdf", company, orderNumber)
}

// WritePDF renders the proposal to a PDF file. Rendering errors from
// the PDF library propagate unmodified; there is no retry or fallback.
func WritePDF(s model.BudgetState, totals engine.Totals, orderNumber string, branding Branding, now time.Time, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Proposta Comercial"), true)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(85, 5, tr(fmt.Sprintf("%s - %s", branding.Name, branding.Tagline)), "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 5, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(marginLeft, 20, tr(fmt.Sprintf("Orçamento - %s", branding.Name)))
	headerRight := fmt.Sprintf("Número: #%s", orderNumber)
	pdf.Text(marginRight-pdf.GetStringWidth(tr(headerRight)), 20, tr(headerRight))

	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(marginLeft, 25, marginRight, 25)

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(31, 41, 55)
	title := tr("Proposta Comercial")
	pdf.Text(pageCenter-pdf.GetStringWidth(title)/2, 45, title)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	issued := tr(fmt.Sprintf("Emitido em: %s", now.Format("02/01/2006")))
	pdf.Text(pageCenter-pdf.GetStringWidth(issued)/2, 52, issued)

	// Client block
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(31, 41, 55)
	pdf.Text(marginLeft, 70, tr("Dados do Cliente"))

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, 75)
	clientRows := [][2]string{
		{fmt.Sprintf("Empresa: %s", orMissing(s.Client.CompanyName)),
			fmt.Sprintf("Responsável: %s", orMissing(s.Client.ResponsibleName))},
		{fmt.Sprintf("E-mail: %s", orMissing(s.Client.Email)),
			fmt.Sprintf("Telefone: %s", orMissing(s.Client.Phone))},
	}
	for _, row := range clientRows {
		pdf.CellFormat(85, 7, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}

	// Investment box
	boxY := pdf.GetY() + 10
	pdf.SetFillColor(249, 250, 251)
	pdf.SetDrawColor(229, 231, 235)
	pdf.RoundedRect(marginLeft, boxY, 170, 50, 3, "1234", "FD")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(31, 41, 55)
	pdf.Text(30, boxY+15, tr("INVESTIMENTO TOTAL"))

	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(30, boxY+30, tr(cli.FormatBRL(totals.Total)))

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	if s.Financial.PlanType == model.PlanCompleto {
		pdf.Text(110, boxY+15, tr(fmt.Sprintf("Implementação: %s", cli.FormatBRL(totals.Implementation))))
		pdf.Text(110, boxY+22, tr(fmt.Sprintf("Mensalidade: %s", cli.FormatBRL(totals.MonthlyMaintenance))))
		pdf.Text(110, boxY+29, tr(fmt.Sprintf("Contrato: %s", cli.FormatMonths(s.Financial.ContractDuration))))
	} else {
		pdf.Text(110, boxY+15, tr(singlePayment))
		pdf.Text(110, boxY+22, tr(includedSupport))
	}
	if s.Discount.Percentage > 0 && s.Discount.Coupon != nil {
		pdf.Text(110, boxY+40, tr(fmt.Sprintf("Cupom %s: -%d%%", *s.Discount.Coupon, s.Discount.Percentage)))
	}

	// Details table
	detailsY := boxY + 65
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(31, 41, 55)
	pdf.Text(marginLeft, detailsY, tr("Detalhes do Projeto"))
	pdf.SetXY(marginLeft, detailsY+5)

	const labelW, valueW, lineH = 50.0, 120.0, 6.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(labelW, lineH+2, tr("Item"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueW, lineH+2, tr("Descrição"), "1", 1, "L", true, 0, "")

	pdf.SetTextColor(31, 41, 55)
	for _, row := range detailRows(s) {
		value := tr(row[1])
		lines := pdf.SplitText(value, valueW-4)
		rowH := float64(len(lines)) * lineH
		if rowH < lineH {
			rowH = lineH
		}

		x, y := pdf.GetX(), pdf.GetY()
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, rowH, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(valueW, lineH, value, "1", "L", false)
		pdf.SetXY(x, y+rowH)
	}

	// Observations
	if s.Observations != "" {
		obsY := pdf.GetY() + 15
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(31, 41, 55)
		pdf.Text(marginLeft, obsY, tr("Observações"))

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(107, 114, 128)
		pdf.SetXY(marginLeft, obsY+4)
		pdf.MultiCell(170, 5, tr(s.Observations), "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}
