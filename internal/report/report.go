// Package report renders a reconciled budget view as a downloadable file.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/money"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatPDF:
		return f, nil
	case "":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}

	return "application/pdf"
}

// Filename is the suggested download name, e.g. "budget-2024-04.pdf".
func (f Format) Filename(view *overview.BudgetView) string {
	return fmt.Sprintf("budget-%s.%s", view.Period, f)
}

func Write(w io.Writer, f Format, view *overview.BudgetView) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, view)
	case FormatPDF:
		return WritePDF(w, view)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

var header = []string{"category", "planned", "actual", "difference"}

// WriteCSV writes one line per row followed by a totals line. Amounts use a
// dot separator and two decimals so spreadsheets read them as numbers.
func WriteCSV(w io.Writer, view *overview.BudgetView) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range view.Rows {
		record := []string{row.Label(), fixed(row.Planned), fixed(row.Actual), fixed(row.Difference())}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	totals := []string{"Total", fixed(view.Totals.Planned), fixed(view.Totals.Actual), fixed(view.Totals.Difference())}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("writing csv totals: %w", err)
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func fixed(d decimal.Decimal) string { return d.StringFixed(2) }

var (
	headerColor = [3]int{38, 70, 83}
	overColor   = [3]int{192, 0, 0}
	underColor  = [3]int{0, 128, 0}
	bodyColor   = [3]int{40, 40, 40}
)

const (
	labelWidth  = 70.0
	amountWidth = 40.0
	rowHeight   = 7.0
)

// WritePDF renders the view as a single A4 table.
func WritePDF(w io.Writer, view *overview.BudgetView) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr(fmt.Sprintf("Orçamento %s", view.Period)), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("Orçamento %02d/%d", int(view.Period.Month), view.Period.Year)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(labelWidth, rowHeight, "Categoria", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, "Planejado", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, "Realizado", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, tr("Diferença"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)

	for i, row := range view.Rows {
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		amountRow(pdf, tr, row.Label(), row.Planned, row.Actual, row.Difference(), fill)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	amountRow(pdf, tr, "Total", view.Totals.Planned, view.Totals.Actual, view.Totals.Difference(), true)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}

	return nil
}

func amountRow(pdf *gofpdf.Fpdf, tr func(string) string, label string, planned, actual, diff decimal.Decimal, fill bool) {
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.CellFormat(labelWidth, rowHeight, tr(label), "1", 0, "L", fill, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, tr(money.Format(planned)), "1", 0, "R", fill, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, tr(money.Format(actual)), "1", 0, "R", fill, 0, "")

	switch {
	case diff.IsNegative():
		pdf.SetTextColor(overColor[0], overColor[1], overColor[2])
	case diff.IsPositive():
		pdf.SetTextColor(underColor[0], underColor[1], underColor[2])
	}

	pdf.CellFormat(amountWidth, rowHeight, tr(money.Format(diff)), "1", 1, "R", fill, 0, "")
}
