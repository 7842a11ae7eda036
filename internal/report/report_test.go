package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/report"
)

var april = period.Period{Year: 2024, Month: time.April}

func sampleView() *overview.BudgetView {
	rows := []overview.Row{
		{
			Ref:      overview.SyntheticRef("Moradia"),
			Category: budget.StandardCategory("Moradia"),
			Planned:  decimal.RequireFromString("1000"),
			Actual:   decimal.RequireFromString("1500"),
		},
		{
			Ref:      overview.SyntheticRef("Lazer"),
			Category: budget.StandardCategory("Lazer"),
			Planned:  decimal.RequireFromString("250"),
			Actual:   decimal.RequireFromString("80.5"),
		},
	}

	return &overview.BudgetView{
		Period: april,
		Rows:   rows,
		Totals: overview.ComputeTotals(rows),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCSV(&buf, sampleView()))

	want := "category,planned,actual,difference\n" +
		"Moradia,1000.00,1500.00,-500.00\n" +
		"Lazer,250.00,80.50,169.50\n" +
		"Total,1250.00,1580.50,-330.50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyView(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCSV(&buf, &overview.BudgetView{Period: april}))

	assert.Equal(t, "category,planned,actual,difference\nTotal,0.00,0.00,0.00\n", buf.String())
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WritePDF(&buf, sampleView()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    report.Format
		wantErr bool
	}{
		{in: "csv", want: report.FormatCSV},
		{in: " PDF ", want: report.FormatPDF},
		{in: "", want: report.FormatPDF},
		{in: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := report.ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, report.ErrUnknownFormat))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Filename(t *testing.T) {
	assert.Equal(t, "budget-2024-04.csv", report.FormatCSV.Filename(sampleView()))
	assert.Equal(t, "application/pdf", report.FormatPDF.ContentType())
}
