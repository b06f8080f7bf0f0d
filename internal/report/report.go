// Package report выгружает строки журнала за период в CSV и XLSX.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Spok95/shopdesk/internal/balance"
	"github.com/xuri/excelize/v2"
)

// Header: фиксированная шапка CSV.
var Header = []string{"Typ", "Datum", "Betrag", "Details"}

const (
	entriesSheet = "Journal"
	summarySheet = "Bilanz"
)

func WriteCSV(w io.Writer, entries []balance.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{string(e.Type), e.Date, e.Amount.StringFixed(2), e.Details}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX пишет книгу из двух листов: журнал и итоги.
func WriteXLSX(w io.Writer, entries []balance.Entry, sum balance.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), entriesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(entriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	row := 2
	for _, e := range entries {
		amount, _ := e.Amount.Round(2).Float64()
		excelRow := []interface{}{string(e.Type), e.Date, amount, e.Details}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(entriesSheet, cell, &excelRow); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		row++
	}
	_ = f.SetColWidth(entriesSheet, "D", "D", 48)

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	lines := [][]interface{}{
		{"Einnahmen", sum.Income.StringFixed(2)},
		{"Ausgaben", sum.Expenses.StringFixed(2)},
		{"Löhne", sum.Wages.StringFixed(2)},
		{"Gewinn", sum.Profit.StringFixed(2)},
	}
	for i, l := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &l); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	}

	return f.Write(w)
}
