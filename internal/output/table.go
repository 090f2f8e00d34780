package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coreyphillips/bdk-rn/pkg/bdk"
)

// Table renders tabular data for text output.
type Table struct {
	headers   []string
	rows      [][]string
	separator string
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		separator: "  ",
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}

	widths := t.widths()

	if len(t.headers) > 0 {
		if err := t.renderRow(w, t.headers, widths); err != nil {
			return err
		}
		rule := make([]string, len(widths))
		for i, width := range widths {
			rule[i] = strings.Repeat("-", width)
		}
		if err := t.renderRow(w, rule, widths); err != nil {
			return err
		}
	}

	for _, row := range t.rows {
		if err := t.renderRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

// String returns the table as a string.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

func (t *Table) widths() []int {
	cols := len(t.headers)
	for _, row := range t.rows {
		cols = max(cols, len(row))
	}

	widths := make([]int, cols)
	for _, row := range append([][]string{t.headers}, t.rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

func (t *Table) renderRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = cell + strings.Repeat(" ", width-utf8.RuneCountInString(cell))
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, t.separator), " "))
	return err
}

// WriteTransactions renders confirmed and pending transaction lists as
// two tables. Empty lists render as "(none)".
func WriteTransactions(w io.Writer, txs *bdk.Transactions) error {
	if txs == nil {
		txs = &bdk.Transactions{}
	}
	if _, err := fmt.Fprintln(w, "Confirmed:"); err != nil {
		return err
	}
	if err := WriteConfirmed(w, txs.Confirmed); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nPending:"); err != nil {
		return err
	}
	return WritePending(w, txs.Pending)
}

// WriteConfirmed renders confirmed transactions in engine order.
func WriteConfirmed(w io.Writer, txs []bdk.ConfirmedTransaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	table := NewTable("TXID", "HEIGHT", "TIME", "RECEIVED", "SENT", "FEE")
	for _, tx := range txs {
		table.AddRow(
			tx.Txid,
			strconv.FormatUint(uint64(tx.BlockHeight), 10),
			time.Unix(int64(tx.BlockTimestamp), 0).UTC().Format(time.RFC3339), //nolint:gosec // G115: block timestamps fit in int64
			strconv.FormatUint(tx.Received, 10),
			strconv.FormatUint(tx.Sent, 10),
			strconv.FormatUint(tx.Fees, 10),
		)
	}
	return table.Render(w)
}

// WritePending renders unconfirmed transactions.
func WritePending(w io.Writer, txs []bdk.PendingTransaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	table := NewTable("TXID", "RECEIVED", "SENT", "FEE")
	for _, tx := range txs {
		table.AddRow(
			tx.Txid,
			strconv.FormatUint(tx.Received, 10),
			strconv.FormatUint(tx.Sent, 10),
			strconv.FormatUint(tx.Fees, 10),
		)
	}
	return table.Render(w)
}
