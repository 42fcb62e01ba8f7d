// Package export serializes record sets into the shop's delimited-text
// documents. The format is fixed: a literal header row, one row per
// record, every field double-quoted with embedded quotes doubled, rows
// newline-terminated. encoding/csv quotes minimally per RFC 4180 and
// cannot emit the unconditional quoting this format requires, so the
// writer is hand-rolled.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/bmsprints/bmsprints/internal/models"
)

const (
	FilenameServices = "bmsprints_services.csv"
	FilenameOrders   = "bmsprints_orders.csv"

	servicesHeader = "id,name,price,qty,unit,img"
	ordersHeader   = "id,createdAt,customer,service,qty,price,paid"
)

// ReportFilename carries the generation date of the exported report.
func ReportFilename(generatedAt time.Time) string {
	return "bmsprints_report_" + generatedAt.Format("2006-01-02") + ".csv"
}

// Services renders the catalog document.
func Services(list []models.Service) []byte {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			formatNumber(s.Price),
			strconv.Itoa(s.Qty),
			s.Unit,
			s.Img,
		})
	}
	return document(servicesHeader, rows)
}

// Orders renders the ledger document; report exports reuse it over the
// report's filtered order subset.
func Orders(list []models.Order) []byte {
	rows := make([][]string, 0, len(list))
	for _, o := range list {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			o.CreatedAt.Format(time.RFC3339),
			o.Customer,
			o.ServiceName,
			strconv.Itoa(o.Qty),
			formatNumber(o.Price),
			yesNo(o.Paid),
		})
	}
	return document(ordersHeader, rows)
}

// document joins the literal header with quoted rows. The header row is
// part of the external interface and is never quoted or derived.
func document(header string, rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(header)
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
