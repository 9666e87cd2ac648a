// Package receipt renders a payment receipt PDF for a booking, covering
// the quote totals and, for EMI bookings, every installment paid to date.
package receipt

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"travel-webapp/emi"
)

// Data is everything the receipt needs, loaded by the handler so the
// builder stays free of database access.
type Data struct {
	BookingId    string
	CustomerName string
	PackageName  string
	TravelDate   string
	AdultCount   int
	ChildCount   int
	TotalPrice   float64
	GstPrice     float64
	FinalPrice   float64
	Plan         *emi.Plan
	GeneratedAt  time.Time
}

// Build returns the PDF bytes and a download filename.
func Build(d Data) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No : RCP-%s", safe(d.BookingId, "-")),
		fmt.Sprintf("Date       : %s", d.GeneratedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Customer   : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Package    : %s", safe(d.PackageName, "-")),
		fmt.Sprintf("Travel Date: %s", safe(d.TravelDate, "-")),
		fmt.Sprintf("Travellers : %d adult(s), %d child(ren)", d.AdultCount, d.ChildCount),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price Summary:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Package Total : "+formatRupee(wholeRupees(d.TotalPrice)))
	pdf.Ln(6)
	pdf.Cell(0, 6, "GST           : "+formatRupee(wholeRupees(d.GstPrice)))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Final Price   : "+formatRupee(wholeRupees(d.FinalPrice)))
	pdf.Ln(10)

	if d.Plan != nil {
		writePlan(pdf, d.Plan)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt covers payments received to date. It is not a travel voucher.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(d.BookingId))
	return buf.Bytes(), filename, nil
}

func writePlan(pdf *gofpdf.Fpdf, plan *emi.Plan) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("EMI Plan (%d months, %s/month):", plan.TotalTenure, formatRupee(plan.MonthlyAmount)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	var paidTotal int64
	for _, inst := range plan.Installments {
		marker := "pending"
		if inst.Status == emi.StatusPaid {
			marker = "PAID"
			paidTotal += inst.Amount
		}
		pdf.Cell(0, 6, fmt.Sprintf("#%d  due %s  %s  [%s]",
			inst.InstallmentNumber,
			inst.DueDate.Format("2006-01-02"),
			formatRupee(inst.Amount),
			marker))
		pdf.Ln(6)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Paid so far: %s (%d of %d installments)",
		formatRupee(paidTotal), plan.PaidCount, plan.TotalTenure))
	pdf.Ln(10)
}

// wholeRupees rounds a quote total to the nearest rupee for display;
// truncation would understate fractional totals.
func wholeRupees(v float64) int64 {
	return int64(math.Round(v))
}

// formatRupee renders a whole-rupee amount with thousand separators.
func formatRupee(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	str := strconv.FormatInt(amount, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return sign + "Rs " + out.String()
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(strings.TrimSpace(s))
}
