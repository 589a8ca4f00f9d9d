// Package report renders printable PDF summaries of a season: the night
// tournament bracket and the day encounter log.
package report

import (
	"bytes"
	"fmt"
	"math"

	"arena/internal/battle"
	"arena/internal/scenario"
	"arena/internal/tournament"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 842
	pageH     = 595
	margin    = 36
	headerH   = 64
	footerH   = 56
	colGap    = 18
	titleSize = 16
	maxBoxH   = 34.0
	minBoxH   = 14.0
	maxLabel  = 22
)

// Bracket returns PDF bytes with one column per round. Each match is a box
// with the winner in bold; entries that advanced unopposed are listed in
// italics under the round's matches. A nil champion prints as undecided.
func Bracket(title string, rounds []tournament.Round, champion *battle.Trainer) ([]byte, error) {
	pdf := newDoc()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	bracketPage(pdf, tr, title, rounds, champion)
	return output(pdf)
}

// Season returns the bracket page followed by a page listing every day
// encounter of res.
func Season(res *scenario.Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("report: nil season result")
	}
	pdf := newDoc()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	bracketPage(pdf, tr, res.Title, res.Rounds, res.Champion)
	dayPage(pdf, tr, res)
	return output(pdf)
}

func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parchment starts a page with the background, border and heading.
func parchment(pdf *gofpdf.Fpdf, tr func(string) string, heading, sub string) {
	pdf.AddPage()
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawWavyBorder(pdf)

	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetLineWidth(1)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin+6)
	pdf.CellFormat(pageW-2*margin, 18, tr(heading), "", 0, "C", false, 0, "")
	if sub != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(margin, margin+26)
		pdf.CellFormat(pageW-2*margin, 12, tr(sub), "", 0, "C", false, 0, "")
	}
}

func bracketPage(pdf *gofpdf.Fpdf, tr func(string) string, title string, rounds []tournament.Round, champion *battle.Trainer) {
	if title == "" {
		title = "Tournament"
	}
	parchment(pdf, tr, title, fmt.Sprintf("%d round(s)", len(rounds)))

	if len(rounds) > 0 {
		top := float64(margin + headerH)
		height := float64(pageH-margin-footerH) - top
		colW := (float64(pageW-2*margin) - colGap*float64(len(rounds)-1)) / float64(len(rounds))
		for i, r := range rounds {
			x := float64(margin) + float64(i)*(colW+colGap)
			drawRound(pdf, tr, r, roundLabel(r.Number, len(rounds)), x, top, colW, height)
		}
	}
	drawChampion(pdf, tr, champion)
}

func roundLabel(number, total int) string {
	switch {
	case number == total:
		return "Final"
	case number == total-1 && total > 2:
		return "Semifinal"
	default:
		return fmt.Sprintf("Round %d", number)
	}
}

func drawRound(pdf *gofpdf.Fpdf, tr func(string) string, r tournament.Round, label string, x, top, w, height float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetXY(x, top-16)
	pdf.CellFormat(w, 12, label, "B", 0, "C", false, 0, "")

	slots := len(r.Matches) + len(r.Byes)
	if slots == 0 {
		return
	}
	slotH := height / float64(slots)
	boxH := math.Max(minBoxH, math.Min(maxBoxH, slotH-4))
	font := math.Max(5, math.Min(9, boxH/2-2))

	for i, m := range r.Matches {
		y := top + float64(i)*slotH + (slotH-boxH)/2
		drawMatch(pdf, tr, m, x, y, w, boxH, font)
	}
	for i, b := range r.Byes {
		y := top + float64(len(r.Matches)+i)*slotH + (slotH-boxH/2)/2
		pdf.SetFont("Helvetica", "I", font)
		pdf.SetTextColor(110, 80, 50)
		pdf.SetXY(x, y)
		pdf.CellFormat(w, boxH/2, tr(truncate(b.Name)+" (bye)"), "", 0, "L", false, 0, "")
	}
	pdf.SetTextColor(80, 50, 30)
}

func drawMatch(pdf *gofpdf.Fpdf, tr func(string) string, m tournament.Match, x, y, w, h, font float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(252, 246, 230)
	pdf.SetLineWidth(1)
	pdf.Rect(x, y, w, h, "FD")
	pdf.Line(x, y+h/2, x+w, y+h/2)

	for i, t := range []*battle.Trainer{m.Home, m.Away} {
		style := ""
		pdf.SetTextColor(110, 80, 50)
		if t == m.Winner {
			style = "B"
			pdf.SetTextColor(40, 25, 15)
		}
		pdf.SetFont("Helvetica", style, font)
		pdf.SetXY(x+3, y+float64(i)*h/2)
		pdf.CellFormat(w-6, h/2, tr(truncate(t.Name)), "", 0, "L", false, 0, "")
	}
	pdf.SetDrawColor(80, 50, 30)
}

func drawChampion(pdf *gofpdf.Fpdf, tr func(string) string, champion *battle.Trainer) {
	name := "Undecided"
	if champion != nil {
		name = champion.Name
	}
	y := float64(pageH - margin - footerH + 12)
	pdf.SetDrawColor(180, 40, 40)
	pdf.SetLineWidth(2)
	pdf.Rect(pageW/2-150, y, 300, 30, "D")
	pdf.SetLineWidth(1)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(180, 40, 40)
	pdf.SetXY(pageW/2-150, y)
	pdf.CellFormat(300, 30, tr("Champion: "+name), "", 0, "C", false, 0, "")
	pdf.SetTextColor(80, 50, 30)
	pdf.SetDrawColor(80, 50, 30)
}

func dayPage(pdf *gofpdf.Fpdf, tr func(string) string, res *scenario.Result) {
	won := 0
	for _, e := range res.Day {
		if e.Won {
			won++
		}
	}
	parchment(pdf, tr, "Day Encounters", fmt.Sprintf("%d encounter(s), %d won", len(res.Day), won))

	cols := []struct {
		label string
		w     float64
	}{
		{"Trainer", 220}, {"Wild", 220}, {"Level", 80}, {"Result", 120}, {"Recruited", 100},
	}
	const rowH = 14.0
	top := float64(margin + headerH)
	rows := int((float64(pageH-margin) - top - rowH) / rowH)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(margin, top)
		for _, c := range cols {
			pdf.CellFormat(c.w, rowH, c.label, "B", 0, "L", false, 0, "")
		}
	}
	header()
	if len(res.Day) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(margin, top+rowH)
		pdf.CellFormat(400, rowH, "No wild encounters this season.", "", 0, "L", false, 0, "")
		return
	}

	pdf.SetFont("Helvetica", "", 8)
	line := 0
	for _, e := range res.Day {
		if line == rows {
			parchment(pdf, tr, "Day Encounters", "continued")
			header()
			pdf.SetFont("Helvetica", "", 8)
			line = 0
		}
		result := "lost"
		if e.Won {
			result = "won"
		}
		recruited := ""
		if e.Recruited {
			recruited = "yes"
		}
		cells := []string{truncate(e.Trainer), truncate(e.Wild), fmt.Sprint(e.Level), result, recruited}
		pdf.SetXY(margin, top+float64(line+1)*rowH)
		for i, c := range cols {
			pdf.CellFormat(c.w, rowH, tr(cells[i]), "", 0, "L", false, 0, "")
		}
		line++
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxLabel {
		return string(r[:maxLabel-3]) + "..."
	}
	return s
}

// drawWavyBorder draws an organic black border around the page.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin/2, margin/2, pageW-margin, pageH-margin, 14, 3)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// wavyRectPoints returns polygon points for a rectangle with sinusoidal wobble on each side.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+4)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + t*w + amp*math.Sin(float64(i)*0.7), Y: y + amp*math.Cos(float64(i)*0.5)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + w + amp*math.Sin(float64(i)*0.6), Y: y + t*h + amp*math.Cos(float64(i)*0.4)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + w - t*w + amp*math.Sin(float64(i)*0.8), Y: y + h + amp*math.Cos(float64(i)*0.3)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + amp*math.Sin(float64(i)*0.5), Y: y + h - t*h + amp*math.Cos(float64(i)*0.6)})
	}
	return pts
}
