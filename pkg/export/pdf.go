package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"tableflip.dev/sojourn/pkg/paginate"
	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/trip"
)

// Handle owns an in-memory rendered document. Callers must Release a
// handle before requesting a new one; handles are not reusable after
// Release.
type Handle struct {
	buf      *bytes.Buffer
	pages    int
	released bool
}

// Bytes returns the rendered document. Nil after Release.
func (h *Handle) Bytes() []byte {
	if h == nil || h.released {
		return nil
	}
	return h.buf.Bytes()
}

// Pages reports how many physical pages were rendered.
func (h *Handle) Pages() int { return h.pages }

// Release frees the buffer. Safe to call twice.
func (h *Handle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.buf = nil
}

// PageError locates a rendering failure so the caller can retry just that
// export.
type PageError struct {
	Section scope.Section
	Page    int
	Err     error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("export: pdf: section %s page %d: %v", e.Section, e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// Physical page geometry (A4, millimetres).
const (
	pdfMargin     = 15.0
	footerBand    = 12.0
	cardBaseMM    = 13.0
	descLineMM    = 4.5
	dayHeaderMM   = 12.0
	gridRowMM     = 7.0
	imageHeightMM = 30.0

	// maxOrphanSpacerMM bounds the blank spacer the orphan correction may
	// insert. A block needing more than this is degenerate; leave the
	// natural break instead. Tune against the target page geometry.
	maxOrphanSpacerMM = 60.0
)

// PDF renders the paginated document and returns an in-memory handle.
func PDF(data *trip.Data, o Options) (*Handle, error) {
	pages := paginate.Paginate(data, scope.Resolve(o.Scope, data), o.PerPage)

	r := &pdfRenderer{
		pdf:  fpdf.New("P", "mm", "A4", ""),
		tpl:  o.Template,
		data: data,
	}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetTitle(data.Name, true)
	r.pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	r.pdf.SetAutoPageBreak(true, pdfMargin+footerBand)
	r.pdf.AliasNbPages("")
	r.pdf.SetFooterFunc(func() {
		r.pdf.SetY(-(pdfMargin + footerBand) + 4)
		r.pdf.SetFont("Helvetica", "I", 8)
		r.pdf.SetTextColor(120, 120, 120)
		r.pdf.CellFormat(0, 6, r.tr(r.footer), "", 0, "C", false, 0, "")
	})

	for _, page := range pages {
		r.renderPage(page)
		r.footer = page.Footer()
		if r.pdf.Err() {
			return nil, &PageError{Section: page.Section, Page: page.Number, Err: r.pdf.Error()}
		}
	}

	buf := &bytes.Buffer{}
	if err := r.pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("export: pdf: %w", err)
	}
	return &Handle{buf: buf, pages: r.pdf.PageNo()}, nil
}

type pdfRenderer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	tpl    scope.Template
	data   *trip.Data
	footer string
}

func (r *pdfRenderer) renderPage(page paginate.Page) {
	fresh := r.pdf.PageNo() == 0 ||
		!r.tpl.DenseDates ||
		page.Section != scope.SectionItinerary

	if fresh {
		r.pdf.AddPage()
	} else if !page.Continuation {
		// Dense layout flows days onto shared sheets; keep a day header
		// and its first card together across the physical break.
		needed := dayHeaderMM
		if len(page.Items) > 0 {
			needed += r.cardHeight(page.Items[0])
		}
		r.fitBlock(needed)
	}

	switch page.Section {
	case scope.SectionItinerary:
		r.dayHeader(page)
		for _, it := range page.Items {
			r.card(it)
		}
	case scope.SectionShopping:
		r.sectionHeader(page.Title)
		for _, e := range r.data.Shopping {
			r.gridRow(e.Name, e.Category, money(e.EstimatedPrice, ""))
		}
	case scope.SectionBudget:
		r.sectionHeader(page.Title)
		total := 0.0
		for _, e := range r.data.Budget {
			r.gridRow(e.Name, e.Category, money(e.Cost, e.Currency))
			total += e.Cost
		}
		r.gridRow("Total", "", money(total, ""))
	case scope.SectionEmergency:
		r.sectionHeader(page.Title)
		for _, e := range append(trip.DefaultEmergencyNumbers(), r.data.Emergency...) {
			r.gridRow(e.Label, e.Note, e.Phone)
		}
	case scope.SectionPacking:
		r.sectionHeader(page.Title)
		for _, e := range r.data.Packing {
			r.gridRow(e.Name, e.Category, "")
		}
	}
}

// fitBlock pushes an atomic block onto the next physical page when it
// would straddle the boundary, unless the required spacer is implausibly
// large.
func (r *pdfRenderer) fitBlock(needed float64) {
	_, pageH := r.pdf.GetPageSize()
	limit := pageH - pdfMargin - footerBand
	remaining := limit - r.pdf.GetY()
	if needed <= remaining {
		return
	}
	if remaining > maxOrphanSpacerMM {
		// Degenerate, too-tall block; a spacer this big signals bad input
		// rather than a layout problem. Keep the natural break.
		return
	}
	r.pdf.AddPage()
}

func (r *pdfRenderer) dayHeader(page paginate.Page) {
	a := r.tpl.Accent
	r.pdf.SetTextColor(a[0], a[1], a[2])
	if page.Continuation {
		r.pdf.SetFont("Helvetica", "I", 11)
		r.pdf.CellFormat(0, 8, r.tr(page.Header()), "", 1, "L", false, 0, "")
	} else {
		r.pdf.SetFont("Helvetica", "B", 14)
		r.pdf.CellFormat(0, 9, r.tr(page.Header()), "", 1, "L", false, 0, "")
	}
	if r.tpl.HeaderRule && !page.Continuation {
		r.pdf.SetDrawColor(a[0], a[1], a[2])
		x := r.pdf.GetX()
		y := r.pdf.GetY()
		r.pdf.Line(x, y, 210-pdfMargin, y)
	}
	r.pdf.Ln(2)
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *pdfRenderer) sectionHeader(title string) {
	a := r.tpl.Accent
	r.pdf.SetTextColor(a[0], a[1], a[2])
	r.pdf.SetFont("Helvetica", "B", 14)
	r.pdf.CellFormat(0, 9, r.tr(title), "", 1, "L", false, 0, "")
	if r.tpl.HeaderRule {
		y := r.pdf.GetY()
		r.pdf.SetDrawColor(a[0], a[1], a[2])
		r.pdf.Line(pdfMargin, y, 210-pdfMargin, y)
	}
	r.pdf.Ln(3)
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *pdfRenderer) card(it *trip.Item) {
	startY := r.pdf.GetY()

	r.pdf.SetFont("Helvetica", "B", 11)
	title := it.Name
	if it.Details.LocalName != "" {
		title += " / " + it.Details.LocalName
	}
	r.pdf.CellFormat(140, 6, r.tr(title), "", 0, "L", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.CellFormat(0, 6, r.tr(clockRange(it)), "", 1, "R", false, 0, "")

	meta := r.metaLine(it)
	if meta != "" {
		r.pdf.SetFont("Helvetica", "", 9)
		r.pdf.SetTextColor(90, 90, 90)
		r.pdf.CellFormat(0, 5, r.tr(meta), "", 1, "L", false, 0, "")
		r.pdf.SetTextColor(0, 0, 0)
	}

	if desc := plainText(it.Details.Description); desc != "" {
		r.pdf.SetFont("Helvetica", "", 9)
		r.pdf.MultiCell(0, descLineMM, r.tr(desc), "", "L", false)
	}

	if ref := it.Details.ImageRef; ref != "" {
		if _, err := os.Stat(ref); err == nil {
			r.pdf.ImageOptions(ref, r.pdf.GetX(), r.pdf.GetY(), 0, imageHeightMM,
				true, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	r.pdf.Ln(2)
	if r.tpl.CardOutline {
		r.pdf.SetDrawColor(200, 200, 200)
		r.pdf.Rect(pdfMargin-2, startY-1, 210-2*pdfMargin+4, r.pdf.GetY()-startY, "D")
	}
	r.pdf.Ln(2)
}

func (r *pdfRenderer) metaLine(it *trip.Item) string {
	parts := make([]string, 0, 4)
	if it.Kind == trip.KindTransport {
		route := strings.TrimSpace(it.Origin + " -> " + it.Destination)
		if route != "->" {
			parts = append(parts, route)
		}
		if it.Mode != "" {
			parts = append(parts, string(it.Mode))
		}
		if it.Details.Gate != "" {
			parts = append(parts, "gate "+it.Details.Gate)
		}
		if it.Details.Platform != "" {
			parts = append(parts, "platform "+it.Details.Platform)
		}
	}
	if it.Cost > 0 {
		parts = append(parts, money(it.Cost, it.Currency))
	}
	if it.Details.Rating > 0 {
		parts = append(parts, strings.Repeat("*", it.Details.Rating))
	}
	if len(it.Details.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(it.Details.Tags, " #"))
	}
	return strings.Join(parts, "  ·  ")
}

// cardHeight estimates a card's rendered height for the orphan pass.
func (r *pdfRenderer) cardHeight(it *trip.Item) float64 {
	h := cardBaseMM
	if desc := plainText(it.Details.Description); desc != "" {
		r.pdf.SetFont("Helvetica", "", 9)
		lines := r.pdf.SplitText(r.tr(desc), 210-2*pdfMargin)
		h += float64(len(lines)) * descLineMM
	}
	if it.Details.ImageRef != "" {
		h += imageHeightMM
	}
	return h
}

func (r *pdfRenderer) gridRow(name, note, amount string) {
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.CellFormat(90, gridRowMM, r.tr(name), "", 0, "L", false, 0, "")
	r.pdf.SetTextColor(90, 90, 90)
	r.pdf.CellFormat(55, gridRowMM, r.tr(note), "", 0, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.CellFormat(0, gridRowMM, r.tr(amount), "", 1, "R", false, 0, "")
}

func clockRange(it *trip.Item) string {
	switch {
	case it.Start.IsZero():
		return ""
	case it.End.IsZero():
		return it.Start.String()
	default:
		return it.Start.String() + " - " + it.End.String()
	}
}

func money(v float64, currency string) string {
	if v == 0 {
		return ""
	}
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, currency)
}

var htmlTags = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")

// plainText strips the rich-text widget's markup for line-oriented output.
func plainText(html string) string {
	html = htmlTags.Replace(html)
	out := strings.Builder{}
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}
	return strings.TrimSpace(out.String())
}
