package utils

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"freightdesk/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// LRCopyTitles are the copies printed for every lorry receipt, in page order.
var LRCopyTitles = []string{"Consigner Copy", "Consignee Copy", "Driver Copy", "Office Copy"}

const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page { size: A4; margin: 20px; }
body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; margin: 0; padding: 0; }
table { width: 100%%; border-collapse: collapse; margin-bottom: 6px; }
.grid th, .grid td { border: 1px solid #444; padding: 3px 4px; text-align: left; }
.right { text-align: right !important; }
.copy-title { font-weight: bold; text-transform: uppercase; }
.words { font-style: italic; margin: 4px 0; }
.insurance { text-align: center; font-weight: bold; margin: 4px 0; }
.foot { margin-top: 8px; font-size: 10px; }
.lr-copy { page-break-inside: avoid; }
.lr-copy + .lr-copy { page-break-before: always; }
</style>
</head>
<body>%s</body>
</html>`

// PDFRenderer turns documents into HTML from the embedded templates and
// prints HTML to PDF with headless Chrome.
type PDFRenderer struct {
	templates *template.Template
	// Settle is how long the page gets to lay out before printing.
	Settle time.Duration
}

func NewPDFRenderer() (*PDFRenderer, error) {
	tmpl, err := template.New("documents").Funcs(template.FuncMap{
		"inr":   FormatINR,
		"words": NumberToCurrencyWords,
		"inc":   func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse pdf templates: %w", err)
	}
	return &PDFRenderer{templates: tmpl, Settle: time.Second}, nil
}

// LorryReceiptHTML renders one page per copy title. Each copy is kept whole.
func (r *PDFRenderer) LorryReceiptHTML(data models.LorryReceiptPDFData) (string, error) {
	var body bytes.Buffer
	for _, title := range LRCopyTitles {
		data.CopyTitle = title
		if err := r.templates.ExecuteTemplate(&body, "lr.html", data); err != nil {
			return "", fmt.Errorf("render lr %s: %w", title, err)
		}
	}
	return fmt.Sprintf(pageShell, body.String()), nil
}

func (r *PDFRenderer) InvoiceHTML(data models.InvoicePDFData) (string, error) {
	return r.render("invoice.html", data)
}

func (r *PDFRenderer) LedgerHTML(data models.LedgerPDFData) (string, error) {
	return r.render("ledger.html", data)
}

func (r *PDFRenderer) render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return fmt.Sprintf(pageShell, body.String()), nil
}

// Print loads html from a temp file into headless Chrome and prints it as A4.
func (r *PDFRenderer) Print(ctx context.Context, html string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "document_*.html")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+tmp.Name()),
		chromedp.Sleep(r.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdfBuf, nil
}

// ContactLine formats the company's numbers as "98400 12345(Office), ...".
func ContactLine(mobiles []models.MobileEntry) string {
	parts := make([]string, 0, len(mobiles))
	for _, m := range mobiles {
		if m.Label == "" {
			parts = append(parts, m.Number)
			continue
		}
		parts = append(parts, m.Number+"("+m.Label+")")
	}
	return strings.Join(parts, ", ")
}
