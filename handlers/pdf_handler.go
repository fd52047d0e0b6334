package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdesk/service"
)

// PDFHandler renders documents, archives them and answers with their
// location. ?download=1 streams the PDF instead.
type PDFHandler struct {
	Documents *service.DocumentService
}

func (h *PDFHandler) LorryReceipt(c *gin.Context) {
	h.respond(c)(h.Documents.LorryReceiptPDF(c.Request.Context(), c.Param("id")))
}

func (h *PDFHandler) Invoice(c *gin.Context) {
	h.respond(c)(h.Documents.InvoicePDF(c.Request.Context(), c.Param("id")))
}

func (h *PDFHandler) Ledger(c *gin.Context) {
	h.respond(c)(h.Documents.LedgerPDF(c.Request.Context(), c.Query("client_id"), c.Query("fy")))
}

func (h *PDFHandler) respond(c *gin.Context) func(*service.Document, error) {
	return func(doc *service.Document, err error) {
		if err != nil {
			writeError(c, err)
			return
		}
		if c.Query("download") == "1" {
			c.Header("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
			c.Data(http.StatusOK, "application/pdf", doc.Content)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "file": doc.Name, "location": doc.Location})
	}
}
