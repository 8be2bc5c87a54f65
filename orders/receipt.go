package orders

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"grillz/globals"
	"grillz/models"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// receiptQRPayload returns "orderID|timestamp|signature" so the pickup
// counter can verify a receipt offline.
func receiptQRPayload(order models.Order) string {
	data := fmt.Sprintf("%s|%d", order.OrderID, order.Timestamp)
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// BuildReceiptPDF renders a printable order receipt with an embedded,
// signed QR code.
func BuildReceiptPDF(order models.Order) ([]byte, error) {
	qrPNG, err := qrcode.Encode(receiptQRPayload(order), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Lagos Shawarma & Grills")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.Date))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", order.Customer.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Deliver to: %s", order.Customer.Address))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		pdf.Cell(0, 7, fmt.Sprintf("%d x %s  NGN %d", it.Quantity, it.Name, it.Price*it.Quantity))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: NGN %d", order.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Tax: NGN %d", order.Tax))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Delivery: NGN %d", order.DeliveryFee))
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: NGN %d", order.Total))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// PrintReceipt serves the PDF receipt for a past order.
func (h *Handlers) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Resolve(r).Orders.Get(ps.ByName("orderid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	pdfBytes, err := BuildReceiptPDF(order)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderID))
	w.Write(pdfBytes)
}
