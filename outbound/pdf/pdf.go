package pdf

import (
	"bytes"

	"event-ticket/model"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/message"
)

// Renderer draws the downloadable ticket document for an order, one
// page per ticket.
type Renderer struct {
	EurCurrencyFormatter *message.Printer
}

func (r *Renderer) Render(order model.Order, event model.Event, tickets []model.TicketDetail) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(event.Title, true)

	for _, ticket := range tickets {
		doc.AddPage()

		doc.SetFont("Helvetica", "B", 22)
		doc.CellFormat(0, 12, event.Title, "", 1, "C", false, 0, "")

		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(0, 8, event.Date.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
		doc.CellFormat(0, 8, event.Address+", "+event.City, "", 1, "C", false, 0, "")
		doc.Ln(8)

		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 10, ticket.TypeName, "", 1, "L", false, 0, "")

		doc.SetFont("Helvetica", "", 12)
		priceFormattedEur := r.EurCurrencyFormatter.Sprintf("%d €", ticket.Price)
		doc.CellFormat(0, 8, "Order: "+order.Number, "", 1, "L", false, 0, "")
		doc.CellFormat(0, 8, "Price: "+priceFormattedEur, "", 1, "L", false, 0, "")
		doc.CellFormat(0, 8, "Holder: "+ticket.Email, "", 1, "L", false, 0, "")
		doc.Ln(12)

		doc.SetFont("Courier", "B", 16)
		doc.CellFormat(0, 14, ticket.Key, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
