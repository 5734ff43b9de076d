package pdf

import (
	"strings"
	"testing"
	"time"

	"event-ticket/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestRender(t *testing.T) {
	renderer := &Renderer{EurCurrencyFormatter: message.NewPrinter(language.French)}

	order := model.Order{
		ID:      11,
		Number:  "ORD-01ARZ3NDEKTSV4RRFFQ69G5FAV",
		EventID: 3,
		Price:   20,
	}

	event := model.Event{
		ID:      3,
		Title:   "Summer Fest",
		Date:    time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		City:    "Paris",
		Address: "1 Rue de la Paix",
	}

	tickets := []model.TicketDetail{
		{
			Ticket: model.Ticket{
				ID:    21,
				Key:   "TIK-01ARZ3NDEKTSV4RRFFQ69G5FAV",
				Email: "john@example.com",
				Price: 20,
			},
			TypeName: "Standard",
		},
		{
			Ticket: model.Ticket{
				ID:    22,
				Key:   "TIK-01BRZ3NDEKTSV4RRFFQ69G5FAV",
				Email: "john@example.com",
				Price: 20,
			},
			TypeName: "Standard",
		},
	}

	document, err := renderer.Render(order, event, tickets)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(document), "%PDF"), "output should be a pdf document")
	assert.Greater(t, len(document), 1000)
}
