package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
)

type TicketTypeHttpTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Validate *validator.Validate
}

func (s *TicketTypeHttpTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Validate = validator.New()

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *TicketTypeHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestTicketTypeHttpTestSuite(t *testing.T) {
	suite.Run(t, new(TicketTypeHttpTestSuite))
}

func ticketTypeEventRows() *pgxmock.Rows {
	date := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	return pgxmock.NewRows([]string{
		"event_id", "event_title", "event_description", "event_date", "event_image",
		"event_category", "event_city", "event_address", "event_status",
	}).AddRow(int32(3), "Summer Fest", "A festival", date, "fest.png", "Festival", "Paris", "1 Rue de la Paix", "upcoming")
}

func (s *TicketTypeHttpTestSuite) TestIndexByEvent() {
	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name: "event not found",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Event not found"}`,
		},
		{
			name: "lists event types",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnRows(ticketTypeEventRows())
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM ticket_types WHERE ticket_type_event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnRows(pgxmock.NewRows([]string{
						"ticket_type_id", "ticket_type_event_id", "ticket_type_name", "ticket_type_price",
						"ticket_type_quantity", "ticket_type_real_quantity", "ticket_type_total_quantity", "ticket_type_description",
					}).
						AddRow(int32(1), int32(3), "Early", int64(10), int32(10), int32(10), int32(10), "early bird").
						AddRow(int32(2), int32(3), "Standard", int64(20), int32(50), int32(50), int32(50), "standard"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"ticket_type_name":"Early"`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			ticketTypeHttp := RegisterTicketTypeHttp(http.NewServeMux(), s.Querier, s.Validate)

			tc.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/api/events/3/ticket-types", nil)
			req.SetPathValue("eventId", "3")
			w := httptest.NewRecorder()

			ticketTypeHttp.indexByEvent(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.isContains {
				s.Contains(w.Body.String(), tc.expectedBody)
			} else {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *TicketTypeHttpTestSuite) TestCreate() {
	validBody := `{"ticket_type_event_id": 3, "ticket_type_name": "Standard", "ticket_type_price": 20, "ticket_type_quantity": 50, "ticket_type_real_quantity": 50, "ticket_type_total_quantity": 50, "ticket_type_description": "standard"}`

	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name:           "validation error",
			reqBody:        `{"ticket_type_event_id": 3}`,
			setupMock:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"Name":"required"`,
			isContains:     true,
		},
		{
			name:    "event not found",
			reqBody: validBody,
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Event not found"}`,
		},
		{
			name:    "success",
			reqBody: validBody,
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnRows(ticketTypeEventRows())
				s.PgxMock.ExpectQuery("INSERT INTO ticket_types").
					WithArgs(int32(3), "Standard", int64(20), int32(50), int32(50), int32(50), "standard").
					WillReturnRows(pgxmock.NewRows([]string{
						"ticket_type_id", "ticket_type_event_id", "ticket_type_name", "ticket_type_price",
						"ticket_type_quantity", "ticket_type_real_quantity", "ticket_type_total_quantity", "ticket_type_description",
					}).AddRow(int32(2), int32(3), "Standard", int64(20), int32(50), int32(50), int32(50), "standard"))
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"ticket_type_id":2`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			ticketTypeHttp := RegisterTicketTypeHttp(http.NewServeMux(), s.Querier, s.Validate)

			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/ticket-types", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			ticketTypeHttp.create(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.isContains {
				s.Contains(w.Body.String(), tc.expectedBody)
			} else {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
