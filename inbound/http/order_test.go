package http

import (
	"context"
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

type OrderHttpTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Validate *validator.Validate
}

func (s *OrderHttpTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Validate = validator.New()

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *OrderHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestOrderHttpTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHttpTestSuite))
}

func orderRow() *pgxmock.Rows {
	createdOn := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return pgxmock.NewRows([]string{
		"order_id", "order_number", "order_event_id", "order_price", "order_type",
		"order_payment", "order_info", "api_key", "order_created_on",
	}).AddRow(int32(11), "ORD-01ARZ3NDEKTSV4RRFFQ69G5FAV", int32(3), int64(20), "Standard", "pending", "", "abc123", createdOn)
}

func (s *OrderHttpTestSuite) TestShowByNumber() {
	tests := []struct {
		name           string
		number         string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name:   "not found",
			number: "ORD-UNKNOWN",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM orders WHERE order_number = \$1`).
					WithArgs("ORD-UNKNOWN").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Order not found"}`,
		},
		{
			name:   "success",
			number: "ORD-01ARZ3NDEKTSV4RRFFQ69G5FAV",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM orders WHERE order_number = \$1`).
					WithArgs("ORD-01ARZ3NDEKTSV4RRFFQ69G5FAV").
					WillReturnRows(orderRow())
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"order_number":"ORD-01ARZ3NDEKTSV4RRFFQ69G5FAV"`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			orderHttp := RegisterOrderHttp(http.NewServeMux(), s.Querier, s.Validate)

			tc.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/api/orders/number/"+tc.number, nil)
			req.SetPathValue("number", tc.number)
			w := httptest.NewRecorder()

			orderHttp.showByNumber(w, req)

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

func (s *OrderHttpTestSuite) TestIndexByUser() {
	tests := []struct {
		name           string
		apiKey         string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name:           "no api key",
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:   "success",
			apiKey: "abc123",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT count\(\*\) FROM orders WHERE api_key = \$1`).
					WithArgs("abc123").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM orders`).
					WithArgs("abc123", int32(10), int32(0)).
					WillReturnRows(orderRow())
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":1`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			orderHttp := RegisterOrderHttp(http.NewServeMux(), s.Querier, s.Validate)

			tc.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
			if tc.apiKey != "" {
				req = req.WithContext(context.WithValue(req.Context(), apiKeyContextKey, tc.apiKey))
			}
			w := httptest.NewRecorder()

			orderHttp.indexByUser(w, req)

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

func (s *OrderHttpTestSuite) TestCreate() {
	validBody := `{"order_number": "ORD-CUSTOM-1", "order_event_id": 3, "order_price": 20, "order_type": "Standard", "order_payment": "card"}`

	tests := []struct {
		name           string
		reqBody        string
		apiKey         string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name:           "validation error",
			reqBody:        `{"order_event_id": 3}`,
			apiKey:         "abc123",
			setupMock:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"Number":"required"`,
			isContains:     true,
		},
		{
			name:           "no api key",
			reqBody:        validBody,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:    "event not found",
			reqBody: validBody,
			apiKey:  "abc123",
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
			apiKey:  "abc123",
			setupMock: func() {
				now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnRows(pgxmock.NewRows([]string{
						"event_id", "event_title", "event_description", "event_date", "event_image",
						"event_category", "event_city", "event_address", "event_status",
					}).AddRow(int32(3), "Summer Fest", "A festival", now, "fest.png", "Festival", "Paris", "1 Rue de la Paix", "upcoming"))
				s.PgxMock.ExpectQuery("INSERT INTO orders").
					WithArgs("ORD-CUSTOM-1", int32(3), int64(20), "Standard", "card", "", "abc123").
					WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int32(11)))
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM orders WHERE order_id = \$1`).
					WithArgs(int32(11)).
					WillReturnRows(orderRow())
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"order_id":11`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			orderHttp := RegisterOrderHttp(http.NewServeMux(), s.Querier, s.Validate)

			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			if tc.apiKey != "" {
				req = req.WithContext(context.WithValue(req.Context(), apiKeyContextKey, tc.apiKey))
			}
			w := httptest.NewRecorder()

			orderHttp.create(w, req)

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
