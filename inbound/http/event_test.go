package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-ticket/common/constant"
	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type EventHttpTestSuite struct {
	suite.Suite

	Cfg *viper.Viper

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Cache     *redis.Client
	CacheMock redismock.ClientMock

	Validate *validator.Validate
}

func (s *EventHttpTestSuite) SetupTest() {
	rdb, mock := redismock.NewClientMock()
	s.Cache = rdb
	s.CacheMock = mock

	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Validate = validator.New()

	s.Cfg = viper.New()
	s.Cfg.Set("events.cache_ttl", "30s")

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *EventHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()

	if err := s.Cache.Close(); err != nil {
		s.T().Fatalf("failed to close redis mock: %v", err)
	}
}

func TestEventHttpTestSuite(t *testing.T) {
	suite.Run(t, new(EventHttpTestSuite))
}

func (s *EventHttpTestSuite) newEventHttp() *EventHttp {
	in := RegisterEventHttp(http.NewServeMux(), s.Cfg, s.Querier, s.Cache, s.Validate)
	in.TimeNow = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return in
}

func (s *EventHttpTestSuite) TestIndex() {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cacheKey := fmt.Sprintf(constant.UpcomingEventsPage, int32(1))

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name: "serves from cache",
			setupMock: func() {
				s.CacheMock.ExpectGet(cacheKey).
					SetVal(`{"events":[],"page":1,"per_page":10,"total":0}`)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"events":[],"page":1,"per_page":10,"total":0}`,
		},
		{
			name: "count error",
			setupMock: func() {
				s.CacheMock.ExpectGet(cacheKey).RedisNil()
				s.PgxMock.ExpectQuery(`SELECT count\(\*\) FROM events WHERE event_date > \$1`).
					WithArgs(now).
					WillReturnError(fmt.Errorf("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal Server Error"}`,
		},
		{
			name: "queries database and fills cache",
			setupMock: func() {
				s.CacheMock.ExpectGet(cacheKey).RedisNil()
				s.PgxMock.ExpectQuery(`SELECT count\(\*\) FROM events WHERE event_date > \$1`).
					WithArgs(now).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events`).
					WithArgs(now, int32(10), int32(0)).
					WillReturnRows(pgxmock.NewRows([]string{
						"event_id", "event_title", "event_description", "event_date", "event_image",
						"event_category", "event_city", "event_address", "event_status",
					}).AddRow(int32(3), "Summer Fest", "A festival", now.Add(24*time.Hour), "fest.png", "Festival", "Paris", "1 Rue de la Paix", "upcoming"))
				s.CacheMock.Regexp().ExpectSet(cacheKey, `.*Summer Fest.*`, 30*time.Second).SetVal("OK")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"event_title":"Summer Fest"`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			eventHttp := s.newEventHttp()

			tc.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/api/events?page=1", nil)
			w := httptest.NewRecorder()

			eventHttp.index(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.isContains {
				s.Contains(w.Body.String(), tc.expectedBody)
			} else {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.CacheMock.ExpectationsWereMet())
			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *EventHttpTestSuite) TestShow() {
	tests := []struct {
		name           string
		id             string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name:           "invalid id",
			id:             "abc",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid id"}`,
		},
		{
			name: "not found",
			id:   "3",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Event not found"}`,
		},
		{
			name: "success",
			id:   "3",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`SELECT (.+) FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnRows(pgxmock.NewRows([]string{
						"event_id", "event_title", "event_description", "event_date", "event_image",
						"event_category", "event_city", "event_address", "event_status",
					}).AddRow(int32(3), "Summer Fest", "A festival", time.Now(), "fest.png", "Festival", "Paris", "1 Rue de la Paix", "upcoming"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"event_id":3`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			eventHttp := s.newEventHttp()

			tc.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/api/events/"+tc.id, nil)
			req.SetPathValue("id", tc.id)
			w := httptest.NewRecorder()

			eventHttp.show(w, req)

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

func (s *EventHttpTestSuite) TestCreate() {
	validBody := `{"event_title": "Summer Fest", "event_description": "A festival", "event_date": "2024-06-01 20:00:00", "event_image": "fest.png", "event_category": "Festival", "event_city": "Paris", "event_address": "1 Rue de la Paix", "event_status": "upcoming"}`

	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		isContains     bool
	}{
		{
			name:           "invalid json",
			reqBody:        `{invalid json`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid request"}`,
		},
		{
			name:           "missing title",
			reqBody:        strings.Replace(validBody, `"event_title": "Summer Fest", `, "", 1),
			setupMock:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"Title":"required"`,
			isContains:     true,
		},
		{
			name:           "unknown category",
			reqBody:        strings.Replace(validBody, `"event_category": "Festival"`, `"event_category": "Circus"`, 1),
			setupMock:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"Category":"oneof"`,
			isContains:     true,
		},
		{
			name:           "unknown status",
			reqBody:        strings.Replace(validBody, `"event_status": "upcoming"`, `"event_status": "soon"`, 1),
			setupMock:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"Status":"oneof"`,
			isContains:     true,
		},
		{
			name:    "success",
			reqBody: validBody,
			setupMock: func() {
				date := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
				s.PgxMock.ExpectQuery("INSERT INTO events").
					WithArgs("Summer Fest", "A festival", date, "fest.png", "Festival", "Paris", "1 Rue de la Paix", "upcoming").
					WillReturnRows(pgxmock.NewRows([]string{
						"event_id", "event_title", "event_description", "event_date", "event_image",
						"event_category", "event_city", "event_address", "event_status",
					}).AddRow(int32(3), "Summer Fest", "A festival", date, "fest.png", "Festival", "Paris", "1 Rue de la Paix", "upcoming"))
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"event_id":3`,
			isContains:     true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			eventHttp := s.newEventHttp()

			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			eventHttp.create(w, req)

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

func (s *EventHttpTestSuite) TestDelete() {
	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "not found",
			setupMock: func() {
				s.PgxMock.ExpectExec(`DELETE FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Event not found"}`,
		},
		{
			name: "success",
			setupMock: func() {
				s.PgxMock.ExpectExec(`DELETE FROM events WHERE event_id = \$1`).
					WithArgs(int32(3)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Event deleted"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			eventHttp := s.newEventHttp()

			tc.setupMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/events/3", nil)
			req.SetPathValue("id", "3")
			w := httptest.NewRecorder()

			eventHttp.delete(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
