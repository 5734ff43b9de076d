package cron

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-ticket/outbound/sqlgen"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type IntentCronTestSuite struct {
	suite.Suite

	Cfg *viper.Viper

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface
}

func (s *IntentCronTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Cfg = viper.New()
	s.Cfg.Set("cron.intent.clean_interval", "1m")
	s.Cfg.Set("cron.intent.clean_timeout", "10s")
}

func (s *IntentCronTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestIntentCronTestSuite(t *testing.T) {
	suite.Run(t, new(IntentCronTestSuite))
}

func (s *IntentCronTestSuite) TestClean() {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func()
	}{
		{
			name: "database error is logged and swallowed",
			setupMock: func() {
				s.PgxMock.ExpectExec(`DELETE FROM orders_intents WHERE expiration_date < \$1`).
					WithArgs(now).
					WillReturnError(fmt.Errorf("database error"))
			},
		},
		{
			name: "nothing expired",
			setupMock: func() {
				s.PgxMock.ExpectExec(`DELETE FROM orders_intents WHERE expiration_date < \$1`).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "expired intents deleted",
			setupMock: func() {
				s.PgxMock.ExpectExec(`DELETE FROM orders_intents WHERE expiration_date < \$1`).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("DELETE", 3))
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			intentCron := IntentCron{
				Cfg:     s.Cfg,
				Querier: s.Querier,
				TimeNow: func() time.Time { return now },
			}

			intentCron.Clean(context.Background())

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
