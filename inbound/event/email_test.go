package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-ticket/outbound/email/mocks"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmailEventTestSuite struct {
	suite.Suite

	Sender *mocks.MockSender
}

func (s *EmailEventTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.Sender = mocks.NewMockSender(ctrl)
}

func TestEmailEventTestSuite(t *testing.T) {
	suite.Run(t, new(EmailEventTestSuite))
}

func (s *EmailEventTestSuite) TestSendEmailHandler() {
	tests := []struct {
		name        string
		msg         []byte
		setupMock   func()
		expectError bool
	}{
		{
			name:        "invalid payload is dropped",
			msg:         []byte(`{invalid json`),
			setupMock:   func() {},
			expectError: false,
		},
		{
			name: "send error is retried",
			msg:  []byte(`{"to": "john@example.com", "subject": "Ticket Issued", "body": "hello"}`),
			setupMock: func() {
				s.Sender.EXPECT().
					Send([]string{"john@example.com"}, "Ticket Issued", "hello").
					Return(fmt.Errorf("smtp error"))
			},
			expectError: true,
		},
		{
			name: "success",
			msg:  []byte(`{"to": "john@example.com", "subject": "Ticket Issued", "body": "hello"}`),
			setupMock: func() {
				s.Sender.EXPECT().
					Send([]string{"john@example.com"}, "Ticket Issued", "hello").
					Return(nil)
			},
			expectError: false,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			emailEvent := EmailEvent{
				Sender:  s.Sender,
				Timeout: 5 * time.Second,
			}

			err := emailEvent.SendEmailHandler(context.Background(), tc.msg)

			if tc.expectError {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}
