package usecase_test

import (
	"context"
	"errors"
	"testing"

	"electric-system-backend/internal/domain"
	"electric-system-backend/internal/usecase"
	"electric-system-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender captures outbound messages in place of the Postmark client.
type MockSender struct {
	mock.Mock
	sent []email.Message
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil {
		m.sent = append(m.sent, msg)
	}
	return args.Error(0)
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Phone:   "+352123456",
		Service: "domotique",
		Message: "Bonjour, je souhaite un devis.",
	}
}

func TestSendContactMessage(t *testing.T) {
	t.Run("Should send notification then confirmation", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewContactUsecase(email.NewEmailServiceWithSender(sender, ""))

		err := uc.SendContactMessage(context.Background(), validRequest())
		require.NoError(t, err)
		require.Len(t, sender.sent, 2)

		notification := sender.sent[0]
		assert.Equal(t, "info@electric-system.lu", notification.To)
		assert.Contains(t, notification.Subject, "Domotique")
		assert.Contains(t, notification.HTMLBody, "Jean Dupont")

		confirmation := sender.sent[1]
		assert.Equal(t, "jean@example.com", confirmation.To)
		assert.Equal(t, "Confirmation de votre demande - ELECTRIC SYSTEM", confirmation.Subject)
		assert.Contains(t, confirmation.HTMLBody, "Bonjour Jean Dupont,")
	})

	t.Run("Should escape HTML in free-text fields before templating", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewContactUsecase(email.NewEmailServiceWithSender(sender, ""))

		req := validRequest()
		req.Name = `<b>"hi"</b>`
		req.Message = "ligne 1\nligne 2 <script>"

		err := uc.SendContactMessage(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, sender.sent, 2)

		for _, msg := range sender.sent {
			assert.Contains(t, msg.HTMLBody, "&lt;b&gt;&quot;hi&quot;&lt;/b&gt;")
			assert.NotContains(t, msg.HTMLBody, `<b>"hi"</b>`)
			assert.Contains(t, msg.HTMLBody, "ligne 1<br>ligne 2 &lt;script&gt;")
		}
	})

	t.Run("Should fail with a sentinel when the notification send fails", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider down"))
		uc := usecase.NewContactUsecase(email.NewEmailServiceWithSender(sender, ""))

		err := uc.SendContactMessage(context.Background(), validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotificationSendFailed)
		// The confirmation is not attempted after a notification failure.
		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should surface a confirmation failure as a plain error", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
			return msg.To == "info@electric-system.lu"
		})).Return(nil)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
			return msg.To == "jean@example.com"
		})).Return(errors.New("mailbox full"))
		uc := usecase.NewContactUsecase(email.NewEmailServiceWithSender(sender, ""))

		err := uc.SendContactMessage(context.Background(), validRequest())
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotificationSendFailed)
		// The business notification already went out.
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "info@electric-system.lu", sender.sent[0].To)
	})

	t.Run("Should refuse to send when the provider is unconfigured", func(t *testing.T) {
		uc := usecase.NewContactUsecase(email.NewEmailServiceWithSender(nil, ""))

		assert.False(t, uc.Configured())
		err := uc.SendContactMessage(context.Background(), validRequest())
		assert.ErrorIs(t, err, domain.ErrEmailNotConfigured)
	})
}
