package notify_telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	tele "gopkg.in/telebot.v4"
)

// Notifier delivers plain-text messages to a single chat. The chat ID
// is swappable at runtime (config hot reload).
type Notifier struct {
	bot *tele.Bot

	mu   sync.RWMutex
	chat tele.ChatID
}

type Options struct {
	// Offline skips the getMe handshake. Used by tests.
	Offline bool
}

func New(token string, chatID int64) (*Notifier, error) {
	return NewWith(token, chatID, Options{})
}

func NewWith(token string, chatID int64, opt Options) (*Notifier, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is empty")
	}

	b, err := tele.NewBot(tele.Settings{
		Token:   token,
		Offline: opt.Offline,
		Client:  &http.Client{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	return &Notifier{bot: b, chat: tele.ChatID(chatID)}, nil
}

// SetRecipient swaps the destination chat.
func (n *Notifier) SetRecipient(chatID int64) {
	n.mu.Lock()
	n.chat = tele.ChatID(chatID)
	n.mu.Unlock()
}

func (n *Notifier) recipient() tele.ChatID {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.chat
}

// Send makes one delivery attempt with a short bounded retry inside it.
// The returned error is the outcome of the whole attempt; the caller's
// dedup state must not advance on failure.
func (n *Notifier) Send(ctx context.Context, text string) error {
	to := n.recipient()

	op := func() error {
		_, err := n.bot.Send(to, text)
		if err != nil {
			var te *tele.Error
			if errors.As(err, &te) && te.Code >= 400 && te.Code < 500 && te.Code != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 300 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = 5 * time.Second

	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
