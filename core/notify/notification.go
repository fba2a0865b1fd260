package notify

import (
	"context"
	"time"

	"github.com/dmitrymomot/storefront/core/i18n"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Notification is a resolved, displayable message.
type Notification struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Notifier is the narrow interface managers depend on.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, title, description string, placeholders ...i18n.M) Notification
	T(key string, placeholders ...i18n.M) string
}

// Nop drops notifications and returns keys untranslated.
type Nop struct{}

func (Nop) Notify(_ context.Context, kind Kind, title, description string, _ ...i18n.M) Notification {
	return Notification{Kind: kind, Title: title, Description: description}
}

func (Nop) T(key string, _ ...i18n.M) string { return key }
