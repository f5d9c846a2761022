// internal/application/usecase/conversation_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	convdom "zapateria/internal/domain/conversation"
)

// DefaultUnreadPollInterval is the fixed unread-counter polling period.
const DefaultUnreadPollInterval = 10 * time.Second

// ConversationUsecase serves the customer-support chat: appending
// messages, bulk read-flag flips, and the polled unread counter.
type ConversationUsecase struct {
	repo convdom.RepositoryPort
	now  func() time.Time
}

func NewConversationUsecase(repo convdom.RepositoryPort) *ConversationUsecase {
	return &ConversationUsecase{repo: repo, now: time.Now}
}

var ErrConversationsNotConfigured = errors.New("conversations: usecase is not configured")

// Send appends a message to the user's thread, creating the thread on
// first contact.
func (u *ConversationUsecase) Send(ctx context.Context, usuarioID string, autor convdom.Autor, texto string) (convdom.Conversation, error) {
	if u == nil || u.repo == nil {
		return convdom.Conversation{}, ErrConversationsNotConfigured
	}

	uid := strings.TrimSpace(usuarioID)
	c, err := u.repo.GetByUsuario(ctx, uid)
	if err != nil {
		if !errors.Is(err, convdom.ErrNotFound) {
			return convdom.Conversation{}, ClassifyStoreError(err)
		}
		c, err = convdom.New(uid, u.now())
		if err != nil {
			return convdom.Conversation{}, err
		}
	}

	if err := c.Append(autor, texto, u.now()); err != nil {
		return convdom.Conversation{}, err
	}
	if err := u.repo.Upsert(ctx, c); err != nil {
		return convdom.Conversation{}, ClassifyStoreError(err)
	}
	return c, nil
}

// Get returns the user's thread (empty thread when none exists yet).
func (u *ConversationUsecase) Get(ctx context.Context, usuarioID string) (convdom.Conversation, error) {
	if u == nil || u.repo == nil {
		return convdom.Conversation{}, ErrConversationsNotConfigured
	}

	uid := strings.TrimSpace(usuarioID)
	c, err := u.repo.GetByUsuario(ctx, uid)
	if errors.Is(err, convdom.ErrNotFound) {
		return convdom.New(uid, u.now())
	}
	if err != nil {
		return convdom.Conversation{}, ClassifyStoreError(err)
	}
	return c, nil
}

// MarkRead flips the read flag on every counterpart message and persists
// the thread.
func (u *ConversationUsecase) MarkRead(ctx context.Context, usuarioID string, viewer convdom.Autor) error {
	if u == nil || u.repo == nil {
		return ErrConversationsNotConfigured
	}

	c, err := u.repo.GetByUsuario(ctx, strings.TrimSpace(usuarioID))
	if errors.Is(err, convdom.ErrNotFound) {
		return nil
	}
	if err != nil {
		return ClassifyStoreError(err)
	}

	if c.MarkReadFor(viewer) == 0 {
		return nil
	}
	return u.repo.Upsert(ctx, c)
}

// UnreadCount aggregates unread counterpart messages for one thread.
func (u *ConversationUsecase) UnreadCount(ctx context.Context, usuarioID string, viewer convdom.Autor) (int, error) {
	if u == nil || u.repo == nil {
		return 0, ErrConversationsNotConfigured
	}

	c, err := u.repo.GetByUsuario(ctx, strings.TrimSpace(usuarioID))
	if errors.Is(err, convdom.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, ClassifyStoreError(err)
	}
	return c.UnreadCountFor(viewer), nil
}

// ListAll returns every thread for the back-office inbox.
func (u *ConversationUsecase) ListAll(ctx context.Context) ([]convdom.Conversation, error) {
	if u == nil || u.repo == nil {
		return nil, ErrConversationsNotConfigured
	}
	return u.repo.ListAll(ctx)
}

// PollUnread re-runs the unread aggregation on a fixed interval and pushes
// each result to onCount. Polls fire on schedule regardless of whether the
// previous poll has settled (overlapping polls are not deduplicated).
// It returns when ctx is cancelled.
func (u *ConversationUsecase) PollUnread(ctx context.Context, usuarioID string, viewer convdom.Autor, interval time.Duration, onCount func(int)) {
	if u == nil || u.repo == nil || onCount == nil {
		return
	}
	if interval <= 0 {
		interval = DefaultUnreadPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go func() {
				n, err := u.UnreadCount(ctx, usuarioID, viewer)
				if err != nil {
					log.Printf("[conversation_uc] WARN: unread poll failed usuario=%s err=%v", usuarioID, err)
					return
				}
				onCount(n)
			}()
		}
	}
}
