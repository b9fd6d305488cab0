package webui

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const flashCookie = "registra_flash"

// Flash is a one-shot banner shown on the next rendered page.
// Level is a bootstrap contextual color (success, warning, danger).
type Flash struct {
	Level   string
	Message string
}

type flashEntry struct {
	flash Flash
	timer *time.Timer
}

// FlashStore holds pending flashes keyed by a per-browser cookie. Entries
// self-expire after ttl; storing a new flash under a live key cancels the
// previous entry's timer so the fresh message gets the full lifetime.
type FlashStore struct {
	mu      sync.Mutex
	entries map[string]*flashEntry
	ttl     time.Duration
}

func NewFlashStore(ttl time.Duration) *FlashStore {
	return &FlashStore{
		entries: make(map[string]*flashEntry),
		ttl:     ttl,
	}
}

func (fs *FlashStore) Put(key string, flash Flash) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if prev, ok := fs.entries[key]; ok {
		prev.timer.Stop()
	}
	entry := &flashEntry{flash: flash}
	entry.timer = time.AfterFunc(fs.ttl, func() {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		if cur, ok := fs.entries[key]; ok && cur == entry {
			delete(fs.entries, key)
		}
	})
	fs.entries[key] = entry
}

func (fs *FlashStore) Pop(key string) (Flash, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, ok := fs.entries[key]
	if !ok {
		return Flash{}, false
	}
	entry.timer.Stop()
	delete(fs.entries, key)
	return entry.flash, true
}

// flashKey returns the browser's flash key, minting the cookie on first use.
func flashKey(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(flashCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	key := uuid.NewString()
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
	})
	return key
}

func (fs *FlashStore) put(ctx echo.Context, flash Flash) {
	fs.Put(flashKey(ctx), flash)
}

func (fs *FlashStore) pop(ctx echo.Context) *Flash {
	if flash, ok := fs.Pop(flashKey(ctx)); ok {
		return &flash
	}
	return nil
}
