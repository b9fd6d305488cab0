package webui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlashStore_PutPop(t *testing.T) {
	fs := NewFlashStore(time.Minute)

	fs.Put("k", Flash{Level: "success", Message: "hecho"})
	flash, ok := fs.Pop("k")
	assert.True(t, ok)
	assert.Equal(t, "hecho", flash.Message)

	// one-shot
	_, ok = fs.Pop("k")
	assert.False(t, ok)
}

func TestFlashStore_entriesExpire(t *testing.T) {
	fs := NewFlashStore(10 * time.Millisecond)

	fs.Put("k", Flash{Message: "pronto desaparece"})
	assert.Eventually(t, func() bool {
		_, ok := fs.Pop("k")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestFlashStore_rePutCancelsOldTimer(t *testing.T) {
	fs := NewFlashStore(30 * time.Millisecond)

	fs.Put("k", Flash{Message: "primero"})
	time.Sleep(20 * time.Millisecond)
	// replacing the entry restarts its lifetime; the first timer must not
	// wipe the second message
	fs.Put("k", Flash{Message: "segundo"})
	time.Sleep(20 * time.Millisecond)

	flash, ok := fs.Pop("k")
	assert.True(t, ok)
	assert.Equal(t, "segundo", flash.Message)
}

func TestFlashStore_keysAreIndependent(t *testing.T) {
	fs := NewFlashStore(time.Minute)

	fs.Put("a", Flash{Message: "para a"})
	fs.Put("b", Flash{Message: "para b"})

	flash, ok := fs.Pop("a")
	assert.True(t, ok)
	assert.Equal(t, "para a", flash.Message)

	flash, ok = fs.Pop("b")
	assert.True(t, ok)
	assert.Equal(t, "para b", flash.Message)
}
