package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_SaveLoad(t *testing.T) {
	m := NewManager(time.Hour)

	id := m.NewID()
	m.Save(id, Session{UserID: 1, Username: "alice", LoggedIn: true})

	s, ok := m.Load(id)
	assert.True(t, ok)
	assert.Equal(t, int64(1), s.UserID)
	assert.Equal(t, "alice", s.Username)
	assert.True(t, s.LoggedIn)

	_, ok = m.Load("nope")
	assert.False(t, ok)
	_, ok = m.Load("")
	assert.False(t, ok)
}

func TestManager_Expiry(t *testing.T) {
	m := NewManager(time.Hour)

	base := time.Now()
	m.now = func() time.Time { return base }

	id := m.NewID()
	m.Save(id, Session{UserID: 1, LoggedIn: true})

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, ok := m.Load(id)
	assert.False(t, ok)

	// Expired entry is dropped, not resurrected.
	m.now = func() time.Time { return base }
	_, ok = m.Load(id)
	assert.False(t, ok)
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(time.Hour)

	id := m.NewID()
	m.Save(id, Session{UserID: 1, LoggedIn: true})
	m.Delete(id)

	_, ok := m.Load(id)
	assert.False(t, ok)
}

func TestSameSiteFromString(t *testing.T) {
	assert.Equal(t, SameSiteFromString("Strict"), SameSiteFromString("strict"))
	assert.NotEqual(t, SameSiteFromString("Lax"), SameSiteFromString("None"))
	assert.Equal(t, SameSiteFromString("Lax"), SameSiteFromString("garbage"))
}
