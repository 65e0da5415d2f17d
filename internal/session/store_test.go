package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

func testSession() domain.Session {
	return domain.Session{
		ID:    "u1",
		Email: "jane@example.com",
		Token: "tok-123",
		Role:  "user",
	}
}

func TestStore_SetGet(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Get().IsEmpty())

	sess := testSession()
	s.Set(sess)

	assert.Equal(t, sess, s.Get())
	assert.True(t, s.Get().IsAuthenticated())
	assert.False(t, s.Get().IsAdmin())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Set(testSession())

	s.Clear()

	assert.True(t, s.Get().IsEmpty())
	assert.False(t, s.Get().IsAuthenticated())
}

func TestStore_SubscribeSeesEveryTransition(t *testing.T) {
	s := NewStore()

	var seen []domain.Session
	s.Subscribe(func(sess domain.Session) {
		seen = append(seen, sess)
	})

	sess := testSession()
	s.Set(sess)
	s.Clear()

	assert.Equal(t, []domain.Session{sess, {}}, seen)
}

func TestSession_AdminDerivation(t *testing.T) {
	admin := testSession()
	admin.Role = "admin"

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsAuthenticated())

	// A role without a token still fails the auth check.
	admin.Token = ""
	assert.False(t, admin.IsAuthenticated())
}
