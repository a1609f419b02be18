package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evcs/core/model"
)

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry(nil, nil)
	_, err := r.Register("alice", "secret")
	require.NoError(t, err)
	_, err = r.Register("alice", "other")
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
	assert.Equal(t, 1, r.Len())
}

func TestRegisterAllowsEmptyPassword(t *testing.T) {
	r := NewRegistry(nil, nil)
	_, err := r.Register("bob", "")
	require.NoError(t, err)
	u, err := r.Login("bob", "")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}

func TestLogin(t *testing.T) {
	r := NewRegistry(nil, nil)
	registered, err := r.Register("alice", "secret")
	require.NoError(t, err)

	u, err := r.Login("alice", "secret")
	require.NoError(t, err)
	assert.Same(t, registered, u)

	for _, pw := range []string{"", "Secret", "secret ", "secre"} {
		if _, err := r.Login("alice", pw); !errors.Is(err, model.ErrInvalidCredentials) {
			t.Fatalf("password %q: expected invalid credentials, got %v", pw, err)
		}
	}
	if _, err := r.Login("nobody", "secret"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected invalid credentials, got %v", err)
	}
}

type upperHasher struct{}

func (upperHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (upperHasher) Compare(h, p string) error {
	if h != "h:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegistryUsesHasher(t *testing.T) {
	r := NewRegistry(upperHasher{}, nil)
	u, err := r.Register("carol", "pw")
	require.NoError(t, err)
	assert.Equal(t, "h:pw", u.PasswordHash)
	_, err = r.Login("carol", "pw")
	assert.NoError(t, err)
}

func TestSessionLogoutKeepsBookings(t *testing.T) {
	r := NewRegistry(nil, nil)
	u, err := r.Register("dave", "pw")
	require.NoError(t, err)
	u.AddBooking(&model.Booking{ID: "b1", Station: model.NewStation("1", "Downtown", true), Slot: "09:00-10:00"})

	var s Session
	s.Start(u)
	assert.Same(t, u, s.Current())
	s.Logout()
	assert.Nil(t, s.Current())

	again, err := r.Login("dave", "pw")
	require.NoError(t, err)
	assert.Len(t, again.Bookings(), 1)
}
