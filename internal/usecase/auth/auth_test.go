package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
)

type recordedProfile struct {
	owner, name, email string
}

type fakeProfiles struct {
	calls []recordedProfile
}

func (f *fakeProfiles) Init(_ context.Context, owner, name, email string) error {
	f.calls = append(f.calls, recordedProfile{owner, name, email})
	return nil
}

const secret = "test-secret"

func newService() (*Service, *fakeProfiles) {
	profiles := &fakeProfiles{}
	// a real clock keeps issued tokens inside their validity window
	return NewService(memory.NewAccountRepository(), profiles, secret, time.Now), profiles
}

func TestRegisterIssuesTokenAndSeedsProfile(t *testing.T) {
	svc, profiles := newService()

	sess, err := svc.Register(context.Background(), RegisterInput{
		Name:     " Minh ",
		Email:    "Minh@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", sess.OwnerID)
	assert.Equal(t, "minh@example.com", sess.Account.Email)
	assert.NotEqual(t, "secret1", sess.Account.PasswordHash)

	require.Len(t, profiles.calls, 1)
	assert.Equal(t, recordedProfile{"1", "Minh", "minh@example.com"}, profiles.calls[0])

	parsed, err := jwt.Parse(sess.Token, func(*jwt.Token) (any, error) { return []byte(secret), nil })
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "1", sub)
}

func TestRegisterRejects(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.vn", Password: "123456"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"missing name", RegisterInput{Email: "x@y.vn", Password: "123456"}, "invalid_request"},
		{"short password", RegisterInput{Name: "B", Email: "x@y.vn", Password: "123"}, "invalid_request"},
		{"bad email", RegisterInput{Name: "B", Email: "not-an-email", Password: "123456"}, "invalid_email"},
		{"duplicate", RegisterInput{Name: "B", Email: "A@B.vn", Password: "123456"}, "email_already_exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.vn", Password: "123456"})
	require.NoError(t, err)

	sess, err := svc.Login(ctx, " A@b.vn", "123456")
	require.NoError(t, err)
	assert.Equal(t, "1", sess.OwnerID)
	assert.NotEmpty(t, sess.Token)

	_, err = svc.Login(ctx, "a@b.vn", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = svc.Login(ctx, "nobody@b.vn", "123456")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = svc.Login(ctx, "", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}
