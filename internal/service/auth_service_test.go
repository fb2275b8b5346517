package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:            "Ada Lovelace",
		Email:           "Ada@Example.com ",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AcceptTerms:     true,
	}
}

func TestAuthService_RegisterLogsInAndHashes(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)

	session, err := st.auth.Register(ctx, testScope, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.NotEmpty(t, session.UserID)
	assert.True(t, st.auth.IsLoggedIn(ctx, testScope))

	raw, err := st.store.Get(ctx, "storefront:users")
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret123")
	assert.Contains(t, raw, "$2a$")
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)
	_, err := st.auth.Register(ctx, testScope, validRegistration())
	require.NoError(t, err)

	_, err = st.auth.Register(ctx, "another-scope", validRegistration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	st := newTestStack(t)
	in := RegisterInput{Name: " A ", Email: "nope", Password: "123", ConfirmPassword: "456"}

	_, err := st.auth.Register(context.Background(), testScope, in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Equal(t, "does not match", verr.Fields["confirmPassword"])
	assert.Equal(t, "must be accepted", verr.Fields["acceptTerms"])
}

func TestAuthService_LoginLogoutRemember(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)
	_, err := st.auth.Register(ctx, "signup-scope", validRegistration())
	require.NoError(t, err)

	_, err = st.auth.Login(ctx, testScope, LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = st.auth.Login(ctx, testScope, LoginInput{Email: "bob@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, st.auth.IsLoggedIn(ctx, testScope))

	session, err := st.auth.Login(ctx, testScope, LoginInput{Email: "ADA@example.com", Password: "secret123", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", session.Name)
	assert.Equal(t, "ada@example.com", st.auth.RememberedEmail(ctx, testScope))

	current, err := st.auth.CurrentUser(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, current.UserID)

	require.NoError(t, st.auth.Logout(ctx, testScope))
	current, err = st.auth.CurrentUser(ctx, testScope)
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.Equal(t, "ada@example.com", st.auth.RememberedEmail(ctx, testScope))
}

func TestAuthService_CorruptSessionIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)
	require.NoError(t, st.store.Set(ctx, "storefront:"+testScope+":session", "{"))

	current, err := st.auth.CurrentUser(ctx, testScope)
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.False(t, st.auth.IsLoggedIn(ctx, testScope))
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)

	_, err := st.auth.Profile(ctx, testScope)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = st.auth.Register(ctx, testScope, validRegistration())
	require.NoError(t, err)
	require.True(t, st.cart.AddToCart(ctx, testScope, chair(2, "", "")))
	require.True(t, st.wishlist.AddToWishlist(ctx, testScope, armoire()))

	profile, err := st.auth.Profile(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, 2, profile.CartCount)
	assert.Equal(t, 1, profile.WishlistCount)
	assert.False(t, profile.JoinedAt.IsZero())
}

func TestAuthService_PasswordStrength(t *testing.T) {
	st := newTestStack(t)
	cases := []struct {
		password string
		level    StrengthLevel
		score    int
	}{
		{"", StrengthNone, 0},
		{"abc", StrengthWeak, 0},
		{"abcdefgh1", StrengthWeak, 2},
		{"Abcdefgh1", StrengthMedium, 3},
		{"Abcdefghijk1", StrengthMedium, 4},
		{"Abcdefghijk1!", StrengthStrong, 5},
		{"ééééé1", StrengthWeak, 1},
		{"Éééééééé", StrengthWeak, 1},
		{"abcdefgh١٢٣", StrengthWeak, 1},
	}
	for _, tc := range cases {
		got := st.auth.PasswordStrength(tc.password)
		assert.Equal(t, tc.level, got.Level, tc.password)
		assert.Equal(t, tc.score, got.Score, tc.password)
	}
}
