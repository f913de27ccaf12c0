package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindtrace/bpdscreen/config"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by provider|providerID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) UpsertByProvider(user *model.User) error {
	key := user.Provider + "|" + user.ProviderID
	if existing, ok := f.users[key]; ok {
		existing.Email = user.Email
		existing.DisplayName = user.DisplayName
		existing.AvatarURL = user.AvatarURL
		*user = *existing
		return nil
	}
	user.ID = uuid.NewString()
	stored := *user
	f.users[key] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{Auth: config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour}}
}

func TestExchangeOAuthIssuesResolvableToken(t *testing.T) {
	users := newFakeUserRepo()
	results := newFakeResultRepo()
	svc := NewIdentityService(users, results, testAuthConfig())

	resp, err := svc.ExchangeOAuth(dto.OAuthExchangeDTO{
		Provider:    "google",
		ProviderID:  "g-123",
		Email:       "a@example.com",
		DisplayName: "A",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.User.ID)

	userID, err := svc.ResolveToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestExchangeOAuthReownsAnonymousResults(t *testing.T) {
	users := newFakeUserRepo()
	results := newFakeResultRepo()
	results.results = append(results.results, &model.TestResult{ID: "r-1", SubjectID: "anon-7"})
	svc := NewIdentityService(users, results, testAuthConfig())

	resp, err := svc.ExchangeOAuth(dto.OAuthExchangeDTO{
		Provider:    "google",
		ProviderID:  "g-123",
		AnonymousID: "anon-7",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ReownedCount)
	assert.Equal(t, resp.User.ID, results.results[0].SubjectID)
}

// Reown is idempotent: logging in again with no anonymous results left moves
// nothing and is not an error.
func TestExchangeOAuthReownIdempotent(t *testing.T) {
	users := newFakeUserRepo()
	results := newFakeResultRepo()
	svc := NewIdentityService(users, results, testAuthConfig())

	resp, err := svc.ExchangeOAuth(dto.OAuthExchangeDTO{
		Provider:    "google",
		ProviderID:  "g-123",
		AnonymousID: "anon-never-used",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.ReownedCount)
}

func TestExchangeOAuthStableUserID(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewIdentityService(users, newFakeResultRepo(), testAuthConfig())

	first, err := svc.ExchangeOAuth(dto.OAuthExchangeDTO{Provider: "google", ProviderID: "g-123"})
	require.NoError(t, err)
	second, err := svc.ExchangeOAuth(dto.OAuthExchangeDTO{Provider: "google", ProviderID: "g-123", Email: "new@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "new@example.com", second.User.Email)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	svc := NewIdentityService(newFakeUserRepo(), newFakeResultRepo(), testAuthConfig())

	_, err := svc.ResolveToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewIdentityService(newFakeUserRepo(), newFakeResultRepo(), testAuthConfig())
	resp, err := issuer.ExchangeOAuth(dto.OAuthExchangeDTO{Provider: "google", ProviderID: "g-1"})
	require.NoError(t, err)

	other := NewIdentityService(newFakeUserRepo(), newFakeResultRepo(),
		&config.Config{Auth: config.Auth{JWTSecret: "different", TokenTTL: time.Hour}})
	_, err = other.ResolveToken(resp.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
