package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mindtrace/bpdscreen/config"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/mindtrace/bpdscreen/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrInvalidToken marks a session token that failed verification.
var ErrInvalidToken = errors.New("invalid session token")

// IdentityService resolves "who is the current user". Authenticated users
// carry an HS256 session token issued after the OAuth profile exchange;
// everyone else is identified by a client-generated anonymous session id.
type IdentityService interface {
	ExchangeOAuth(req dto.OAuthExchangeDTO) (*dto.AuthResponseDTO, error)
	ResolveToken(token string) (string, error)
	Profile(userID string) (*dto.ProfileDTO, error)
}

type identityService struct {
	userRepo   repository.UserRepository
	resultRepo repository.ResultRepository
	cfg        *config.Config
}

func NewIdentityService(userRepo repository.UserRepository, resultRepo repository.ResultRepository, cfg *config.Config) IdentityService {
	return &identityService{userRepo: userRepo, resultRepo: resultRepo, cfg: cfg}
}

// ExchangeOAuth upserts the user from the provider profile, issues a session
// token, and re-owns any results tagged with the anonymous session id. Reown
// failure does not fail the login; the results stay anonymous and a later
// login picks them up.
func (s *identityService) ExchangeOAuth(req dto.OAuthExchangeDTO) (*dto.AuthResponseDTO, error) {
	user := model.User{
		Provider:    req.Provider,
		ProviderID:  req.ProviderID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	}
	if err := s.userRepo.UpsertByProvider(&user); err != nil {
		log.Error().Err(err).Str("provider", req.Provider).Msg("ExchangeOAuth: failed to upsert user")
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	var reowned int64
	if req.AnonymousID != "" {
		n, err := s.resultRepo.Reown(req.AnonymousID, user.ID)
		if err != nil {
			log.Error().Err(err).Str("anonymousID", req.AnonymousID).Str("userID", user.ID).
				Msg("ExchangeOAuth: failed to reown anonymous results")
		} else {
			reowned = n
		}
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("ExchangeOAuth: failed to sign session token")
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &dto.AuthResponseDTO{
		Token: token,
		User: dto.ProfileDTO{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		},
		ReownedCount: reowned,
	}, nil
}

func (s *identityService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		Issuer:    "bpdscreen",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}

// ResolveToken verifies a session token and returns the user id it names.
func (s *identityService) ResolveToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *identityService) Profile(userID string) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, nil
	}
	return &dto.ProfileDTO{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}, nil
}
