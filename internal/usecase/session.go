package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/cache"
)

// userCacheTTL bounds how long a validated user record is reused before
// the next request re-validates against the backend. Short on purpose:
// a revoked token must die within a minute.
const userCacheTTL = time.Minute

// SessionUseCase owns login, logout and restore-on-request. A token is
// only ever considered valid after the backend has served the profile
// for it; the local JWT expiry check is a shortcut to skip a round trip
// for tokens that are already dead.
type SessionUseCase struct {
	Auth  AuthGateway
	users *cache.Cache
	now   func() time.Time
}

func NewSessionUseCase(auth AuthGateway) *SessionUseCase {
	return &SessionUseCase{
		Auth:  auth,
		users: cache.New(),
		now:   time.Now,
	}
}

// Login validates a fresh token by fetching the profile behind it.
// There is no retry: a failed fetch means not authenticated.
func (uc *SessionUseCase) Login(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if uc.expired(token) {
		return nil, ErrUnauthenticated
	}

	user, err := uc.Auth.FetchCurrentUser(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}

	uc.users.Set(token, user, userCacheTTL)
	return &entity.Session{Token: token, User: user}, nil
}

// Restore re-validates a persisted token on an incoming request. The
// user record is cached briefly; a cache miss goes back to the backend.
// Restore is idempotent: a dead token fails the same way every time.
func (uc *SessionUseCase) Restore(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if uc.expired(token) {
		uc.users.Delete(token)
		return nil, ErrUnauthenticated
	}

	if cached, ok := uc.users.Get(token); ok {
		if user, ok := cached.(*entity.User); ok {
			return &entity.Session{Token: token, User: user}, nil
		}
	}

	user, err := uc.Auth.FetchCurrentUser(ctx, token)
	if err != nil {
		uc.users.Delete(token)
		return nil, mapGatewayErr(err)
	}

	uc.users.Set(token, user, userCacheTTL)
	return &entity.Session{Token: token, User: user}, nil
}

// Logout drops the cached user. The caller clears the persisted token.
func (uc *SessionUseCase) Logout(token string) {
	if token != "" {
		uc.users.Delete(token)
	}
}

// expired decodes the token without verifying the signature and checks
// the exp claim locally. Signature verification stays with the backend;
// opaque (non-JWT) tokens pass through for it to judge.
func (uc *SessionUseCase) expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.Time.After(uc.now())
}
