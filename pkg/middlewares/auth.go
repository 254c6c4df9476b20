package middlewares

import (
	"context"
	"time"

	"video_platform_service/pkg/config"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/response"
	"video_platform_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// CookieAccessToken access token cookie name
	CookieAccessToken = "accessToken"
	// CookieRefreshToken refresh token cookie name
	CookieRefreshToken = "refreshToken"

	// LocalIdentity c.Locals key of the resolved *token.Identity
	LocalIdentity = "identity"
	// LocalClaims c.Locals key of the verified *token.AccessClaims
	LocalClaims = "claims"
)

// AccessVerifier verify an access token
type AccessVerifier interface {
	VerifyAccess(tokenStr string) (*token.AccessClaims, error)
}

// IdentityResolver load the current identity of a user id, error when the user no longer exists
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID string) (*token.Identity, error)
}

// AuthGate resolve the caller from the access token
type AuthGate struct {
	verifier AccessVerifier
	users    IdentityResolver
	revoked  token.RevocationList
}

// NewAuthGate create AuthGate, revoked may be nil when redis is not available
func NewAuthGate(verifier AccessVerifier, users IdentityResolver, revoked token.RevocationList) *AuthGate {
	return &AuthGate{verifier: verifier, users: users, revoked: revoked}
}

// ExtractToken cookie first, then the Authorization header
func ExtractToken(c *fiber.Ctx) string {
	if t := c.Cookies(CookieAccessToken); t != "" {
		return t
	}
	return token.FromBearer(c.Get(fiber.HeaderAuthorization))
}

func (g *AuthGate) authenticate(c *fiber.Ctx) (*token.Identity, *token.AccessClaims, error) {
	tokenStr := ExtractToken(c)
	if tokenStr == "" {
		return nil, nil, errprocess.Unauthorized("Unauthorized request")
	}

	claims, err := g.verifier.VerifyAccess(tokenStr)
	if err != nil {
		return nil, nil, errprocess.Unauthorized("Invalid access token").WithCause(err)
	}

	ctx := c.UserContext()
	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			// redis 掛掉不擋請求
			logger.Log.Warn("revocation lookup failed", zap.Error(err))
		} else if revoked {
			return nil, nil, errprocess.Unauthorized("Invalid access token")
		}
	}

	identity, err := g.users.ResolveIdentity(ctx, claims.UserID)
	if err != nil || identity == nil {
		return nil, nil, errprocess.Unauthorized("Invalid access token").WithCause(err)
	}
	return identity, claims, nil
}

// Required reject the request with 401 unless a valid token is presented
func (g *AuthGate) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, claims, err := g.authenticate(c)
		if err != nil {
			return err
		}
		c.Locals(LocalIdentity, identity)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// Optional attach the identity when the token is valid, otherwise continue anonymously
func (g *AuthGate) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ExtractToken(c) == "" {
			return c.Next()
		}
		identity, claims, err := g.authenticate(c)
		if err == nil {
			c.Locals(LocalIdentity, identity)
			c.Locals(LocalClaims, claims)
		}
		return c.Next()
	}
}

// Logout any authentication failure still logs the caller out: cookies cleared, 200
func (g *AuthGate) Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, claims, err := g.authenticate(c)
		if err != nil {
			ClearAuthCookies(c)
			return response.OK(c, nil, "User logged out")
		}
		c.Locals(LocalIdentity, identity)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// CurrentIdentity identity attached by the gate
func CurrentIdentity(c *fiber.Ctx) (*token.Identity, bool) {
	identity, ok := c.Locals(LocalIdentity).(*token.Identity)
	return identity, ok && identity != nil
}

// CurrentClaims claims attached by the gate
func CurrentClaims(c *fiber.Ctx) (*token.AccessClaims, bool) {
	claims, ok := c.Locals(LocalClaims).(*token.AccessClaims)
	return claims, ok && claims != nil
}

// MustIdentity identity or 401, for handlers behind Required
func MustIdentity(c *fiber.Ctx) (*token.Identity, error) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		return nil, errprocess.Unauthorized("Unauthorized request")
	}
	return identity, nil
}

func authCookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

// SetAuthCookies write both tokens as http-only strict cookies
func SetAuthCookies(c *fiber.Ctx, pair token.Pair, accessTTL, refreshTTL time.Duration) {
	now := time.Now()
	c.Cookie(authCookie(CookieAccessToken, pair.AccessToken, now.Add(accessTTL)))
	c.Cookie(authCookie(CookieRefreshToken, pair.RefreshToken, now.Add(refreshTTL)))
}

// ClearAuthCookies expire both token cookies
func ClearAuthCookies(c *fiber.Ctx) {
	past := time.Unix(0, 0)
	c.Cookie(authCookie(CookieAccessToken, "", past))
	c.Cookie(authCookie(CookieRefreshToken, "", past))
}
