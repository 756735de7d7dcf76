package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/wb-go/wbf/ginext"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/handler/dto"
)

const principalKey = "principal"

// Auth validates bearer tokens issued by the platform identity service and
// gates routes by role. Tokens carry user_id and role claims.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

func (a *Auth) Authenticate() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("missing or malformed authorization header"))
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("invalid token claims"))
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("invalid token claims"))
			return
		}

		c.Set(principalKey, domain.Principal{
			UserID: userID,
			Role:   domain.Role(role),
		})
		c.Next()
	}
}

// RequireRoles is a flat capability check on the authenticated principal.
func (a *Auth) RequireRoles(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("authentication required"))
			return
		}
		if !principal.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("insufficient role"))
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	return principal, ok
}
