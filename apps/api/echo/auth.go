package echoapi

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/shule/core"
)

var errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	IsAdmin bool `json:"is_admin,omitempty"`
}

// GetAdminClaims returns the claims issued on a successful admin login.
func GetAdminClaims(conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   conf.Admin.Username,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		IsAdmin: true,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

// adminTokenMiddleware requires a valid admin JWT. It is only mounted when
// Server.RequireAdminToken is set; by default class mutations are open and
// the client's admin gating is presentational.
func adminTokenMiddleware(conf *core.Config) echo.MiddlewareFunc {
	jwtmw := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "adminToken",
		Claims:        new(Claims),
	})
	adminCheck := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if token, ok := ctx.Get("adminToken").(*jwt.Token); ok {
				if claims, ok := token.Claims.(*Claims); ok && claims.IsAdmin {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtmw(adminCheck(next))
	}
}

type authApi struct {
	conf *core.Config
}

func registerAuthAPI(g *echo.Group, conf *core.Config) {
	api := authApi{conf: conf}

	g.POST("/login", api.login)
}

// login checks the submitted credentials against the single configured
// admin pair and issues a token on match. The token is additive: no route
// requires it unless Server.RequireAdminToken is set.
func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}

	// anything but the exact configured pair is a 401, empty input included;
	// no trimming: " admin " is not "admin"
	if err := api.authenticate(data.Username, data.Password); err != nil {
		return err
	}

	token, err := GenerateToken(api.conf, GetAdminClaims(api.conf))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Message: "Login successful", Token: token})
}

func (api *authApi) authenticate(uname, pwd string) error {
	admin := api.conf.Admin
	if subtle.ConstantTimeCompare([]byte(uname), []byte(admin.Username)) != 1 {
		return errInvalidCredentials
	}
	if admin.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(pwd)); err != nil {
			return errInvalidCredentials
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(pwd), []byte(admin.Password)) != 1 {
		return errInvalidCredentials
	}
	return nil
}

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
)
