package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
	"storefront/internal/infra/token"
	"storefront/internal/repository"
	"storefront/internal/usecase"
)

// contextのキー
const CtxIdentityKey = "identity" // model.Identity

// 署名・期限を確認してclaimsを返す約束
type TokenVerifier interface {
	Verify(raw string) (token.Claims, error)
}

// bearerAuth用のJWT検証ミドルウェア。
// ヘッダとトークンの検証に通るまでDBには触らない。
func AuthJWT(verifier TokenVerifier, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token is not supplied"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token is not supplied"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token is not supplied"))
			}

			//JWTを検証する
			claims, err := verifier.Verify(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token is not valid"))
			}

			//DBから最新のuserを取得する（削除済みなら401、DB障害は500）
			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if errors.Is(err, repository.ErrNotFound) || (err == nil && user == nil) {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token is not valid"))
			}
			if err != nil {
				return usecase.NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//contextへ保存
			c.Set(CtxIdentityKey, model.Identity{
				UserID:  user.ID,
				Name:    user.Name,
				Email:   user.Email,
				IsAdmin: user.IsAdmin,
			})

			return next(c)
		}
	}
}

// IdentityFrom はAuthJWTが入れた利用者を返す（なければゼロ値）
func IdentityFrom(c echo.Context) model.Identity {
	who, _ := c.Get(CtxIdentityKey).(model.Identity)
	return who
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
