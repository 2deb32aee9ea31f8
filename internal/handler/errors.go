package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPErrorならそのまま返す。それ以外はHTTPErrorHandlerで500にする
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	return err
}

// HTTPErrorHandler はハンドラから漏れたエラーとpanicを同じJSONにする。
// 詳細はログにだけ出す。
func HTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if he, ok := usecase.AsHTTPError(err); ok {
			_ = c.JSON(he.Status, ErrorResponse{Error: he.Message})
			return
		}

		//404/405など echo が返すもの
		var ee *echo.HTTPError
		if errors.As(err, &ee) && ee.Code < http.StatusInternalServerError {
			msg := http.StatusText(ee.Code)
			if s, ok := ee.Message.(string); ok {
				msg = s
			}
			_ = c.JSON(ee.Code, ErrorResponse{Error: msg})
			return
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// bodyを読んでvalidateタグを確認
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}
