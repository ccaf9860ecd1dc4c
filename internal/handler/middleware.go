package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sonar-pr-decoration/internal/domain"
	"sonar-pr-decoration/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "userSession"

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			// Ответ на *echo.HTTPError пишет обработчик ошибок echo уже после middleware
			var httpErr *echo.HTTPError
			if err != nil && !c.Response().Committed && errors.As(err, &httpErr) {
				status = httpErr.Code
			}

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// ErrorMiddleware отдает ошибки привязки параметров запроса в формате ErrorResponse.
func ErrorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			var httpErr *echo.HTTPError
			if err == nil || !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				return err
			}

			return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", fmt.Sprint(httpErr.Message)))
		}
	}
}

// Authenticator создает сессию пользователя по токену.
type Authenticator interface {
	FromToken(ctx context.Context, token string) (domain.UserSession, error)
}

// AuthMiddleware определяет сессию пользователя запроса.
// Токен передается как Bearer или как логин basic-аутентификации с пустым паролем.
// Запрос без учетных данных обрабатывается анонимно.
func AuthMiddleware(authenticator Authenticator, logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, present := extractToken(c.Request())
			if !present {
				c.Set(sessionContextKey, session.Anonymous())
				return next(c)
			}

			userSession, err := authenticator.FromToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					httpErr, _ := domain.ToHTTPError(err)
					return c.JSON(http.StatusUnauthorized, toAPIErrorResponse(httpErr))
				}
				logger.WithError(err).Error("Failed to authenticate request")
				return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
			}

			c.Set(sessionContextKey, userSession)
			return next(c)
		}
	}
}

// SessionFromContext возвращает сессию, установленную AuthMiddleware, или анонимную.
func SessionFromContext(c echo.Context) domain.UserSession {
	if userSession, ok := c.Get(sessionContextKey).(domain.UserSession); ok {
		return userSession
	}
	return session.Anonymous()
}

func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token), true
	}

	// Пароль должен быть пустым: вход по логину и паролю не поддерживается
	if login, password, ok := r.BasicAuth(); ok && password == "" {
		return login, true
	}

	// Заголовок есть, но токена в нем нет: пустой токен не пройдет аутентификацию
	return "", true
}
