package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Access errors
	ErrUnauthorized = errors.New("invalid authentication credentials")
	ErrForbidden    = errors.New("insufficient privileges")

	// Lookup errors
	ErrProjectNotFound = errors.New("project not found")

	// ErrUserNotFound не доходит до HTTP: аутентификация превращает его в ErrUnauthorized
	ErrUserNotFound = errors.New("user not found")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrUnauthorized:    {Code: "UNAUTHORIZED", Message: "invalid authentication credentials"},
	ErrForbidden:       {Code: "FORBIDDEN", Message: "Insufficient privileges"},
	ErrProjectNotFound: {Code: "NOT_FOUND", Message: "project not found"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку.
// Обернутые ошибки (fmt.Errorf с %w) тоже распознаются.
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
