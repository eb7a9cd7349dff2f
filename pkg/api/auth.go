package api

// LoginRequest представляет запрос на аутентификацию администратора
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде, передается только по TLS
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // всегда "bearer"
}

// ErrorResponse представляет ответ с ошибкой.
// FastAPI-совместимые серверы кладут описание в detail, остальные в error.
type ErrorResponse struct {
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Text returns the most specific message carried by the response.
func (e ErrorResponse) Text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthStatusHealthy is the only status value treated as a healthy system.
const HealthStatusHealthy = "healthy"
