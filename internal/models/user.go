package models

import "time"

// User представляет пользователя, которым управляет админ-консоль
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	FirstName    *string   `json:"first_name"`    // имя, может отсутствовать
	LastName     *string   `json:"last_name"`     // фамилия, может отсутствовать
	Email        string    `json:"email"`         // уникальный email
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"-"`             // bcrypt хеш пароля, наружу не отдается
	ID           int64     `json:"id"`            // автоинкрементный ID
	IsActive     bool      `json:"is_active"`     // учетная запись активна
	IsSuperuser  bool      `json:"is_superuser"`  // роль администратора
}
