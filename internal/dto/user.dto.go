package dto

import (
	"time"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// UserDTO é o usuário sem a senha
type UserDTO struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Level     models.Level `json:"nivel"`
	Name      string       `json:"nombre,omitempty"`
	Email     string       `json:"email,omitempty"`
	CreatedAt time.Time    `json:"fechaCreacion"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Level:     u.Level,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserDTO(u))
	}
	return out
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
