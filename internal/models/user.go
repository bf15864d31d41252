package models

import "time"

type Level string

const (
	LevelAdmin Level = "admin"
	LevelUser  Level = "user"
)

// User do painel. A senha fica como foi informada (ou como hash bcrypt, se já vier assim).
type User struct {
	ID       string `json:"id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Level    Level  `json:"nivel" validate:"oneof=admin user"`
	Name     string `json:"nombre,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`

	CreatedAt time.Time `json:"fechaCreacion"`
}

func (u *User) Key() string { return u.ID }

func (u *User) Assign(id string, now time.Time) {
	u.ID = id
	u.CreatedAt = now
}

func (u *User) Touch(time.Time) {}

func (u User) IsAdmin() bool {
	return u.Level == LevelAdmin
}

type UserPatch struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Level    *Level  `json:"nivel" validate:"omitempty,oneof=admin user"`
	Name     *string `json:"nombre"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func (p UserPatch) Apply(u *User) {
	setString(&u.Username, p.Username)
	setString(&u.Password, p.Password)
	setString(&u.Name, p.Name)
	setString(&u.Email, p.Email)
	if p.Level != nil {
		u.Level = *p.Level
	}
}
