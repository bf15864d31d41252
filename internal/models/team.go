package models

import "time"

type Team struct {
	ID        string `json:"id"`
	Name      string `json:"nombre" validate:"required"`
	Leader    string `json:"lider" validate:"required"`
	Phone     string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Specialty string `json:"especialidad,omitempty"`
	Active    bool   `json:"activo"`

	CreatedAt time.Time `json:"fechaCreacion"`
}

func (t *Team) Key() string { return t.ID }

func (t *Team) Assign(id string, now time.Time) {
	t.ID = id
	t.CreatedAt = now
}

func (t *Team) Touch(time.Time) {}

type TeamPatch struct {
	Name      *string `json:"nombre" validate:"omitempty,min=1"`
	Leader    *string `json:"lider" validate:"omitempty,min=1"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Specialty *string `json:"especialidad"`
	Active    *bool   `json:"activo"`
}

func (p TeamPatch) Apply(t *Team) {
	setString(&t.Name, p.Name)
	setString(&t.Leader, p.Leader)
	setString(&t.Phone, p.Phone)
	setString(&t.Email, p.Email)
	setString(&t.Specialty, p.Specialty)
	if p.Active != nil {
		t.Active = *p.Active
	}
}
