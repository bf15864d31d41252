package models

import "time"

// Cliente atendido pela empresa (restaurante, hotel, padaria...)
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"nombre" validate:"required"`
	Company string `json:"empresa,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"direccion,omitempty"`
	TaxID   string `json:"cuit,omitempty"`
	Contact string `json:"contacto,omitempty"`

	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`
}

func (c *Client) Key() string { return c.ID }

func (c *Client) Assign(id string, now time.Time) {
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
}

func (c *Client) Touch(now time.Time) { c.UpdatedAt = now }

// ClientPatch carrega apenas os campos informados no PATCH
type ClientPatch struct {
	Name    *string `json:"nombre" validate:"omitempty,min=1"`
	Company *string `json:"empresa"`
	Phone   *string `json:"telefono"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"direccion"`
	TaxID   *string `json:"cuit"`
	Contact *string `json:"contacto"`
}

func (p ClientPatch) Apply(c *Client) {
	setString(&c.Name, p.Name)
	setString(&c.Company, p.Company)
	setString(&c.Phone, p.Phone)
	setString(&c.Email, p.Email)
	setString(&c.Address, p.Address)
	setString(&c.TaxID, p.TaxID)
	setString(&c.Contact, p.Contact)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
