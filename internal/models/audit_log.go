package models

import "time"

type AuditLog struct {
	ID       string `json:"id"`
	UserID   string `json:"userId,omitempty"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entityId,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *AuditLog) Key() string { return a.ID }

func (a *AuditLog) Assign(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
}

func (a *AuditLog) Touch(time.Time) {}
