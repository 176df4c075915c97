package audit

import (
	"encoding/json"
	"time"
)

type ListAuditLogsQuery struct {
	Action   string `form:"action"`
	Entity   string `form:"entity"`
	EntityID string `form:"entity_id"`
	ActorID  string `form:"actor_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type AuditLogResponse struct {
	ID        string          `json:"id"`
	ActorID   string          `json:"actor_id,omitempty"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entity_id"`
	OldValues json.RawMessage `json:"old_values,omitempty"`
	NewValues json.RawMessage `json:"new_values,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func mapToResponse(l AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:        l.ID.String(),
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		OldValues: json.RawMessage(l.OldValues),
		NewValues: json.RawMessage(l.NewValues),
		Metadata:  json.RawMessage(l.Metadata),
		CreatedAt: l.CreatedAt,
	}
	if l.ActorID != nil {
		resp.ActorID = l.ActorID.String()
	}
	return resp
}
