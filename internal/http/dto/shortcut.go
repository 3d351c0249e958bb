package dto

import (
	"encoding/json"
	"time"
	"webdesktop/internal/domain/models"
)

// Request
type (
	ShortcutRequest struct {
		Name         string          `json:"name"`
		Icon         string          `json:"icon"`
		PositionX    int             `json:"position_x"`
		PositionY    int             `json:"position_y"`
		Action       string          `json:"action,omitempty"`
		ActionParams json.RawMessage `json:"action_params,omitempty"`
	}
)

// Response
type (
	ShortcutResponse struct {
		ID           int64           `json:"id"`
		UserID       int64           `json:"user_id"`
		Name         string          `json:"name"`
		Icon         string          `json:"icon"`
		Action       string          `json:"action"`
		ActionParams json.RawMessage `json:"action_params,omitempty"`
		PositionX    int             `json:"position_x"`
		PositionY    int             `json:"position_y"`
		CreatedAt    time.Time       `json:"created_at"`
		UpdatedAt    time.Time       `json:"updated_at"`
	}

	CreatedResponse struct {
		ID int64 `json:"id"`
	}
)

// Request → Domain
func ShortcutRequestToDomain(r ShortcutRequest, userID, id int64) models.Shortcut {
	sc := models.Shortcut{
		ID:        id,
		UserID:    userID,
		Name:      r.Name,
		Icon:      r.Icon,
		Action:    r.Action,
		PositionX: r.PositionX,
		PositionY: r.PositionY,
	}
	// "null" считаем отсутствием параметров
	if len(r.ActionParams) > 0 && string(r.ActionParams) != "null" {
		sc.ActionParams = []byte(r.ActionParams)
	}
	return sc
}

// Domain → Response
func ShortcutResponseFromDomain(s models.Shortcut) ShortcutResponse {
	resp := ShortcutResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Icon:      s.Icon,
		Action:    s.Action,
		PositionX: s.PositionX,
		PositionY: s.PositionY,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if len(s.ActionParams) > 0 {
		resp.ActionParams = json.RawMessage(s.ActionParams)
	}
	return resp
}

func ShortcutResponsesFromDomains(list []models.Shortcut) []ShortcutResponse {
	responses := make([]ShortcutResponse, len(list))
	for i, s := range list {
		responses[i] = ShortcutResponseFromDomain(s)
	}
	return responses
}

// Client side: Domain → Request
func ShortcutRequestFromDomain(s models.Shortcut) ShortcutRequest {
	req := ShortcutRequest{
		Name:      s.Name,
		Icon:      s.Icon,
		PositionX: s.PositionX,
		PositionY: s.PositionY,
		Action:    s.Action,
	}
	if len(s.ActionParams) > 0 {
		req.ActionParams = json.RawMessage(s.ActionParams)
	}
	return req
}

// Client side: Response → Domain
func ShortcutResponseToDomain(r ShortcutResponse) models.Shortcut {
	sc := models.Shortcut{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Icon:      r.Icon,
		Action:    r.Action,
		PositionX: r.PositionX,
		PositionY: r.PositionY,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.ActionParams) > 0 && string(r.ActionParams) != "null" {
		sc.ActionParams = []byte(r.ActionParams)
	}
	return sc
}
