package dto

import "github.com/google/uuid"

type CreateSkillRequest struct {
	Name string `json:"name"`
}

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
