package dto

import (
	"time"

	"github.com/rafabene/propfinder-backend/internal/services"
)

// CreateAgentRequest representa a requisição para criar um agente.
// O email resolve o usuário a promover; se não existir, um User novo é
// criado com role AGENT.
type CreateAgentRequest struct {
	Name            string   `json:"name" binding:"required,min=2,max=100"`
	Email           string   `json:"email" binding:"required,email"`
	Title           string   `json:"title" binding:"required,max=255"`
	Image           string   `json:"image" binding:"omitempty,max=500"`
	Rating          float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount     int      `json:"reviewCount" binding:"omitempty,min=0"`
	SoldProperties  int      `json:"soldProperties" binding:"omitempty,min=0"`
	YearsExperience int      `json:"yearsExperience" binding:"omitempty,min=0"`
	Languages       []string `json:"languages"`
	Specialties     []string `json:"specialties"`
	Phone           string   `json:"phone" binding:"omitempty,max=50"`
	Bio             string   `json:"bio"`
}

// AgentResponse representa a resposta achatada de um agente
// (profile + nome/email do usuário dono; o id é o do profile)
type AgentResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Image           string    `json:"image"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
	SoldProperties  int       `json:"soldProperties"`
	YearsExperience int       `json:"yearsExperience"`
	Languages       []string  `json:"languages"`
	Specialties     []string  `json:"specialties"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AdminAgentResponse é a visão resumida usada no painel admin
type AdminAgentResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
	SoldProperties  int       `json:"soldProperties"`
	YearsExperience int       `json:"yearsExperience"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AdminAgentListResponse envelopa a listagem do painel admin
type AdminAgentListResponse struct {
	Agents []AdminAgentResponse `json:"agents"`
}

// ToAgentResponse converte um AgentView para AgentResponse
func ToAgentResponse(view *services.AgentView) AgentResponse {
	return AgentResponse{
		ID:              view.ID,
		Name:            view.Name,
		Title:           view.Title,
		Image:           view.Image,
		Rating:          view.Rating,
		ReviewCount:     view.ReviewCount,
		SoldProperties:  view.SoldProperties,
		YearsExperience: view.YearsExperience,
		Languages:       view.Languages,
		Specialties:     view.Specialties,
		Phone:           view.Phone,
		Email:           view.Email,
		Bio:             view.Bio,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
}

// ToAgentResponses converte uma lista de AgentView para AgentResponse
func ToAgentResponses(views []*services.AgentView) []AgentResponse {
	responses := make([]AgentResponse, len(views))
	for i, view := range views {
		responses[i] = ToAgentResponse(view)
	}
	return responses
}

// ToAdminAgentResponses converte AgentViews para a visão do painel admin
func ToAdminAgentResponses(views []*services.AgentView) []AdminAgentResponse {
	responses := make([]AdminAgentResponse, len(views))
	for i, view := range views {
		responses[i] = AdminAgentResponse{
			ID:              view.ID,
			Name:            view.Name,
			Email:           view.Email,
			Phone:           view.Phone,
			Rating:          view.Rating,
			ReviewCount:     view.ReviewCount,
			SoldProperties:  view.SoldProperties,
			YearsExperience: view.YearsExperience,
			CreatedAt:       view.CreatedAt,
		}
	}
	return responses
}
