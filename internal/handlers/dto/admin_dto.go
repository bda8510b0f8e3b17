package dto

import "github.com/rafabene/propfinder-backend/internal/services"

// StatsResponse representa as contagens do painel admin
type StatsResponse struct {
	Users      int64 `json:"users"`
	Agents     int64 `json:"agents"`
	Properties int64 `json:"properties"`
	BlogPosts  int64 `json:"blogPosts"`
}

// MessageResponse representa uma resposta de confirmação simples
type MessageResponse struct {
	Message string `json:"message"`
}

// ToStatsResponse converte as contagens do serviço para StatsResponse
func ToStatsResponse(stats *services.Stats) StatsResponse {
	return StatsResponse{
		Users:      stats.Users,
		Agents:     stats.Agents,
		Properties: stats.Properties,
		BlogPosts:  stats.BlogPosts,
	}
}
