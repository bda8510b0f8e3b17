package entities

import (
	"errors"
	"time"
)

// AgentProfile é a extensão 1:1 de um User com role AGENT.
// Invariante: o profile existe se e somente se o User dono tem role AGENT.
// A invariante é mantida exclusivamente pela operação transacional de
// promoção/demissão no AgentService — nenhum outro código escreve em
// AgentProfile ou em User.Role diretamente.
type AgentProfile struct {
	ID              string
	UserID          string
	Title           string
	Image           string
	Rating          float64 // 0 a 5
	ReviewCount     int
	SoldProperties  int
	YearsExperience int
	Languages       []string
	Specialties     []string
	Phone           string
	Bio             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate valida regras de negócio do AgentProfile
func (p *AgentProfile) Validate() error {
	if p.UserID == "" {
		return errors.New("user id is required")
	}

	if p.Title == "" {
		return errors.New("title is required")
	}

	if p.Rating < 0 || p.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}

	if p.ReviewCount < 0 || p.SoldProperties < 0 || p.YearsExperience < 0 {
		return errors.New("counters must not be negative")
	}

	return nil
}
