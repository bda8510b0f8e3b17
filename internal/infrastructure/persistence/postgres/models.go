package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(500);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// AgentProfileModel é o model GORM para profiles de agente.
// O uniqueIndex em UserID é a última linha de defesa da relação 1:1 —
// a criação concorrente de dois profiles para o mesmo usuário falha aqui.
type AgentProfileModel struct {
	ID              string                       `gorm:"type:uuid;primaryKey"`
	UserID          string                       `gorm:"type:uuid;uniqueIndex;not null"`
	Title           string                       `gorm:"type:varchar(255);not null"`
	Image           string                       `gorm:"type:varchar(500)"`
	Rating          float64                      `gorm:"not null;default:0;index"`
	ReviewCount     int                          `gorm:"not null;default:0"`
	SoldProperties  int                          `gorm:"not null;default:0"`
	YearsExperience int                          `gorm:"not null;default:0"`
	Languages       datatypes.JSONSlice[string]  `gorm:"type:json"`
	Specialties     datatypes.JSONSlice[string]  `gorm:"type:json"`
	Phone           string                       `gorm:"type:varchar(50)"`
	Bio             string                       `gorm:"type:text"`
	CreatedAt       time.Time                    `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time                    `gorm:"autoUpdateTime"`
}

func (AgentProfileModel) TableName() string {
	return "agent_profiles"
}

// PropertyModel é o model GORM para imóveis
type PropertyModel struct {
	ID          string                      `gorm:"type:uuid;primaryKey"`
	UserID      *string                     `gorm:"type:uuid;index"`
	Title       string                      `gorm:"type:varchar(500);not null"`
	Location    string                      `gorm:"type:varchar(500);not null;index"`
	Price       string                      `gorm:"type:varchar(100)"`
	Area        string                      `gorm:"type:varchar(100)"`
	Image       string                      `gorm:"type:varchar(500)"`
	Bedrooms    int                         `gorm:"not null;default:0"`
	Bathrooms   int                         `gorm:"not null;default:0"`
	Rating      float64                     `gorm:"not null;default:0"`
	Featured    bool                        `gorm:"not null;default:false;index"`
	Amenities   datatypes.JSONSlice[string] `gorm:"type:json"`
	Description string                      `gorm:"type:text"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

// BlogPostModel é o model GORM para posts do blog
type BlogPostModel struct {
	ID           string                      `gorm:"type:uuid;primaryKey"`
	Title        string                      `gorm:"type:varchar(500);not null"`
	Slug         string                      `gorm:"type:varchar(500);uniqueIndex;not null"`
	Excerpt      string                      `gorm:"type:text"`
	Content      string                      `gorm:"type:text;not null"`
	Image        string                      `gorm:"type:varchar(500)"`
	Author       string                      `gorm:"type:varchar(255)"`
	AuthorAvatar string                      `gorm:"type:varchar(500)"`
	Date         time.Time                   `gorm:"not null;index"`
	ReadTime     string                      `gorm:"type:varchar(50)"`
	Category     string                      `gorm:"type:varchar(255);index"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:json"`
	Views        int                         `gorm:"not null;default:0"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}
