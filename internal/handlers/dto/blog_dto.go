package dto

import (
	"time"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
)

// CreateBlogPostRequest representa a requisição para criar um post
type CreateBlogPostRequest struct {
	Title        string     `json:"title" binding:"required,max=500"`
	Slug         string     `json:"slug" binding:"required,max=500"`
	Excerpt      string     `json:"excerpt"`
	Content      string     `json:"content" binding:"required"`
	Image        string     `json:"image" binding:"omitempty,max=500"`
	Author       string     `json:"author" binding:"omitempty,max=255"`
	AuthorAvatar string     `json:"authorAvatar" binding:"omitempty,max=500"`
	Date         *time.Time `json:"date"`
	ReadTime     string     `json:"readTime" binding:"omitempty,max=50"`
	Category     string     `json:"category" binding:"omitempty,max=255"`
	Tags         []string   `json:"tags"`
}

// UpdateBlogPostRequest representa uma atualização parcial de post
type UpdateBlogPostRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=500"`
	Excerpt      *string    `json:"excerpt"`
	Content      *string    `json:"content"`
	Image        *string    `json:"image" binding:"omitempty,max=500"`
	Author       *string    `json:"author" binding:"omitempty,max=255"`
	AuthorAvatar *string    `json:"authorAvatar" binding:"omitempty,max=500"`
	Date         *time.Time `json:"date"`
	ReadTime     *string    `json:"readTime" binding:"omitempty,max=50"`
	Category     *string    `json:"category" binding:"omitempty,max=255"`
	Tags         *[]string  `json:"tags"`
}

// BlogPostResponse representa a resposta de um post
type BlogPostResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	Image        string    `json:"image"`
	Author       string    `json:"author"`
	AuthorAvatar string    `json:"authorAvatar"`
	Date         time.Time `json:"date"`
	ReadTime     string    `json:"readTime"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToBlogPostResponse converte uma entidade BlogPost para BlogPostResponse
func ToBlogPostResponse(post *entities.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:           post.ID,
		Title:        post.Title,
		Slug:         post.Slug,
		Excerpt:      post.Excerpt,
		Content:      post.Content,
		Image:        post.Image,
		Author:       post.Author,
		AuthorAvatar: post.AuthorAvatar,
		Date:         post.Date,
		ReadTime:     post.ReadTime,
		Category:     post.Category,
		Tags:         post.Tags,
		Views:        post.Views,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

// ToBlogPostResponses converte uma lista de BlogPost para BlogPostResponse
func ToBlogPostResponses(posts []*entities.BlogPost) []BlogPostResponse {
	responses := make([]BlogPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToBlogPostResponse(post)
	}
	return responses
}
