package entities

import (
	"errors"
	"time"
)

// BlogPost representa um artigo do blog.
// Author é texto livre — não é chave estrangeira para User.
type BlogPost struct {
	ID           string
	Title        string
	Slug         string // único, usado como chave na URL
	Excerpt      string
	Content      string
	Image        string
	Author       string
	AuthorAvatar string
	Date         time.Time
	ReadTime     string // texto livre, ex: "5 min read"
	Category     string
	Tags         []string
	Views        int // contador monotônico, incrementado na leitura
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate valida regras de negócio do BlogPost
func (b *BlogPost) Validate() error {
	if b.Title == "" {
		return errors.New("title is required")
	}

	if b.Slug == "" {
		return errors.New("slug is required")
	}

	if b.Content == "" {
		return errors.New("content is required")
	}

	if b.Views < 0 {
		return errors.New("views must not be negative")
	}

	return nil
}
