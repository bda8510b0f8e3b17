package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
)

// BlogService contém a lógica de negócio para posts do blog.
// Mutações não checam posse: qualquer AGENT/ADMIN edita qualquer post
// (Author é texto livre, sem vínculo com User).
type BlogService struct {
	blogRepo repositories.BlogPostRepository
	logger   ports.Logger
}

// NewBlogService cria um novo BlogService
func NewBlogService(blogRepo repositories.BlogPostRepository, logger ports.Logger) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// CreateBlogPostInput representa os dados para criar um post
type CreateBlogPostInput struct {
	Title        string
	Slug         string
	Excerpt      string
	Content      string
	Image        string
	Author       string
	AuthorAvatar string
	Date         time.Time
	ReadTime     string
	Category     string
	Tags         []string
}

// UpdateBlogPostInput representa uma atualização parcial de post
type UpdateBlogPostInput struct {
	Title        *string
	Excerpt      *string
	Content      *string
	Image        *string
	Author       *string
	AuthorAvatar *string
	Date         *time.Time
	ReadTime     *string
	Category     *string
	Tags         *[]string
}

// ListPosts lista posts ordenados por data de publicação decrescente
func (s *BlogService) ListPosts(ctx context.Context, filters repositories.BlogFilters) ([]*entities.BlogPost, error) {
	return s.blogRepo.List(ctx, filters)
}

// GetPostBySlug busca um post pelo slug e incrementa o contador de views
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrNotFound
	}

	if err := s.blogRepo.IncrementViews(ctx, post.ID); err != nil {
		// A leitura não falha por causa do contador
		s.logger.Warn("failed to increment views", "post_id", post.ID, "error", err)
	} else {
		post.Views++
	}

	return post, nil
}

// CreatePost cria um novo post. Slug duplicado resulta em ErrConflict.
func (s *BlogService) CreatePost(ctx context.Context, identity authz.Identity, input CreateBlogPostInput) (*entities.BlogPost, error) {
	if err := authz.Authorize(identity, authz.RouteBlog, http.MethodPost, nil); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	post := &entities.BlogPost{
		Title:        input.Title,
		Slug:         input.Slug,
		Excerpt:      input.Excerpt,
		Content:      input.Content,
		Image:        input.Image,
		Author:       input.Author,
		AuthorAvatar: input.AuthorAvatar,
		Date:         date,
		ReadTime:     input.ReadTime,
		Category:     input.Category,
		Tags:         input.Tags,
	}

	if err := post.Validate(); err != nil {
		return nil, &errors.ValidationErrors{
			Fields: []errors.ValidationError{{Field: "post", Message: err.Error()}},
		}
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("blog post created", "post_id", post.ID, "slug", post.Slug)
	return post, nil
}

// UpdatePost atualiza parcialmente um post identificado pelo slug
func (s *BlogService) UpdatePost(ctx context.Context, identity authz.Identity, slug string, input UpdateBlogPostInput) (*entities.BlogPost, error) {
	if err := authz.Authorize(identity, authz.RouteBlog, http.MethodPut, nil); err != nil {
		return nil, err
	}

	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrNotFound
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.AuthorAvatar != nil {
		post.AuthorAvatar = *input.AuthorAvatar
	}
	if input.Date != nil {
		post.Date = *input.Date
	}
	if input.ReadTime != nil {
		post.ReadTime = *input.ReadTime
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Tags != nil {
		post.Tags = *input.Tags
	}

	if err := post.Validate(); err != nil {
		return nil, &errors.ValidationErrors{
			Fields: []errors.ValidationError{{Field: "post", Message: err.Error()}},
		}
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost remove um post identificado pelo slug
func (s *BlogService) DeletePost(ctx context.Context, identity authz.Identity, slug string) error {
	if err := authz.Authorize(identity, authz.RouteBlog, http.MethodDelete, nil); err != nil {
		return err
	}

	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.ErrNotFound
	}

	if err := s.blogRepo.Delete(ctx, post.ID); err != nil {
		return err
	}

	s.logger.Info("blog post deleted", "post_id", post.ID, "slug", slug)
	return nil
}
