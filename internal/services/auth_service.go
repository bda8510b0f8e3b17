package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de cadastro, login e verificação de tokens
type AuthService struct {
	userRepo  repositories.UserRepository
	logger    ports.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// RegisterInput representa os dados para cadastrar um usuário
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register cadastra um novo usuário com role USER
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
	}

	if err := user.Validate(); err != nil {
		return nil, &errors.ValidationErrors{
			Fields: []errors.ValidationError{{Field: "user", Message: err.Error()}},
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Corrida entre o FindByEmail e o Create: o índice único decide
		if err == errors.ErrConflict {
			return nil, errors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", email.String())
	return user, nil
}

// Login autentica um usuário e retorna um token JWT assinado
func (s *AuthService) Login(ctx context.Context, emailRaw, password string) (string, *entities.User, error) {
	email, err := valueobjects.NewEmail(emailRaw)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return "", nil, err
	}
	// Contas sem senha (OAuth puro ou criadas pela promoção de agente)
	// não fazem login por credencial
	if user == nil || user.PasswordHash == "" {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// GenerateToken emite um JWT HS256 com user_id e role
func (s *AuthService) GenerateToken(user *entities.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken valida um token e devolve a identidade correspondente.
// Qualquer falha (assinatura, expiração, claims malformadas) retorna erro;
// o chamador decide o fallback (o middleware resolve para anônimo).
func (s *AuthService) VerifyToken(tokenString string) (authz.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return authz.Anonymous(), fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return authz.Anonymous(), errors.ErrUnauthenticated
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return authz.Anonymous(), errors.ErrUnauthenticated
	}

	roleStr, ok := claims["role"].(string)
	role := entities.Role(roleStr)
	if !ok || !role.IsValid() {
		return authz.Anonymous(), errors.ErrUnauthenticated
	}

	return authz.Identity{UserID: userID, Role: role}, nil
}
