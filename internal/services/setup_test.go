package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/propfinder-backend/internal/domain"
	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/ports"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
	"github.com/rafabene/propfinder-backend/internal/domain/valueobjects"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/logging"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/persistence/postgres"
)

const testTokenTTL = time.Hour

// testEnv agrupa as dependências reais dos serviços sobre um banco
// sqlite em memória, com o mesmo schema e a mesma tradução de erros
// de unicidade usados em produção
type testEnv struct {
	db           *gorm.DB
	userRepo     repositories.UserRepository
	profileRepo  repositories.AgentProfileRepository
	propertyRepo repositories.PropertyRepository
	blogRepo     repositories.BlogPostRepository
	uow          domain.UnitOfWork
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open in-memory database")
	require.NoError(t, postgres.AutoMigrate(db))

	return &testEnv{
		db:           db,
		userRepo:     postgres.NewUserRepository(db),
		profileRepo:  postgres.NewAgentProfileRepository(db),
		propertyRepo: postgres.NewPropertyRepository(db),
		blogRepo:     postgres.NewBlogPostRepository(db),
		uow:          postgres.NewUnitOfWork(db),
	}
}

func (e *testEnv) agentService(t *testing.T) *AgentService {
	t.Helper()
	return NewAgentService(e.profileRepo, e.userRepo, e.uow, testLogger())
}

func (e *testEnv) propertyService(t *testing.T) *PropertyService {
	t.Helper()
	return NewPropertyService(e.propertyRepo, testLogger())
}

func (e *testEnv) blogService(t *testing.T) *BlogService {
	t.Helper()
	return NewBlogService(e.blogRepo, testLogger())
}

func (e *testEnv) adminService(t *testing.T) *AdminService {
	t.Helper()
	return NewAdminService(e.userRepo, e.profileRepo, e.propertyRepo, e.blogRepo, e.uow, testLogger())
}

func (e *testEnv) authService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(e.userRepo, testLogger(), "test-secret", testTokenTTL)
}

// createUser insere um usuário direto pelo repositório e devolve a entidade
func (e *testEnv) createUser(t *testing.T, emailRaw, name string, role entities.Role) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(emailRaw)
	require.NoError(t, err)

	user := &entities.User{
		Email: email,
		Name:  name,
		Role:  role,
	}
	require.NoError(t, e.userRepo.Create(context.Background(), user))
	return user
}

func (e *testEnv) identityFor(user *entities.User) authz.Identity {
	return authz.Identity{UserID: user.ID, Role: user.Role}
}

func testLogger() ports.Logger {
	return logging.NewSlogLogger("error")
}
