package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/propfinder-backend/internal/domain/errors"
)

// getDB extrai a transação do contexto quando presente (ver UnitOfWork);
// fora de transação usa a conexão do repository
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

// translateWriteError converte erros do driver para erros de domínio.
// Violações de unicidade (email, agent_profiles.user_id, blog_posts.slug)
// viram ErrConflict.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrConflict
	}
	return err
}

// containsElement testa pertinência exata (case-sensitive) de um elemento
// em um conjunto armazenado como JSON
func containsElement(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}
