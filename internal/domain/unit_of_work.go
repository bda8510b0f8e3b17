package domain

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// As escritas compostas (promoção/demissão de agente, remoção em cascata
// de usuário) dependem de WithTransaction para serem tudo-ou-nada.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
