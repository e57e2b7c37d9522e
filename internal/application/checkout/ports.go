package checkout

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRepos repositorios ligados a una misma transacción.
type TxRepos struct {
	Cart    repository.CartRepository
	Order   repository.OrderRepository
	Product repository.ProductRepository
}

// TxRunner ejecuta fn dentro de una transacción: si fn devuelve error se hace
// rollback completo, si no, commit. Los repos recibidos comparten la tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
