package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/numfmt/internal/repository"
	"github.com/ndewijer/numfmt/internal/service"
)

func NewTestShopService(t *testing.T, db *sql.DB) *service.ShopService {
	t.Helper()

	return service.NewShopService(repository.NewShopRepository(db))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
