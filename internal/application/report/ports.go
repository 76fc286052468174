package report

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// CustodyFormGenerator zimmet formu PDF'ini üreten çıkış portu.
type CustodyFormGenerator interface {
	GenerateCustodyForm(ctx context.Context, holderName string, rows []repository.CustodyRow) ([]byte, error)
}
