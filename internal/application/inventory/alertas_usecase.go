package inventory

import (
	"context"
	"sort"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// AlertasUseCase lista los artículos en o por debajo de su stock mínimo,
// ordenados por faltante descendente para priorizar compras.
type AlertasUseCase struct {
	articuloRepo repository.ArticuloRepository
}

// NewAlertasUseCase construye el caso de uso.
func NewAlertasUseCase(articuloRepo repository.ArticuloRepository) *AlertasUseCase {
	return &AlertasUseCase{articuloRepo: articuloRepo}
}

// ListAlertas devuelve las alertas de stock mínimo.
func (uc *AlertasUseCase) ListAlertas(ctx context.Context) ([]dto.AlertaStockDTO, error) {
	articulos, err := uc.articuloRepo.ListBajoMinimo()
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaStockDTO, 0, len(articulos))
	for _, a := range articulos {
		alertas = append(alertas, dto.AlertaStockDTO{
			ArticuloID:  a.ID,
			Codigo:      a.Codigo,
			Nombre:      a.Nombre,
			StockActual: a.StockActual,
			StockMinimo: a.StockMinimo,
			Faltante:    a.StockMinimo.Sub(a.StockActual),
		})
	}
	sort.SliceStable(alertas, func(i, j int) bool {
		return alertas[i].Faltante.GreaterThan(alertas[j].Faltante)
	})
	return alertas, nil
}
