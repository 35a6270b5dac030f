package inventory

import (
	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain/entity"
)

func toArticuloResponse(a *entity.Articulo) dto.ArticuloResponse {
	return dto.ArticuloResponse{
		ID:               a.ID,
		Codigo:           a.Codigo,
		Nombre:           a.Nombre,
		Categoria:        a.Categoria,
		UnidadMedida:     a.UnidadMedida,
		StockMinimo:      a.StockMinimo,
		ControlPorRollos: a.ControlPorRollos,
		StockActual:      a.StockActual,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toIngresoResponse(i *entity.Ingreso) dto.IngresoResponse {
	return dto.IngresoResponse{
		ID:                 i.ID,
		ArticuloID:         i.ArticuloID,
		Cantidad:           i.Cantidad,
		CostoUnitario:      i.CostoUnitario,
		CantidadDisponible: i.CantidadDisponible,
		Proveedor:          i.Proveedor,
		NumeroDocumento:    i.NumeroDocumento,
		Observaciones:      i.Observaciones,
		Fecha:              i.Fecha,
	}
}

func toRolloResponse(r *entity.Rollo) dto.RolloResponse {
	return dto.RolloResponse{
		ID:                r.ID,
		ArticuloID:        r.ArticuloID,
		IngresoID:         r.IngresoID,
		Numero:            r.Numero,
		MetrajeTotal:      r.MetrajeTotal,
		MetrajeDisponible: r.MetrajeDisponible,
		Ancho:             r.Ancho,
		Tono:              r.Tono,
		Activo:            r.Activo,
	}
}

func toSalidaResponse(s *entity.Salida) dto.SalidaResponse {
	detalle := make([]dto.DetalleFifoDTO, 0, len(s.Detalle))
	for _, d := range s.Detalle {
		detalle = append(detalle, dto.DetalleFifoDTO{
			IngresoID:     d.IngresoID,
			RolloID:       d.RolloID,
			Cantidad:      d.Cantidad,
			CostoUnitario: d.CostoUnitario,
		})
	}
	return dto.SalidaResponse{
		ID:            s.ID,
		ArticuloID:    s.ArticuloID,
		Cantidad:      s.Cantidad,
		RegistroID:    s.RegistroID,
		CostoTotal:    s.CostoTotal,
		DetalleFifo:   detalle,
		Observaciones: s.Observaciones,
		Fecha:         s.Fecha,
	}
}

func toAjusteResponse(a *entity.Ajuste) dto.AjusteResponse {
	return dto.AjusteResponse{
		ID:            a.ID,
		ArticuloID:    a.ArticuloID,
		Tipo:          a.Tipo,
		Cantidad:      a.Cantidad,
		Motivo:        a.Motivo,
		Observaciones: a.Observaciones,
		Fecha:         a.Fecha,
	}
}
