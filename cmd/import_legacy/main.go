// Herramienta de un solo uso: importa los CSV exportados del sistema
// anterior (codificados en ISO-8859-1) a Postgres.
//
// Uso:
//
//	import_legacy -dir ./legado
//
// Espera en el directorio, cada uno opcional:
//
//	marcas.csv / telas.csv / colores.csv / tallas.csv / hilos.csv
//	    nombre
//	articulos.csv
//	    codigo,nombre,categoria,unidad_medida,stock_minimo,control_por_rollos
//	ingresos.csv
//	    articulo_codigo,cantidad,costo_unitario,proveedor,documento,fecha (2006-01-02)
//
// Los ingresos se importan como lotes con toda la cantidad disponible y
// actualizan el stock agregado del artículo.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/infrastructure/postgres"
	"github.com/jmcastro/textil-api/pkg/config"
	"github.com/jmcastro/textil-api/pkg/logger"
)

func main() {
	dir := flag.String("dir", ".", "directorio con los CSV del sistema anterior")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	catalogoRepo := postgres.NewCatalogoRepository(pool)
	articuloRepo := postgres.NewArticuloRepository(pool)
	ingresoRepo := postgres.NewIngresoRepository(pool)

	// Catálogos: un CSV por tipo, una columna nombre.
	for _, tipo := range []string{
		entity.CatalogoMarcas, entity.CatalogoTelas, entity.CatalogoColores,
		entity.CatalogoTallas, entity.CatalogoHilos,
	} {
		n, err := importarCatalogo(catalogoRepo, filepath.Join(*dir, tipo+".csv"), tipo)
		if err != nil {
			log.Fatal().Err(err).Str("tipo", tipo).Msg("importar catálogo")
		}
		if n > 0 {
			log.Info().Str("tipo", tipo).Int("filas", n).Msg("catálogo importado")
		}
	}

	n, err := importarArticulos(articuloRepo, filepath.Join(*dir, "articulos.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("importar artículos")
	}
	log.Info().Int("filas", n).Msg("artículos importados")

	n, err = importarIngresos(articuloRepo, ingresoRepo, filepath.Join(*dir, "ingresos.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("importar ingresos")
	}
	log.Info().Int("filas", n).Msg("ingresos importados")
}

// abrirCSV abre el archivo decodificando ISO-8859-1 a UTF-8. Devuelve
// (nil, nil, nil) si el archivo no existe.
func abrirCSV(path string) (*csv.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.TrimLeadingSpace = true
	return r, f, nil
}

func importarCatalogo(repo *postgres.CatalogoRepo, path, tipo string) (int, error) {
	r, closer, err := abrirCSV(path)
	if err != nil || r == nil {
		return 0, err
	}
	defer closer.Close()

	count := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("fila %d: %w", count+1, err)
		}
		nombre := strings.TrimSpace(rec[0])
		if nombre == "" || strings.EqualFold(nombre, "nombre") {
			continue // cabecera o fila vacía
		}
		item := &entity.ItemCatalogo{
			ID:     uuid.New().String(),
			Tipo:   tipo,
			Nombre: nombre,
		}
		if err := repo.Create(item); err != nil {
			return count, fmt.Errorf("%q: %w", nombre, err)
		}
		count++
	}
	return count, nil
}

func importarArticulos(repo *postgres.ArticuloRepo, path string) (int, error) {
	r, closer, err := abrirCSV(path)
	if err != nil || r == nil {
		return 0, err
	}
	defer closer.Close()

	count := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("fila %d: %w", count+1, err)
		}
		if len(rec) < 6 || strings.EqualFold(rec[0], "codigo") {
			continue
		}
		minimo, err := decimal.NewFromString(strings.TrimSpace(rec[4]))
		if err != nil {
			return count, fmt.Errorf("stock_minimo de %q: %w", rec[0], err)
		}
		a := &entity.Articulo{
			ID:               uuid.New().String(),
			Codigo:           strings.TrimSpace(rec[0]),
			Nombre:           strings.TrimSpace(rec[1]),
			Categoria:        strings.TrimSpace(rec[2]),
			UnidadMedida:     strings.TrimSpace(rec[3]),
			StockMinimo:      minimo,
			StockActual:      decimal.Zero,
			ControlPorRollos: strings.EqualFold(strings.TrimSpace(rec[5]), "true"),
		}
		if err := repo.Create(a); err != nil {
			return count, fmt.Errorf("artículo %q: %w", a.Codigo, err)
		}
		count++
	}
	return count, nil
}

func importarIngresos(articuloRepo *postgres.ArticuloRepo, ingresoRepo *postgres.IngresoRepo, path string) (int, error) {
	r, closer, err := abrirCSV(path)
	if err != nil || r == nil {
		return 0, err
	}
	defer closer.Close()

	count := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("fila %d: %w", count+1, err)
		}
		if len(rec) < 6 || strings.EqualFold(rec[0], "articulo_codigo") {
			continue
		}
		codigo := strings.TrimSpace(rec[0])
		articulo, err := articuloRepo.GetByCodigo(codigo)
		if err != nil {
			return count, err
		}
		if articulo == nil {
			return count, fmt.Errorf("ingreso para artículo desconocido %q", codigo)
		}
		cantidad, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if err != nil {
			return count, fmt.Errorf("cantidad de %q: %w", codigo, err)
		}
		costo, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			return count, fmt.Errorf("costo de %q: %w", codigo, err)
		}
		fecha, err := time.Parse("2006-01-02", strings.TrimSpace(rec[5]))
		if err != nil {
			return count, fmt.Errorf("fecha de %q: %w", codigo, err)
		}
		ing := &entity.Ingreso{
			ID:                 uuid.New().String(),
			ArticuloID:         articulo.ID,
			Cantidad:           cantidad,
			CostoUnitario:      costo,
			CantidadDisponible: cantidad,
			Proveedor:          strings.TrimSpace(rec[3]),
			NumeroDocumento:    strings.TrimSpace(rec[4]),
			Fecha:              fecha,
		}
		if err := ingresoRepo.Create(ing); err != nil {
			return count, fmt.Errorf("ingreso de %q: %w", codigo, err)
		}
		if err := articuloRepo.ActualizarStock(articulo.ID, articulo.StockActual.Add(cantidad)); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
