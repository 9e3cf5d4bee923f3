// seed_catalog carga categorías y productos desde un CSV exportado de hoja de cálculo.
//
// Uso: go run ./cmd/seed_catalog [-latin1] [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Formato: categoria;nombre;descripcion_corta;descripcion;precio (con cabecera).
// -latin1 para archivos en Windows-1252 / ISO-8859-1.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/csvimport"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-admin/pkg/config"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV está en Windows-1252 / ISO-8859-1")
	flag.Parse()

	csvPath := "catalogo.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := csvimport.Read(f, csvimport.Options{Latin1: *latin1})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(cfg.DB); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	categories := postgres.NewCategoryRepository(pool)
	categoryUC := usecase.NewCategoryUseCase(categories, postgres.NewTxRunner(pool), log)
	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool), categories)
	importUC := usecase.NewCatalogImportUseCase(categoryUC, productUC, log)

	res, err := importUC.Import(ctx, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		if res != nil {
			fmt.Fprintf(os.Stderr, "Guardado antes del error: %d categorías, %d productos\n", res.CategoriesCreated, res.ProductsCreated)
		}
		os.Exit(1)
	}
	fmt.Printf("Importado %s: %d categorías nuevas, %d productos\n", csvPath, res.CategoriesCreated, res.ProductsCreated)
}
