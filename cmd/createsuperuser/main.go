// createsuperuser crea (o promueve y reactiva) un superusuario del back-office.
//
// Uso: go run ./cmd/createsuperuser -username admin -email admin@tienda.test
// La contraseña se toma de -password o, si falta, de ADMIN_PASSWORD.
// Aplica antes las migraciones pendientes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-admin/pkg/config"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}

	username := flag.String("username", cfg.Admin.Username, "nombre de usuario")
	email := flag.String("email", cfg.Admin.Email, "email")
	password := flag.String("password", cfg.Admin.Password, "contraseña (mínimo 8 caracteres)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Uso: createsuperuser -username <usuario> -password <contraseña> [-email <email>]")
		os.Exit(2)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if _, err := postgres.Migrate(cfg.DB); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool), log)
	user, created, err := userUC.EnsureSuperuser(ctx, *username, *email, *password)
	if err != nil {
		if fields := domain.FieldErrors(err); fields != nil {
			for field, msg := range fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Crear superusuario: %v\n", err)
		}
		os.Exit(1)
	}

	if created {
		fmt.Printf("Superusuario %s creado (%s)\n", user.Username, user.ID)
	} else {
		fmt.Printf("Usuario %s promovido a superusuario\n", user.Username)
	}
}
