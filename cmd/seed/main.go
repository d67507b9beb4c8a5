// seed puebla la base con los datos de demostración: tres usuarios (uno por
// rol) y el catálogo inicial de cervezas. Es idempotente: limpia las tablas
// antes de insertar, así que NO debe correrse contra una base con datos reales.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/infrastructure/postgres"
	"github.com/jhoicas/delivery-api/pkg/config"
)

// Contraseña común de los usuarios demo.
const demoPassword = "123456"

type seedUser struct {
	name  string
	email string
	role  string
}

type seedProduct struct {
	name        string
	price       string
	urlImage    string
	description string
}

var demoUsers = []seedUser{
	{"Fulana Pereira", "fulana@deliveryapp.com", entity.RoleAdministrator},
	{"Cliente Ze Birita", "zebirita@email.com", entity.RoleCustomer},
	{"Vendedor Teste", "vendedor@deliveryapp.com", entity.RoleSeller},
}

var demoProducts = []seedProduct{
	{"Skol Lata 250ml", "2.20", "/images/skol_lata_350ml.jpg", "Cerveja Skol lata 250ml"},
	{"Heineken 600ml", "7.50", "/images/heineken_600ml.jpg", "Cerveja Heineken garrafa 600ml"},
	{"Antarctica Pilsen 300ml", "2.49", "/images/antarctica_pilsen_300ml.jpg", "Cerveja Antarctica Pilsen 300ml"},
	{"Brahma 600ml", "7.50", "/images/brahma_600ml.jpg", "Cerveja Brahma garrafa 600ml"},
	{"Skol 269ml", "2.19", "/images/skol_269ml.jpg", "Cerveja Skol 269ml"},
	{"Skol Beats Senses 313ml", "4.49", "/images/skol_beats_senses_313ml.jpg", "Skol Beats Senses 313ml"},
	{"Becks 330ml", "4.99", "/images/becks_330ml.jpg", "Cerveja Becks 330ml"},
	{"Brahma Duplo Malte 350ml", "2.79", "/images/brahma_duplo_malte_350ml.jpg", "Brahma Duplo Malte 350ml"},
	{"Becks 600ml", "8.89", "/images/becks_600ml.jpg", "Cerveja Becks 600ml"},
	{"Skol Beats Senses 269ml", "3.57", "/images/skol_beats_senses_269ml.jpg", "Skol Beats Senses 269ml"},
	{"Stella Artois 275ml", "3.49", "/images/stella_artois_275ml.jpg", "Cerveja Stella Artois 275ml"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones de esquema", err)
	}

	// Limpiar en orden de dependencias.
	for _, table := range []string{"order_items", "orders", "products", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			fail("limpiar tabla "+table, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear contraseña demo", err)
	}

	userRepo := postgres.NewUserRepository(pool)
	now := time.Now()
	for _, u := range demoUsers {
		err := userRepo.Create(ctx, &entity.User{
			ID:           uuid.New().String(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			fail("crear usuario "+u.email, err)
		}
	}
	fmt.Printf("usuarios creados: %d\n", len(demoUsers))

	productRepo := postgres.NewProductRepository(pool)
	for _, p := range demoProducts {
		err := productRepo.Create(ctx, &entity.Product{
			ID:          uuid.New().String(),
			Name:        p.name,
			Price:       decimal.RequireFromString(p.price),
			URLImage:    p.urlImage,
			Description: p.description,
			Category:    "Cervejas",
			Available:   true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			fail("crear producto "+p.name, err)
		}
	}
	fmt.Printf("productos creados: %d\n", len(demoProducts))
	fmt.Println("seed completado")
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	os.Exit(1)
}
