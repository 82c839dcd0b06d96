// Comando de desenvolvimento: cria o esquema (se não existir) e carrega um
// conjunto pequeno de dados reais da loja — marcas, categorias, impressoras,
// suprimentos e os vínculos de compatibilidade — mais o usuário admin.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/infrastructure/postgres"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/config"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/logger"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/slug"
)

const schema = `
CREATE TABLE IF NOT EXISTS brands (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS categories (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	slug      TEXT NOT NULL UNIQUE,
	image_url TEXT,
	parent_id TEXT REFERENCES categories(id)
);
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	description TEXT,
	price       NUMERIC(12,2) CHECK (price >= 0),
	type        TEXT NOT NULL,
	brand_id    TEXT NOT NULL REFERENCES brands(id),
	category_id TEXT NOT NULL REFERENCES categories(id),
	image_url   TEXT,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS printers (
	id         TEXT PRIMARY KEY,
	model_name TEXT NOT NULL UNIQUE,
	brand_id   TEXT NOT NULL REFERENCES brands(id)
);
CREATE TABLE IF NOT EXISTS printer_compatibilities (
	cartridge_id TEXT NOT NULL REFERENCES products(id),
	printer_id   TEXT NOT NULL REFERENCES printers(id),
	PRIMARY KEY (cartridge_id, printer_id)
);
CREATE TABLE IF NOT EXISTS store_configs (
	key       TEXT PRIMARY KEY,
	value     TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("criar esquema")
	}

	brands := postgres.NewBrandRepository(pool)
	categories := postgres.NewCategoryRepository(pool)
	products := postgres.NewProductRepository(pool)
	printers := postgres.NewPrinterRepository(pool)
	compat := postgres.NewCompatibilityRepository(pool)
	configs := postgres.NewStoreConfigRepository(pool)
	users := postgres.NewUserRepository(pool)

	brandIDs := map[string]string{}
	for _, name := range []string{"HP", "Epson", "Canon", "Brother"} {
		b := &entity.Brand{ID: uuid.New().String(), Name: name, Slug: slug.Make(name)}
		if err := brands.Create(b); err != nil {
			log.Warn().Err(err).Str("brand", name).Msg("marca não inserida (já existe?)")
			if existing, gerr := brands.GetBySlug(b.Slug); gerr == nil && existing != nil {
				brandIDs[name] = existing.ID
			}
			continue
		}
		brandIDs[name] = b.ID
	}

	categoryIDs := map[string]string{}
	for _, c := range []struct{ name, parent string }{
		{"Suprimentos", ""},
		{"Toners", "Suprimentos"},
		{"Tintas e Refis", "Suprimentos"},
		{"Impressoras", ""},
	} {
		cat := &entity.Category{
			ID:       uuid.New().String(),
			Name:     c.name,
			Slug:     slug.Make(c.name),
			ParentID: categoryIDs[c.parent],
		}
		if err := categories.Create(cat); err != nil {
			log.Warn().Err(err).Str("category", c.name).Msg("categoria não inserida (já existe?)")
			if existing, gerr := categories.GetBySlug(cat.Slug); gerr == nil && existing != nil {
				categoryIDs[c.name] = existing.ID
			}
			continue
		}
		categoryIDs[c.name] = cat.ID
	}

	printerIDs := map[string]string{}
	for _, p := range []struct{ model, brand string }{
		{"Epson EcoTank L3250", "Epson"},
		{"HP LaserJet Pro M1132", "HP"},
		{"Canon PIXMA G3110", "Canon"},
		{"Brother DCP-1602", "Brother"},
	} {
		pr := &entity.Printer{ID: uuid.New().String(), ModelName: p.model, BrandID: brandIDs[p.brand]}
		if err := printers.Create(pr); err != nil {
			log.Warn().Err(err).Str("printer", p.model).Msg("impressora não inserida (já existe?)")
			continue
		}
		printerIDs[p.model] = pr.ID
	}

	price := func(v string) decimal.NullDecimal {
		d, _ := decimal.NewFromString(v)
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}
	productIDs := map[string]string{}
	for _, p := range []struct {
		name, typ, brand, category, price string
	}{
		{"Tinta Epson T544 Preta", entity.TypeTintaRefil, "Epson", "Tintas e Refis", "64.90"},
		{"Toner HP 85A", entity.TypeToner, "HP", "Toners", "189.90"},
		{"Refil Canon GI-190 Ciano", entity.TypeTintaRefil, "Canon", "Tintas e Refis", "79.90"},
		{"Toner Brother TN-1060", entity.TypeToner, "Brother", "Toners", "159.90"},
		{"Recarga Jato de Tinta Colorida", entity.TypeRecarga, "HP", "Tintas e Refis", "49.90"},
		{"Impressora Epson EcoTank L3250", entity.TypeImpressora, "Epson", "Impressoras", "1299.00"},
	} {
		prod := &entity.Product{
			ID:         uuid.New().String(),
			Name:       p.name,
			Slug:       slug.Make(p.name),
			Price:      price(p.price),
			Type:       p.typ,
			BrandID:    brandIDs[p.brand],
			CategoryID: categoryIDs[p.category],
			CreatedAt:  time.Now(),
		}
		if err := products.Create(prod); err != nil {
			log.Warn().Err(err).Str("product", p.name).Msg("produto não inserido (já existe?)")
			continue
		}
		productIDs[p.name] = prod.ID
	}

	for _, link := range []struct{ product, printer string }{
		{"Tinta Epson T544 Preta", "Epson EcoTank L3250"},
		{"Toner HP 85A", "HP LaserJet Pro M1132"},
		{"Refil Canon GI-190 Ciano", "Canon PIXMA G3110"},
		{"Toner Brother TN-1060", "Brother DCP-1602"},
	} {
		cartridgeID, printerID := productIDs[link.product], printerIDs[link.printer]
		if cartridgeID == "" || printerID == "" {
			continue
		}
		if err := compat.Link(cartridgeID, printerID); err != nil {
			log.Warn().Err(err).Str("product", link.product).Msg("vínculo não inserido")
		}
	}

	if err := configs.Upsert(&entity.StoreConfig{
		Key:      entity.ConfigKeyBanner,
		Value:    "Promoção de Verão: frete grátis em Itaquaquecetuba e região!",
		IsActive: true,
	}); err != nil {
		log.Warn().Err(err).Msg("banner não gravado")
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email != "" && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash da senha do admin")
		}
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Now(),
		}
		if err := users.Create(admin); err != nil {
			log.Warn().Err(err).Msg("admin não inserido (já existe?)")
		}
	}

	log.Info().Msg("seed concluído")
}
