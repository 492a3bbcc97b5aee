package main

import (
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"cleo/internal/chat"
	"cleo/internal/config"
	"cleo/internal/db"
	"cleo/internal/inventory"
	"cleo/internal/knowledge"
	"cleo/internal/observability"
	"cleo/internal/quotas"
	"cleo/internal/specs"
	"cleo/internal/suggest"
)

func main() {
	cfg := config.Load()

	pool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error conectando a Postgres (pgxpool): %v", err)
	}
	defer pool.Close()

	sqlDB, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error conectando a Postgres (database/sql): %v", err)
	}
	defer sqlDB.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	if err := os.MkdirAll(cfg.SpecsDir, 0o755); err != nil {
		log.Fatalf("Error creando el directorio de fichas: %v", err)
	}

	invRepo := &inventory.Repository{DB: pool}
	quotaRepo := &quotas.Repository{DB: sqlDB}
	knowRepo := &knowledge.Repository{DB: pool}

	mapping := &specs.MappingService{
		Repo:      &specs.Repository{DB: pool},
		Inventory: invRepo,
		Cache:     redisClient,
		SpecsDir:  cfg.SpecsDir,
	}

	sessionStore := &chat.SessionStore{
		Client: redisClient,
	}

	client := openai.NewClient(cfg.OpenAIKey)

	observability.Start(cfg.MetricsPort)

	http.Handle("/chat", chat.Handler(invRepo, quotaRepo, knowRepo, mapping, sessionStore, client))
	http.Handle("/generate-tip", chat.TipHandler(client))
	http.Handle("/suggest", suggest.Handler(cfg.SpecsDir))

	http.Handle("/specs-list", specs.ListHandler(mapping))
	http.Handle("/specs-search", specs.SearchHandler(mapping))
	http.Handle("/specs-mapping", specs.MappingHandler(mapping))
	http.Handle("/specs/", specs.FileHandler(cfg.SpecsDir))
	http.Handle("/upload-spec", specs.UploadHandler(mapping))
	http.Handle("/link-spec", specs.LinkHandler(mapping))

	http.Handle("/upload-inventory", inventory.UploadHandler(invRepo, mapping))
	http.Handle("/inventory-metadata", inventory.MetadataHandler(invRepo))
	http.Handle("/find-product", inventory.FindHandler(invRepo))

	http.Handle("/quotas", quotas.MappingHandler(quotaRepo))
	http.Handle("/upload-quotas", quotas.UploadHandler(quotaRepo))

	http.Handle("/knowledge", knowledge.ListHandler(knowRepo))
	http.Handle("/update-knowledge", knowledge.UpdateHandler(knowRepo))
	http.Handle("/apply-auto-tips", knowledge.AutoTipsHandler(knowRepo, invRepo))

	log.Printf("Cleo escuchando en %s", cfg.ListenAddr)
	http.ListenAndServe(cfg.ListenAddr, nil)
}
