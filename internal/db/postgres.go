package db

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

// New abre la conexión database/sql usada por el repositorio de cuotas.
func New(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

// NewPool abre el pool pgx usado por el resto de repositorios.
func NewPool(url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
