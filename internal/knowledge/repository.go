package knowledge

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry es un registro de la memoria experta: el tip de venta que el
// vendedor curó para un SKU.
type Entry struct {
	SKU      string `json:"sku"`
	Model    string `json:"model,omitempty"`
	Specs    string `json:"specs,omitempty"`
	TipVenta string `json:"tip_venta,omitempty"`
}

type Repository struct {
	DB *pgxpool.Pool
}

func (r *Repository) List() ([]Entry, error) {
	rows, err := r.DB.Query(context.Background(), `
		SELECT sku, model, specs, tip_venta
		FROM expert_knowledge
		ORDER BY sku ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SKU, &e.Model, &e.Specs, &e.TipVenta); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Tips devuelve sku -> tip de venta, para inyectar al contexto del chat.
func (r *Repository) Tips() (map[string]string, error) {
	entries, err := r.List()
	if err != nil {
		return nil, err
	}
	tips := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.TipVenta != "" && e.TipVenta != "-" {
			tips[e.SKU] = e.TipVenta
		}
	}
	return tips, nil
}

// Upsert reemplaza la entrada del SKU o la crea si no existe.
func (r *Repository) Upsert(e Entry) error {
	_, err := r.DB.Exec(context.Background(), `
		INSERT INTO expert_knowledge (id, sku, model, specs, tip_venta)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sku) DO UPDATE
		SET model = EXCLUDED.model, specs = EXCLUDED.specs, tip_venta = EXCLUDED.tip_venta
	`, uuid.New(), e.SKU, e.Model, e.Specs, e.TipVenta)
	return err
}

// ApplyAutoTip asigna el tip a cada SKU que no tenga uno propio; devuelve
// cuántos quedaron cubiertos. Los tips curados a mano no se pisan.
func (r *Repository) ApplyAutoTip(targets []Entry, tip string) (int, error) {
	existing, err := r.List()
	if err != nil {
		return 0, err
	}
	bySKU := make(map[string]Entry, len(existing))
	for _, e := range existing {
		bySKU[e.SKU] = e
	}

	applied := 0
	for _, target := range targets {
		if cur, ok := bySKU[target.SKU]; ok {
			if cur.TipVenta != "" && cur.TipVenta != "-" {
				continue
			}
			cur.TipVenta = tip
			if err := r.Upsert(cur); err != nil {
				return applied, err
			}
			applied++
			continue
		}
		target.TipVenta = tip
		if err := r.Upsert(target); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}
