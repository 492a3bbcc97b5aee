package specs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persiste los vínculos manuales material -> ficha. Un material
// puede tener varias fichas (productos multi-imagen).
type Repository struct {
	DB *pgxpool.Pool
}

func (r *Repository) ManualMap() (map[string][]string, error) {
	rows, err := r.DB.Query(context.Background(), `
		SELECT material_id, filename
		FROM spec_links
		ORDER BY material_id, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mapping := make(map[string][]string)
	for rows.Next() {
		var materialID, filename string
		if err := rows.Scan(&materialID, &filename); err != nil {
			continue
		}
		mapping[materialID] = append(mapping[materialID], filename)
	}
	return mapping, nil
}

func (r *Repository) Link(materialID, filename string) error {
	_, err := r.DB.Exec(context.Background(), `
		INSERT INTO spec_links (material_id, filename)
		VALUES ($1, $2)
		ON CONFLICT (material_id, filename) DO NOTHING
	`, materialID, filename)
	return err
}
