package quotas

import (
	"database/sql"

	"cleo/internal/model"
	"cleo/internal/parser"
)

// Repository persiste los planes de cuotas por material.
type Repository struct {
	DB *sql.DB
}

// ReplaceAll sustituye el mapeo completo; un upload de cuotas.xlsx siempre
// reemplaza al anterior.
func (r *Repository) ReplaceAll(mapping map[string]model.QuotaPlan) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM quota_plans`); err != nil {
		return err
	}
	for material, plan := range mapping {
		for months, amount := range plan {
			_, err := tx.Exec(`
				INSERT INTO quota_plans (material, months, amount)
				VALUES ($1, $2, $3)
			`, material, months, amount.String())
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// Mapping devuelve material -> plan de cuotas completo.
func (r *Repository) Mapping() (map[string]model.QuotaPlan, error) {
	rows, err := r.DB.Query(`SELECT material, months, amount FROM quota_plans`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mapping := make(map[string]model.QuotaPlan)
	for rows.Next() {
		var material, amount string
		var months int
		if err := rows.Scan(&material, &months, &amount); err != nil {
			continue
		}
		plan, ok := mapping[material]
		if !ok {
			plan = model.QuotaPlan{}
			mapping[material] = plan
		}
		plan[months] = parser.Price(amount)
	}
	return mapping, nil
}

// ForMaterial busca el plan por id limpio y, si no existe, por el crudo.
// Nil significa "sin cuotas registradas", que no es un error.
func ForMaterial(mapping map[string]model.QuotaPlan, material string) model.QuotaPlan {
	if clean := parser.CleanMaterial(material); clean != "" {
		if plan, ok := mapping[clean]; ok {
			return plan
		}
	}
	if plan, ok := mapping[material]; ok {
		return plan
	}
	return nil
}
