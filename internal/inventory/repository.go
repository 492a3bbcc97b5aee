package inventory

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cleo/internal/model"
	"cleo/internal/parser"
)

// Repository guarda el snapshot de inventario procesado. Cada upload
// reemplaza el snapshot completo, igual que el archivo procesado original.
type Repository struct {
	DB *pgxpool.Pool
}

func (r *Repository) List() ([]model.InventoryItem, error) {
	rows, err := r.DB.Query(context.Background(), `
		SELECT material, subproducto, marca, categoria, especificaciones,
		       cant_disponible, precio_contado, tip
		FROM inventory_items
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		var it model.InventoryItem
		var precio string
		if err := rows.Scan(&it.Material, &it.Subproducto, &it.Marca, &it.Categoria,
			&it.Especificaciones, &it.CantDisponible, &precio, &it.Tip); err != nil {
			continue
		}
		it.PrecioContado = parser.Price(precio)
		items = append(items, it)
	}
	return items, nil
}

// Replace sustituye el inventario completo dentro de una transacción y
// registra los metadatos del upload.
func (r *Repository) Replace(items []model.InventoryItem, filename string) error {
	ctx := context.Background()
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_items`); err != nil {
		return err
	}
	for _, it := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO inventory_items
			(material, subproducto, marca, categoria, especificaciones, cant_disponible, precio_contado, tip)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, it.Material, it.Subproducto, it.Marca, it.Categoria, it.Especificaciones,
			it.CantDisponible, it.PrecioContado.String(), it.Tip)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_uploads (filename, item_count, uploaded_at)
		VALUES ($1, $2, $3)
	`, filename, len(items), time.Now())
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// FindByMaterial busca por identificador exacto, probando primero la forma
// solo-dígitos y después la cruda.
func (r *Repository) FindByMaterial(material string) (*model.InventoryItem, error) {
	for _, id := range []string{parser.CleanMaterial(material), material} {
		if id == "" {
			continue
		}
		it, err := r.findOne(id)
		if err == nil {
			return it, nil
		}
		if err != pgx.ErrNoRows {
			return nil, err
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *Repository) findOne(material string) (*model.InventoryItem, error) {
	var it model.InventoryItem
	var precio string
	err := r.DB.QueryRow(context.Background(), `
		SELECT material, subproducto, marca, categoria, especificaciones,
		       cant_disponible, precio_contado, tip
		FROM inventory_items
		WHERE material = $1
	`, material).Scan(&it.Material, &it.Subproducto, &it.Marca, &it.Categoria,
		&it.Especificaciones, &it.CantDisponible, &precio, &it.Tip)
	if err != nil {
		return nil, err
	}
	it.PrecioContado = parser.Price(precio)
	return &it, nil
}

// UploadInfo son los metadatos del último upload de inventario.
type UploadInfo struct {
	Filename   string    `json:"filename"`
	ItemCount  int       `json:"item_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (r *Repository) LastUpload() (*UploadInfo, error) {
	var info UploadInfo
	err := r.DB.QueryRow(context.Background(), `
		SELECT filename, item_count, uploaded_at
		FROM inventory_uploads
		ORDER BY uploaded_at DESC
		LIMIT 1
	`).Scan(&info.Filename, &info.ItemCount, &info.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
