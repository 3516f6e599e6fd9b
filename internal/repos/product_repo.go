package repos

import (
	"fmt"

	"shambasoko/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Insert stores a listing and returns the generated id.
func (r *ProductRepo) Insert(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO products(name, category, type, price, barter_desc, location, seller, description, image_url, date)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Category, p.Type, p.Price, p.BarterDesc, p.Location, p.Seller, p.Description, p.ImageURL, p.Date)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all listings newest first.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT id, name, category, type, price,
		       COALESCE(barter_desc,'') AS barter_desc,
		       location, seller,
		       COALESCE(description,'') AS description,
		       COALESCE(image_url,'') AS image_url,
		       COALESCE(date,'') AS date,
		       created_at
		FROM products
		ORDER BY datetime(created_at) DESC, id DESC
	`)
	return out, err
}

// Delete removes a listing. Offers referencing it are left in place; the offer
// read path tolerates the orphaned reference.
func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("product %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}
