package repos

import (
	"fmt"

	"shambasoko/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OfferRepo struct{ db *sqlx.DB }

func NewOfferRepo(db *sqlx.DB) *OfferRepo { return &OfferRepo{db: db} }

var offerStatuses = map[string]bool{
	domain.OfferPending:  true,
	domain.OfferAccepted: true,
	domain.OfferRejected: true,
}

// Insert stores a new offer. Status is forced to pending regardless of what
// the caller put in o.Status.
func (r *OfferRepo) Insert(o domain.Offer) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO offers(product_id, buyer_name, buyer_phone, buyer_email, offer_amount, barter_offer, message, status)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`, o.ProductID, o.BuyerName, o.BuyerPhone, o.BuyerEmail, o.OfferAmount, o.BarterOffer, o.Message, domain.OfferPending)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListWithProducts returns all offers newest first, left-joined with listing
// display fields. Offers whose listing was deleted appear with null product
// columns instead of dropping out.
func (r *OfferRepo) ListWithProducts() ([]domain.OfferWithProduct, error) {
	var out []domain.OfferWithProduct
	err := r.db.Select(&out, `
		SELECT o.id, o.product_id, o.buyer_name, o.buyer_phone,
		       COALESCE(o.buyer_email,'') AS buyer_email,
		       o.offer_amount,
		       COALESCE(o.barter_offer,'') AS barter_offer,
		       COALESCE(o.message,'') AS message,
		       o.status, o.created_at,
		       p.name  AS product_name,
		       p.seller AS seller_name,
		       p.price AS product_price,
		       p.type  AS product_type
		FROM offers o
		LEFT JOIN products p ON p.id = o.product_id
		ORDER BY datetime(o.created_at) DESC, o.id DESC
	`)
	return out, err
}

// UpdateStatus overwrites an offer's status. The enum is checked before any
// statement runs; an unknown status never reaches storage.
func (r *OfferRepo) UpdateStatus(id int64, status string) error {
	if !offerStatuses[status] {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	res, err := r.db.Exec(`UPDATE offers SET status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("offer %w", domain.ErrNotFound)
	}
	return nil
}

func (r *OfferRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM offers`)
	return n, err
}
