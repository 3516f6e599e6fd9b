package domain

const (
	ListingCash   = "cash"
	ListingBarter = "barter"
)

const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Category    string  `db:"category" json:"category"`
	Type        string  `db:"type" json:"type"` // cash | barter
	Price       float64 `db:"price" json:"price"`
	BarterDesc  string  `db:"barter_desc" json:"barter_desc"`
	Location    string  `db:"location" json:"location"`
	Seller      string  `db:"seller" json:"seller"`
	Description string  `db:"description" json:"description"`
	ImageURL    string  `db:"image_url" json:"image_url"`
	Date        string  `db:"date" json:"date"` // display label, e.g. "2 hrs ago"
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

type Offer struct {
	ID          int64    `db:"id" json:"id"`
	ProductID   int64    `db:"product_id" json:"product_id"`
	BuyerName   string   `db:"buyer_name" json:"buyer_name"`
	BuyerPhone  string   `db:"buyer_phone" json:"buyer_phone"`
	BuyerEmail  string   `db:"buyer_email" json:"buyer_email"`
	OfferAmount *float64 `db:"offer_amount" json:"offer_amount"`
	BarterOffer string   `db:"barter_offer" json:"barter_offer"`
	Message     string   `db:"message" json:"message"`
	Status      string   `db:"status" json:"status"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
}

// OfferWithProduct is the admin projection of an offer joined against its
// listing. The product fields are pointers because the listing may have been
// deleted after the offer was made; such offers still appear, with nulls.
type OfferWithProduct struct {
	Offer
	ProductName  *string  `db:"product_name" json:"product_name"`
	SellerName   *string  `db:"seller_name" json:"seller_name"`
	ProductPrice *float64 `db:"product_price" json:"product_price"`
	ProductType  *string  `db:"product_type" json:"product_type"`
}

type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	FarmerCount   int `json:"farmerCount"`
	AdminCount    int `json:"adminCount"`
	TotalProducts int `json:"totalProducts"`
	TotalOffers   int `json:"totalOffers"`
}
