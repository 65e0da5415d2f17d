package domain

// Product is the backend's catalog record. Field names follow the REST
// wire format, which this client does not own.
type Product struct {
	ID          string  `json:"_id,omitempty"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImgURL      string  `json:"imgUrl,omitempty"`
}

// CartLine is a product plus the quantity selected for it. Qty is always
// at least 1; a line whose quantity would reach 0 is removed from the cart
// instead of being kept around.
type CartLine struct {
	Product
	Qty int `json:"qty"`
}

// LineTotal returns price times quantity for this line.
func (l CartLine) LineTotal() float64 {
	return float64(l.Qty) * l.Price
}
