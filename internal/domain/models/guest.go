package models

type CartItem struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     uint64 `json:"price"`
}

// Cart is the single blob kept under guest_cart:<guestId>.
type Cart struct {
	Items        []CartItem `json:"items"`
	DiscountCode string     `json:"discountCode,omitempty"`
}

type Address struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
}

// GuestInfo is the assembled view of the guest_info:<guestId> hash.
type GuestInfo struct {
	LoyaltyPoints int               `json:"loyaltyPoints"`
	Addresses     []Address         `json:"addresses"`
	Fields        map[string]string `json:"fields,omitempty"`
}
