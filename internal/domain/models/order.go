package models

// Order is the persisted order as the placement service writes it. Only the
// columns the fulfillment consumers read are modeled here.
type Order struct {
	OrderCode           string      `json:"orderCode" db:"order_code"`
	UserID              string      `json:"userId" db:"user_uuid"`
	IsGuest             bool        `json:"isGuest" db:"is_guest"`
	CustomerEmail       string      `json:"customerEmail" db:"customer_email"`
	Products            []OrderLine `json:"products"`
	DiscountCode        string      `json:"discountCode,omitempty" db:"discount_code"`
	LoyaltyPointsEarned int         `json:"loyaltyPointsEarned" db:"loyalty_points_earned"`
	LoyaltyPointsUsed   int         `json:"loyaltyPointsUsed" db:"loyalty_points_used"`
}

// User doubles as the users row and the auth-event payload source.
type User struct {
	ID            string `json:"id" db:"uuid"`
	Email         string `json:"email" db:"email"`
	FullName      string `json:"fullName" db:"full_name"`
	PasswordHash  string `json:"-" db:"password_hash"`
	LoyaltyPoints int    `json:"-" db:"loyalty_points"`
}
