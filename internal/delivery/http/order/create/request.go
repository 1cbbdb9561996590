package create

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
)

var (
	errEmptyProducts      = errors.New("products can't be empty")
	errInvalidLine        = errors.New("every product needs an id and a positive quantity")
	errMissingUser        = errors.New("userId is required")
	errNegativePoints     = errors.New("loyalty points can't be negative")
	errPointsExceedEarned = errors.New("loyaltyPointsUsed can't exceed loyaltyPointsEarned")
)

var validate = validator.New()

type CreateOrderRequest struct {
	UserID              string        `json:"userId" validate:"required"`
	IsGuest             bool          `json:"isGuest"`
	CustomerEmail       string        `json:"customerEmail" validate:"omitempty,email"`
	Products            []ProductLine `json:"products" validate:"required,min=1"`
	DiscountCode        string        `json:"discountCode"`
	LoyaltyPointsEarned int           `json:"loyaltyPointsEarned" validate:"gte=0"`
	LoyaltyPointsUsed   int           `json:"loyaltyPointsUsed" validate:"gte=0"`
}

type ProductLine struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

func (req *CreateOrderRequest) validate() error {
	if err := validate.Struct(req); err != nil {
		switch {
		case req.UserID == "":
			return errMissingUser
		case len(req.Products) == 0:
			return errEmptyProducts
		case req.LoyaltyPointsEarned < 0 || req.LoyaltyPointsUsed < 0:
			return errNegativePoints
		default:
			return err
		}
	}

	for _, line := range req.Products {
		if line.ProductID == "" || line.Quantity <= 0 {
			return errInvalidLine
		}
	}

	if req.LoyaltyPointsUsed > req.LoyaltyPointsEarned {
		return errPointsExceedEarned
	}

	return nil
}

func (req *CreateOrderRequest) ToDTO() models.Order {
	var products []models.OrderLine
	for _, line := range req.Products {
		products = append(products, models.OrderLine{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
	}

	return models.Order{
		UserID:              req.UserID,
		IsGuest:             req.IsGuest,
		CustomerEmail:       req.CustomerEmail,
		Products:            products,
		DiscountCode:        req.DiscountCode,
		LoyaltyPointsEarned: req.LoyaltyPointsEarned,
		LoyaltyPointsUsed:   req.LoyaltyPointsUsed,
	}
}
