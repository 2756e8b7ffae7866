package dto

import (
	"merchant-dashboard/internal/models"
)

// MerchantListData is the payload of GET /merchants/getAllMerchants
type MerchantListData struct {
	Merchants *[]models.Merchant `json:"merchants"`
}

// CreateMerchantRequest is the payload for creating a merchant
type CreateMerchantRequest struct {
	MerchantName     string   `json:"merchantName" validate:"required,min=1,max=255"`
	MerchantStatus   string   `json:"merchantStatus" validate:"required,merchant_status"`
	ContactInfo      string   `json:"contactInfo" validate:"required,max=255"`
	MerchantCategory string   `json:"merchantCategory" validate:"required,max=100"`
	MerchantLocation string   `json:"merchantLocation" validate:"required,max=255"`
	PaymentMethod    string   `json:"paymentMethod" validate:"required,max=100"`
	MerchantWebsite  string   `json:"merchantWebsite" validate:"required,url"`
	MerchantType     string   `json:"merchantType" validate:"required,merchant_type"`
	MerchantTags     []string `json:"merchantTags" validate:"dive,min=1,max=50"`
}

// UpdateMerchantRequest is the payload for updating a merchant. The merchant
// id travels in the path.
type UpdateMerchantRequest struct {
	MerchantName     string   `json:"merchantName" validate:"required,min=1,max=255"`
	MerchantStatus   string   `json:"merchantStatus" validate:"required,merchant_status"`
	ContactInfo      string   `json:"contactInfo" validate:"required,max=255"`
	MerchantCategory string   `json:"merchantCategory" validate:"required,max=100"`
	MerchantLocation string   `json:"merchantLocation" validate:"required,max=255"`
	MerchantRating   float64  `json:"merchantRating" validate:"gte=0,lte=5"`
	NumOrders        int      `json:"numOrders" validate:"gte=0"`
	PaymentMethod    string   `json:"paymentMethod" validate:"required,max=100"`
	MerchantLogo     string   `json:"merchantLogo" validate:"omitempty,url"`
	MerchantWebsite  string   `json:"merchantWebsite" validate:"required,url"`
	MerchantType     string   `json:"merchantType" validate:"required,merchant_type"`
	MerchantTags     []string `json:"merchantTags" validate:"dive,min=1,max=50"`
}

// MerchantMutationData is returned by merchant create and update
type MerchantMutationData struct {
	MerchantID string `json:"merchantId"`
	Message    string `json:"message"`
}
