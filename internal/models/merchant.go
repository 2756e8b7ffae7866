package models

import (
	"errors"
	"strconv"
	"strings"
)

const (
	MerchantStatusActive    = "Active"
	MerchantStatusInactive  = "Inactive"
	MerchantStatusSuspended = "Suspended"

	MerchantTypeIndividual = "Individual"
	MerchantTypeBusiness   = "Business"
	MerchantTypeFranchise  = "Franchise"
)

var (
	ErrMerchantNameRequired = errors.New("merchant name is required")
	ErrInvalidMerchantID    = errors.New("merchant id is required")
	ErrInvalidRating        = errors.New("merchant rating must be between 0 and 5")
)

// Merchant is a merchant record as listed by the upstream API
type Merchant struct {
	MerchantID       int64    `json:"merchantId"`
	MerchantName     string   `json:"merchantName"`
	MerchantStatus   string   `json:"merchantStatus"`
	ContactInfo      string   `json:"contactInfo"`
	MerchantCategory string   `json:"merchantCategory"`
	MerchantLocation string   `json:"merchantLocation"`
	MerchantRating   float64  `json:"merchantRating"`
	NumOrders        int      `json:"numOrders"`
	PaymentMethod    string   `json:"paymentMethod"`
	MerchantLogo     string   `json:"merchantLogo"`
	MerchantWebsite  string   `json:"merchantWebsite"`
	MerchantType     string   `json:"merchantType"`
	MerchantTags     []string `json:"merchantTags,omitempty"`
}

func (m Merchant) RecordID() string {
	return strconv.FormatInt(m.MerchantID, 10)
}

// SearchText only exposes the name; the merchant list searches by name
func (m Merchant) SearchText() []string {
	return []string{m.MerchantName}
}

func (m Merchant) Attribute(name string) string {
	switch name {
	case AttrStatus:
		return m.MerchantStatus
	case AttrCategory:
		return m.MerchantCategory
	default:
		return ""
	}
}

// Validate checks the fields every merchant record must carry
func (m *Merchant) Validate() error {
	if strings.TrimSpace(m.MerchantName) == "" {
		return ErrMerchantNameRequired
	}
	if m.MerchantRating < 0 || m.MerchantRating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// IsActive reports whether the merchant can take payments
func (m *Merchant) IsActive() bool {
	return m.MerchantStatus == MerchantStatusActive
}

// MerchantStatuses lists the statuses offered by the merchant list filter
func MerchantStatuses() []string {
	return []string{MerchantStatusActive, MerchantStatusInactive, MerchantStatusSuspended}
}

// MerchantTypes lists the accepted merchant types
func MerchantTypes() []string {
	return []string{MerchantTypeIndividual, MerchantTypeBusiness, MerchantTypeFranchise}
}
