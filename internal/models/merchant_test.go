package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerchant_Validate(t *testing.T) {
	tests := []struct {
		name     string
		merchant Merchant
		wantErr  error
	}{
		{
			name:     "valid merchant",
			merchant: Merchant{MerchantName: "ABC Store", MerchantRating: 4.5},
		},
		{
			name:     "blank name",
			merchant: Merchant{MerchantName: "   "},
			wantErr:  ErrMerchantNameRequired,
		},
		{
			name:     "rating above five",
			merchant: Merchant{MerchantName: "ABC Store", MerchantRating: 5.5},
			wantErr:  ErrInvalidRating,
		},
		{
			name:     "negative rating",
			merchant: Merchant{MerchantName: "ABC Store", MerchantRating: -1},
			wantErr:  ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.merchant.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMerchant_RecordAccessors(t *testing.T) {
	m := Merchant{
		MerchantID:       9,
		MerchantName:     "Blue Bottle",
		MerchantStatus:   MerchantStatusActive,
		MerchantCategory: CategoryDining,
	}

	assert.Equal(t, "9", m.RecordID())
	assert.Equal(t, []string{"Blue Bottle"}, m.SearchText())
	assert.Equal(t, MerchantStatusActive, m.Attribute(AttrStatus))
	assert.Equal(t, CategoryDining, m.Attribute(AttrCategory))
	assert.Empty(t, m.Attribute("rating"))
	assert.True(t, m.IsActive())
}

func TestDistinctCategories_FirstSeenOrder(t *testing.T) {
	merchants := []Merchant{
		{MerchantCategory: CategoryTravel},
		{MerchantCategory: CategoryDining},
		{MerchantCategory: ""},
		{MerchantCategory: CategoryTravel},
	}

	assert.Equal(t, []string{CategoryTravel, CategoryDining}, DistinctCategories(merchants))
	assert.Empty(t, DistinctCategories(nil))
}
