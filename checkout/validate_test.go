package checkout

import (
	"strings"
	"testing"

	"gadgetry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneItem() []models.CartItem {
	return []models.CartItem{
		{ID: "cart_1", ProductID: "1", ProductName: "Wireless Headphones", Price: 3000, Qty: 1},
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	req := models.CheckoutRequest{
		CartItems: oneItem(),
		Name:      "Al",
		Email:     "al@example.com",
	}
	require.NoError(t, validate(req))
}

func TestValidateEmptyCartWinsOverOtherFailures(t *testing.T) {
	// empty cart is checked first, even with bogus name and email
	req := models.CheckoutRequest{Name: "A", Email: "nope"}
	err := validate(req)
	require.Error(t, err)
	assert.Equal(t, "Cart is empty", err.Error())
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single char rejected", "A", true},
		{"two chars accepted", "Al", false},
		{"whitespace around valid name trimmed", "  Al  ", false},
		{"whitespace only rejected", "   ", true},
		{"hundred chars accepted", strings.Repeat("a", 100), false},
		{"over hundred chars rejected", strings.Repeat("a", 101), true},
		{"single CJK char rejected", "日", true},
		{"two CJK chars accepted", "日本", false},
		{"hundred CJK chars accepted", strings.Repeat("日", 100), false},
		{"over hundred CJK chars rejected", strings.Repeat("日", 101), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := models.CheckoutRequest{
				CartItems: oneItem(),
				Name:      tc.input,
				Email:     "al@example.com",
			}
			err := validate(req)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid name (2-100 characters required)", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain address accepted", "al@example.com", false},
		{"missing at-sign rejected", "al.example.com", true},
		{"missing tld rejected", "al@example", true},
		{"embedded space rejected", "al @example.com", true},
		{"empty rejected", "", true},
		{"overlong rejected", strings.Repeat("a", 250) + "@ex.com", true},
		{"multibyte local part counted in characters", strings.Repeat("日", 248) + "@ex.jp", false},
		{"overlong multibyte rejected", strings.Repeat("日", 250) + "@ex.jp", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := models.CheckoutRequest{
				CartItems: oneItem(),
				Name:      "Al",
				Email:     tc.input,
			}
			err := validate(req)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid email address", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
