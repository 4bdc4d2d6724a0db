package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	p := Product{
		Name:        "Wireless Headphones",
		Description: "Noise cancelling",
		Category:    "Electronics",
		Price:       decimal.RequireFromString("348.00"),
	}
	lo := decimal.NewFromInt(100)
	hi := decimal.NewFromInt(300)
	exact := decimal.RequireFromString("348")

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"category case insensitive", Filter{Category: "electronics"}, true},
		{"other category", Filter{Category: "Sports"}, false},
		{"search in name", Filter{Search: "WIRELESS"}, true},
		{"search in description", Filter{Search: "cancel"}, true},
		{"search misses", Filter{Search: "yoga"}, false},
		{"min below price", Filter{MinPrice: &lo}, true},
		{"max below price", Filter{MaxPrice: &hi}, false},
		{"inclusive bounds", Filter{MinPrice: &exact, MaxPrice: &exact}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}

func TestMatchesQueryIncludesCategory(t *testing.T) {
	p := Product{Name: "Yoga Mat", Category: "Sports"}
	assert.True(t, p.MatchesQuery("sport"))
	assert.False(t, p.MatchesQuery("kitchen"))
}
