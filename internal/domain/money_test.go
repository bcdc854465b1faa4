package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filari/revenue-service/internal/domain"
)

func TestMulRatio(t *testing.T) {
	tests := []struct {
		name string
		m    domain.Money
		num  int64
		den  int64
		want domain.Money
	}{
		{"identity", 5000, 1, 1, 5000},
		{"half of base rate", 5000, 1, 2, 2500},
		{"quarter of base rate", 5000, 1, 4, 1250},
		{"half cent rounds to even down", 5, 1, 2, 2},
		{"half cent rounds to even up", 7, 1, 2, 4},
		{"above half rounds up", 3, 1, 4, 1},
		{"exactly half rounds to even zero", 2, 1, 4, 0},
		{"negative half rounds to even", -5, 1, 2, -2},
		{"zero", 0, 1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.MulRatio(tt.num, tt.den))
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name string
		m    domain.Money
		pct  float64
		want domain.Money
	}{
		{"thirty percent of 1000", 1000, 30, 300},
		{"thirty percent of 100000", 100000, 30, 30000},
		{"half cent rounds to even", 1001, 50, 500},
		{"zero percent", 1000, 0, 0},
		{"hundred percent", 1000, 100, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PercentOf(tt.m, tt.pct))
		})
	}
}

func TestDollars(t *testing.T) {
	assert.Equal(t, 50.0, domain.Money(5000).Dollars())
	assert.Equal(t, 12.5, domain.Money(1250).Dollars())
}

func TestDefaultCommissionRate(t *testing.T) {
	assert.Equal(t, domain.Money(5000), domain.RoleAffiliate.DefaultCommissionRate())
	assert.Equal(t, domain.Money(5000), domain.RoleClient.DefaultCommissionRate())
	assert.Equal(t, domain.Money(5000), domain.RoleReferrer.DefaultCommissionRate())
	assert.Equal(t, domain.Money(0), domain.RoleProvider.DefaultCommissionRate())
	assert.Equal(t, domain.Money(0), domain.RoleAdmin.DefaultCommissionRate())
	assert.Equal(t, domain.Money(0), domain.Role("UNKNOWN").DefaultCommissionRate())
}
