package deposit

import (
	"math/rand"
	"testing"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func item(price int64, qty int, policy domain.DepositPolicy) domain.LineItem {
	return domain.LineItem{UnitPrice: price, Quantity: qty, Deposit: policy}
}

func TestCalculator_LineDeposit(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	tests := []struct {
		name string
		item domain.LineItem
		want int64
	}{
		{"default percentage", item(50_000, 1, domain.DepositPolicy{}), 12_500},
		{"default raised to floor", item(20_000, 1, domain.DepositPolicy{}), 10_000},
		{"floor capped by line total", item(8_000, 1, domain.DepositPolicy{}), 8_000},
		{"default capped at ceiling", item(1_000_000, 1, domain.DepositPolicy{}), 100_000},
		{"fixed per unit", item(40_000, 2, domain.DepositPolicy{FixedAmount: int64Ptr(15_000)}), 30_000},
		{"fixed wins over percentage", item(40_000, 1, domain.DepositPolicy{
			FixedAmount: int64Ptr(20_000),
			Percentage:  float64Ptr(90),
		}), 20_000},
		{"fractional percentage", item(90_000, 1, domain.DepositPolicy{Percentage: float64Ptr(12.5)}), 11_250},
		{"rounds half away from zero", item(30_001, 1, domain.DepositPolicy{Percentage: float64Ptr(50)}), 15_001},
		{"percentage over quantity", item(30_000, 3, domain.DepositPolicy{Percentage: float64Ptr(20)}), 18_000},
		{"zero priced line", item(0, 1, domain.DepositPolicy{}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.LineDeposit(tt.item))
		})
	}
}

func TestCalculator_Calculate_SumsLines(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	res := calc.Calculate([]domain.LineItem{
		item(50_000, 1, domain.DepositPolicy{}),
		item(8_000, 1, domain.DepositPolicy{}),
	}, Overrides{})

	assert.Equal(t, int64(58_000), res.TotalAmount)
	assert.Equal(t, int64(20_500), res.ServiceDeposit)
	assert.Equal(t, int64(20_500), res.DepositAmount)
	assert.Equal(t, int64(37_500), res.RemainingAmount)
}

func TestCalculator_Calculate_Overrides(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	items := []domain.LineItem{item(40_000, 2, domain.DepositPolicy{})}

	tests := []struct {
		name        string
		ov          Overrides
		wantDeposit int64
	}{
		{"deposit override", Overrides{Deposit: int64Ptr(30_000)}, 30_000},
		{"deposit override above total", Overrides{Deposit: int64Ptr(200_000)}, 80_000},
		{"negative deposit override", Overrides{Deposit: int64Ptr(-5)}, 0},
		{"remaining override", Overrides{Remaining: int64Ptr(30_000)}, 50_000},
		{"remaining override above total", Overrides{Remaining: int64Ptr(90_000)}, 0},
		{"deposit wins over remaining", Overrides{Deposit: int64Ptr(10_000), Remaining: int64Ptr(10_000)}, 10_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc.Calculate(items, tt.ov)
			assert.Equal(t, tt.wantDeposit, res.DepositAmount)
			assert.Equal(t, res.TotalAmount, res.DepositAmount+res.RemainingAmount)
		})
	}
}

func TestCalculator_Calculate_Invariants(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var policy domain.DepositPolicy
		switch rnd.Intn(3) {
		case 0:
			policy.FixedAmount = int64Ptr(int64(rnd.Intn(150_000)))
		case 1:
			policy.Percentage = float64Ptr(float64(rnd.Intn(1000)) / 10)
		}
		it := item(int64(rnd.Intn(500_000)), 1+rnd.Intn(3), policy)

		res := calc.Calculate([]domain.LineItem{it}, Overrides{})

		require.Equal(t, res.TotalAmount, res.DepositAmount+res.RemainingAmount)
		require.GreaterOrEqual(t, res.DepositAmount, int64(0))
		require.LessOrEqual(t, res.DepositAmount, res.TotalAmount)
		require.LessOrEqual(t, res.DepositAmount, int64(DefaultMaxDeposit))
		if res.TotalAmount < DefaultMinDeposit {
			require.Equal(t, res.TotalAmount, res.DepositAmount)
		} else {
			require.GreaterOrEqual(t, res.DepositAmount, int64(DefaultMinDeposit))
		}
	}
}

func TestCalculator_Calculate_Idempotent(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	items := []domain.LineItem{
		item(33_333, 3, domain.DepositPolicy{Percentage: float64Ptr(33.3)}),
		item(70_000, 1, domain.DepositPolicy{FixedAmount: int64Ptr(5_000)}),
	}
	ov := Overrides{Remaining: int64Ptr(60_000)}

	first := calc.Calculate(items, ov)
	second := calc.Calculate(items, ov)

	assert.Equal(t, first, second)
}

func TestNewCalculator_FixesInvertedBounds(t *testing.T) {
	calc := NewCalculator(Policy{MinDeposit: 5_000, MaxDeposit: 1_000, DefaultPercentage: 10})

	assert.Equal(t, int64(5_000), calc.LineDeposit(item(100_000, 1, domain.DepositPolicy{})))
}
