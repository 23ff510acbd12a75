// Package deposit computes the upfront deposit of a reservation from the
// per-service deposit policies snapshotted at booking time.
package deposit

import (
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SalonBooker/internal/domain"
)

const (
	DefaultMinDeposit = 10_000
	DefaultMaxDeposit = 100_000
	DefaultPercentage = 25
)

type Policy struct {
	MinDeposit        int64
	MaxDeposit        int64
	DefaultPercentage float64
}

func DefaultPolicy() Policy {
	return Policy{
		MinDeposit:        DefaultMinDeposit,
		MaxDeposit:        DefaultMaxDeposit,
		DefaultPercentage: DefaultPercentage,
	}
}

type Overrides struct {
	Deposit   *int64
	Remaining *int64
}

type Result struct {
	TotalAmount     int64
	ServiceDeposit  int64
	DepositAmount   int64
	RemainingAmount int64
}

type Calculator struct {
	policy Policy
}

func NewCalculator(p Policy) *Calculator {
	if p.MaxDeposit < p.MinDeposit {
		p.MaxDeposit = p.MinDeposit
	}
	return &Calculator{policy: p}
}

// Calculate has no side effects; equal inputs give equal results.
func (c *Calculator) Calculate(items []domain.LineItem, ov Overrides) Result {
	var total, serviceDeposit int64
	for _, it := range items {
		total += LineTotal(it.UnitPrice, it.Quantity)
		serviceDeposit += c.LineDeposit(it)
	}

	deposit := serviceDeposit
	switch {
	case ov.Deposit != nil:
		deposit = *ov.Deposit
	case ov.Remaining != nil:
		deposit = total - *ov.Remaining
	}
	deposit = clamp(deposit, 0, total)

	return Result{
		TotalAmount:     total,
		ServiceDeposit:  serviceDeposit,
		DepositAmount:   deposit,
		RemainingAmount: total - deposit,
	}
}

// LineDeposit applies fixed, then percentage, then the platform default, and
// keeps the result inside [min, max] without exceeding the line total.
func (c *Calculator) LineDeposit(it domain.LineItem) int64 {
	lineTotal := LineTotal(it.UnitPrice, it.Quantity)

	var amount int64
	switch {
	case it.Deposit.FixedAmount != nil:
		amount = *it.Deposit.FixedAmount * int64(it.Quantity)
	case it.Deposit.Percentage != nil:
		amount = percentOf(lineTotal, decimal.NewFromFloat(*it.Deposit.Percentage))
	default:
		amount = percentOf(lineTotal, decimal.NewFromFloat(c.policy.DefaultPercentage))
	}

	amount = clamp(amount, c.policy.MinDeposit, c.policy.MaxDeposit)
	if amount > lineTotal {
		amount = lineTotal
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

func LineTotal(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// percentOf rounds half away from zero, matching Postgres ROUND on numeric.
func percentOf(amount int64, pct decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).
		Mul(pct).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
