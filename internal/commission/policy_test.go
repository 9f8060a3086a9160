package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-referral/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sumSplits(splits []domain.Split) decimal.Decimal {
	total := decimal.Zero
	for _, s := range splits {
		total = total.Add(s.Amount)
	}
	return total
}

func TestCalculateSplits_FullChain(t *testing.T) {
	p := NewDefaultPolicy()

	splits, err := p.CalculateSplits("T", dec("10"), dec("0"), []string{"R1", "R2", "R3"})
	require.NoError(t, err)
	require.Len(t, splits, 4)

	assert.Equal(t, "R1", splits[0].BeneficiaryID)
	assert.Equal(t, domain.Level(1), splits[0].Level)
	assert.Equal(t, "3.00000000", splits[0].Amount.StringFixed(8))

	assert.Equal(t, "R2", splits[1].BeneficiaryID)
	assert.Equal(t, "0.30000000", splits[1].Amount.StringFixed(8))

	assert.Equal(t, "R3", splits[2].BeneficiaryID)
	assert.Equal(t, "0.20000000", splits[2].Amount.StringFixed(8))

	treasury := splits[3]
	assert.Equal(t, domain.TREASURY_BENEFICIARY, treasury.BeneficiaryID)
	assert.Equal(t, domain.LevelTreasury, treasury.Level)
	assert.Equal(t, domain.DestinationTreasury, treasury.Destination)
	assert.Equal(t, "6.50000000", treasury.Amount.StringFixed(8))
	assert.Equal(t, "0.65000000", treasury.Rate.StringFixed(8))

	assert.True(t, sumSplits(splits).Equal(dec("10")))
}

func TestCalculateSplits_WithCashback(t *testing.T) {
	p := NewDefaultPolicy()

	splits, err := p.CalculateSplits("T", dec("10"), dec("0.1"), []string{"R1"})
	require.NoError(t, err)
	require.Len(t, splits, 3)

	assert.Equal(t, "T", splits[0].BeneficiaryID)
	assert.Equal(t, domain.LevelCashback, splits[0].Level)
	assert.Equal(t, domain.DestinationClaimable, splits[0].Destination)
	assert.Equal(t, "1.00000000", splits[0].Amount.StringFixed(8))

	assert.Equal(t, "R1", splits[1].BeneficiaryID)
	assert.Equal(t, "3.00000000", splits[1].Amount.StringFixed(8))

	assert.Equal(t, "6.00000000", splits[2].Amount.StringFixed(8))
}

func TestCalculateSplits_NoAncestors(t *testing.T) {
	p := NewDefaultPolicy()

	splits, err := p.CalculateSplits("T", dec("10"), dec("0"), nil)
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Equal(t, domain.TREASURY_BENEFICIARY, splits[0].BeneficiaryID)
	assert.Equal(t, "10.00000000", splits[0].Amount.StringFixed(8))
	assert.Equal(t, "1.00000000", splits[0].Rate.StringFixed(8))
}

func TestCalculateSplits_StopsAtMissingAncestor(t *testing.T) {
	p := NewDefaultPolicy()

	splits, err := p.CalculateSplits("T", dec("10"), dec("0"), []string{"R1", "", "R3"})
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Equal(t, "R1", splits[0].BeneficiaryID)
	assert.Equal(t, domain.TREASURY_BENEFICIARY, splits[1].BeneficiaryID)
	assert.Equal(t, "7.00000000", splits[1].Amount.StringFixed(8))
}

func TestCalculateSplits_TruncatesExtraAncestors(t *testing.T) {
	p := NewDefaultPolicy()

	splits, err := p.CalculateSplits("T", dec("10"), dec("0"), []string{"R1", "R2", "R3", "R4"})
	require.NoError(t, err)
	for _, s := range splits {
		assert.NotEqual(t, "R4", s.BeneficiaryID)
	}
}

func TestCalculateSplits_ZeroFee(t *testing.T) {
	p := NewDefaultPolicy()

	splits, err := p.CalculateSplits("T", decimal.Zero, dec("0.5"), []string{"R1", "R2", "R3"})
	require.NoError(t, err)
	assert.Empty(t, splits)
}

func TestCalculateSplits_TinyFeeSkipsZeroAmounts(t *testing.T) {
	p := NewDefaultPolicy()

	// 0.00000002 * 0.02 rounds to zero at 8 decimals
	splits, err := p.CalculateSplits("T", dec("0.00000002"), dec("0"), []string{"R1", "R2", "R3"})
	require.NoError(t, err)
	for _, s := range splits {
		assert.True(t, s.Amount.IsPositive(), "split %s at level %d", s.BeneficiaryID, s.Level)
	}
	assert.True(t, sumSplits(splits).Equal(dec("0.00000002")))
}

func TestCalculateSplits_Conservation(t *testing.T) {
	p := NewDefaultPolicy()
	fees := []string{"0.00000001", "0.1", "1", "7.77777777", "10", "123456.12345678"}
	rates := []string{"0", "0.05", "0.1", "0.333", "0.65"}
	chains := [][]string{nil, {"R1"}, {"R1", "R2"}, {"R1", "R2", "R3"}}

	for _, fee := range fees {
		for _, rate := range rates {
			for _, ancestors := range chains {
				splits, err := p.CalculateSplits("T", dec(fee), dec(rate), ancestors)
				require.NoError(t, err)
				assert.True(t, sumSplits(splits).Equal(dec(fee)), "fee=%s rate=%s ancestors=%v", fee, rate, ancestors)
				for _, s := range splits {
					assert.True(t, s.Amount.IsPositive())
					assert.LessOrEqual(t, int(s.Level), domain.MAX_REFERRAL_DEPTH)
				}
			}
		}
	}
}

func TestCalculateSplits_Errors(t *testing.T) {
	p := NewDefaultPolicy()

	_, err := p.CalculateSplits("T", dec("-1"), dec("0"), nil)
	assert.ErrorIs(t, err, domain.ErrNegativeFee)

	_, err = p.CalculateSplits("T", dec("1"), dec("1.1"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCashbackRate)

	_, err = p.CalculateSplits("T", dec("1"), dec("-0.1"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCashbackRate)

	// cashback 0.9 with a full upline pays 1.25 of the fee
	_, err = p.CalculateSplits("T", dec("1"), dec("0.9"), []string{"R1", "R2", "R3"})
	assert.ErrorIs(t, err, domain.ErrSplitOverflow)
}

func TestNewFixedRatePolicy(t *testing.T) {
	_, err := NewFixedRatePolicy([]decimal.Decimal{dec("0.6"), dec("0.3"), dec("0.2")})
	assert.ErrorIs(t, err, domain.ErrSplitOverflow)

	_, err = NewFixedRatePolicy([]decimal.Decimal{dec("0.1"), dec("0.1"), dec("0.1"), dec("0.1")})
	assert.Error(t, err)

	_, err = NewFixedRatePolicy([]decimal.Decimal{dec("-0.1")})
	assert.Error(t, err)

	vip, err := NewFixedRatePolicy([]decimal.Decimal{dec("0.40"), dec("0.05")})
	require.NoError(t, err)
	splits, err := vip.CalculateSplits("T", dec("10"), dec("0"), []string{"R1", "R2", "R3"})
	require.NoError(t, err)
	require.Len(t, splits, 3)
	assert.Equal(t, "4.00000000", splits[0].Amount.StringFixed(8))
	assert.Equal(t, "0.50000000", splits[1].Amount.StringFixed(8))
	assert.Equal(t, "5.50000000", splits[2].Amount.StringFixed(8))
}

func TestNewPolicyFromRates(t *testing.T) {
	p, err := NewPolicyFromRates(nil)
	require.NoError(t, err)
	fixed, ok := p.(*FixedRatePolicy)
	require.True(t, ok)
	assert.Len(t, fixed.UplineRates(), 3)

	p, err = NewPolicyFromRates([]float64{0.25, 0.05})
	require.NoError(t, err)
	fixed = p.(*FixedRatePolicy)
	assert.Equal(t, "0.25", fixed.UplineRates()[0].String())
}
