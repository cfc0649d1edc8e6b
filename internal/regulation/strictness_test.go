package regulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostudiom/learn-api/internal/model"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func bp(v bool) *bool       { return &v }
func sp(v string) *string   { return &v }

func TestExtractFeeCityPrecedence(t *testing.T) {
	reg := &model.Registration{
		City:   &model.RegistrationLevel{Fee: fp(500)},
		County: &model.RegistrationLevel{Fee: fp(300)},
	}
	fee := ExtractFee(reg)
	require.NotNil(t, fee)
	assert.Equal(t, 500.0, *fee)
}

func TestExtractFeeCityZeroStillWins(t *testing.T) {
	reg := &model.Registration{
		City:   &model.RegistrationLevel{Fee: fp(0)},
		County: &model.RegistrationLevel{Fee: fp(300)},
	}
	fee := ExtractFee(reg)
	require.NotNil(t, fee)
	assert.Equal(t, 0.0, *fee)
}

func TestExtractFeeCountyFallback(t *testing.T) {
	reg := &model.Registration{
		County: &model.RegistrationLevel{Fee: fp(300)},
	}
	fee := ExtractFee(reg)
	require.NotNil(t, fee)
	assert.Equal(t, 300.0, *fee)
}

func TestExtractFeeAbsent(t *testing.T) {
	assert.Nil(t, ExtractFee(nil))
	assert.Nil(t, ExtractFee(&model.Registration{}))
	assert.Nil(t, ExtractFee(&model.Registration{City: &model.RegistrationLevel{}}))
}

func TestExtractMaxFineTakesLarger(t *testing.T) {
	pen := &model.Penalties{
		City:   &model.PenaltyLevel{MaxFine: fp(5000)},
		County: &model.PenaltyLevel{MaxFine: fp(15000)},
	}
	fine := ExtractMaxFine(pen)
	require.NotNil(t, fine)
	assert.Equal(t, 15000.0, *fine)
}

func TestExtractMaxFineAbsentOrZero(t *testing.T) {
	assert.Nil(t, ExtractMaxFine(nil))
	assert.Nil(t, ExtractMaxFine(&model.Penalties{}))
	assert.Nil(t, ExtractMaxFine(&model.Penalties{
		City: &model.PenaltyLevel{MaxFine: fp(0)},
	}))
}

func TestHasNightCap(t *testing.T) {
	assert.False(t, HasNightCap(nil))
	assert.False(t, HasNightCap(&model.Limits{City: &model.LimitLevel{}}))
	assert.True(t, HasNightCap(&model.Limits{City: &model.LimitLevel{NightsPerYear: ip(90)}}))
	assert.True(t, HasNightCap(&model.Limits{County: &model.LimitLevel{NightsPerYear: ip(180)}}))
}

func TestIsPrimaryResidenceRequired(t *testing.T) {
	assert.False(t, IsPrimaryResidenceRequired(nil, nil))
	assert.True(t, IsPrimaryResidenceRequired(&model.Eligibility{PrimaryResidenceRequired: bp(true)}, nil))
	assert.True(t, IsPrimaryResidenceRequired(nil, &model.Registration{
		City: &model.RegistrationLevel{PrimaryResidenceRequired: bp(true)},
	}))
	// explicit false does not count
	assert.False(t, IsPrimaryResidenceRequired(&model.Eligibility{PrimaryResidenceRequired: bp(false)}, nil))
}

func TestTotalTaxRateCityPrecedence(t *testing.T) {
	taxes := &model.Taxes{
		TotalTaxRateCity:   fp(14.5),
		TotalTaxRateCounty: fp(10.0),
		StateSalesTax:      fp(6.25),
	}
	rate := TotalTaxRate(taxes)
	require.NotNil(t, rate)
	assert.Equal(t, 14.5, *rate)

	// state sales tax is never a fallback
	assert.Nil(t, TotalTaxRate(&model.Taxes{StateSalesTax: fp(6.25)}))
}

func TestDeriveStrictnessNilIsPermissive(t *testing.T) {
	assert.Equal(t, Permissive, DeriveStrictness(nil))
}

func TestDeriveStrictnessStrict(t *testing.T) {
	// fee 600 (+2), night cap (+2), primary residence (+2) => 6
	r := &model.Regulation{
		Registration: &model.Registration{
			City: &model.RegistrationLevel{Fee: fp(600)},
		},
		Limits:      &model.Limits{City: &model.LimitLevel{NightsPerYear: ip(120)}},
		Eligibility: &model.Eligibility{PrimaryResidenceRequired: bp(true)},
	}
	assert.Equal(t, Strict, DeriveStrictness(r))
}

func TestDeriveStrictnessModerate(t *testing.T) {
	// fee 200 (+1), fine 2000 (+1) => 2
	r := &model.Regulation{
		Registration: &model.Registration{
			City: &model.RegistrationLevel{Fee: fp(200)},
		},
		Penalties: &model.Penalties{City: &model.PenaltyLevel{MaxFine: fp(2000)}},
	}
	assert.Equal(t, Moderate, DeriveStrictness(r))
}

func TestDeriveStrictnessPermissive(t *testing.T) {
	// fee 50 scores nothing
	r := &model.Regulation{
		Registration: &model.Registration{
			City: &model.RegistrationLevel{Fee: fp(50)},
		},
	}
	assert.Equal(t, Permissive, DeriveStrictness(r))
}

func TestDeriveStrictnessBreakpoints(t *testing.T) {
	// fee exactly 500 is the moderate bucket, 501 the strict one
	base := func(fee float64) *model.Regulation {
		return &model.Regulation{
			Registration: &model.Registration{
				City: &model.RegistrationLevel{Fee: fp(fee), Required: bp(true)},
			},
			Penalties: &model.Penalties{City: &model.PenaltyLevel{MaxFine: fp(10000)}},
		}
	}
	// 500: +1 fee, +2 fine, +1 permit = 4 => moderate
	assert.Equal(t, Moderate, DeriveStrictness(base(500)))
	// 501: +2 fee, +2 fine, +1 permit = 5 => strict
	assert.Equal(t, Strict, DeriveStrictness(base(501)))
}

func TestExtractPublicFlags(t *testing.T) {
	r := &model.Regulation{
		Registration: &model.Registration{
			City: &model.RegistrationLevel{Required: bp(true)},
		},
		Limits: &model.Limits{City: &model.LimitLevel{NightsPerYear: ip(90)}},
		Taxes:  &model.Taxes{TotalTaxRateCity: fp(12.5)},
	}
	flags := ExtractPublicFlags(r, 3)
	assert.True(t, flags.PermitRequired)
	assert.True(t, flags.NightLimitsApply)
	assert.False(t, flags.PrimaryResidenceOnly)
	require.NotNil(t, flags.TotalTaxRate)
	assert.Equal(t, "12.5%", *flags.TotalTaxRate)
	assert.Equal(t, 3, flags.GotchaCount)
}

func TestExtractPublicFlagsNilRegulation(t *testing.T) {
	assert.Equal(t, Flags{}, ExtractPublicFlags(nil, 5))
}

func TestSTRsAllowedDefaultsTrue(t *testing.T) {
	assert.True(t, STRsAllowed(nil))
	assert.True(t, STRsAllowed(&model.Regulation{}))
}

func TestSTRsAllowedExplicitProhibition(t *testing.T) {
	assert.False(t, STRsAllowed(&model.Regulation{Status: sp("prohibited")}))
	assert.False(t, STRsAllowed(&model.Regulation{Status: sp("banned")}))
	assert.False(t, STRsAllowed(&model.Regulation{
		Registration: &model.Registration{
			City: &model.RegistrationLevel{Allowed: bp(false)},
		},
	}))
	assert.True(t, STRsAllowed(&model.Regulation{Status: sp("active")}))
}

func TestPermitName(t *testing.T) {
	assert.Equal(t, "STR Permit", PermitName(nil))
	assert.Equal(t, "STR Permit", PermitName(&model.Registration{}))
	assert.Equal(t, "Short-Term Rental License", PermitName(&model.Registration{
		City:   &model.RegistrationLevel{PermitName: sp("Short-Term Rental License")},
		County: &model.RegistrationLevel{PermitName: sp("County STR Permit")},
	}))
	assert.Equal(t, "County STR Permit", PermitName(&model.Registration{
		County: &model.RegistrationLevel{PermitName: sp("County STR Permit")},
	}))
}

func TestRequiredDocumentsMergedDeduped(t *testing.T) {
	reg := &model.Registration{
		City:   &model.RegistrationLevel{RequiredDocuments: []string{"proof of residence", "floor plan"}},
		County: &model.RegistrationLevel{RequiredDocuments: []string{"floor plan", "tax certificate"}},
	}
	assert.Equal(t,
		[]string{"proof of residence", "floor plan", "tax certificate"},
		RequiredDocuments(reg))
}
