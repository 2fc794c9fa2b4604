package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janseva/internal/portal/models"
)

func statusOf(t *testing.T, schemes []models.SchemeEligibility, name string) models.SchemeStatus {
	t.Helper()
	for _, s := range schemes {
		if s.SchemeName == name {
			require.NotEmpty(t, s.AIReasoning, "every determination carries a reason")
			return s.Status
		}
	}
	t.Fatalf("scheme %q missing from determination", name)
	return ""
}

func TestEvaluateCoversEveryScheme(t *testing.T) {
	schemes := Evaluate(models.FamilyProfile{Occupation: "Teacher", AnnualIncome: 500000})
	require.Len(t, schemes, 5)
	names := make([]string, 0, len(schemes))
	for _, s := range schemes {
		names = append(names, s.SchemeName)
	}
	assert.Equal(t, []string{SchemePMKisan, SchemeMGNREGA, SchemePMJAY, SchemePMAYGramin, SchemeJanAushadhi}, names)
}

func TestFarmerFamilyBelowCeilings(t *testing.T) {
	schemes := Evaluate(models.FamilyProfile{
		FamilyHeadName: "Rajesh Kumar Singh",
		Occupation:     "Farmer",
		CasteCategory:  "OBC",
		AnnualIncome:   95000,
	})

	assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMKisan))
	assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemeMGNREGA))
	assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMJAY))
	assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMAYGramin))
	assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemeJanAushadhi))
}

func TestHighIncomeUrbanFamily(t *testing.T) {
	schemes := Evaluate(models.FamilyProfile{
		Occupation:    "Engineer",
		CasteCategory: "General",
		AnnualIncome:  900000,
	})

	assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMKisan))
	assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemeMGNREGA))
	assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMJAY))
	assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMAYGramin))
	assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemeJanAushadhi), "generic medicine access is universal")
}

func TestPMKisan(t *testing.T) {
	t.Run("non-farmer is out regardless of income", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Labourer", AnnualIncome: 50000})
		assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMKisan))
	})

	t.Run("farmer above the ceiling is out", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Farmer", AnnualIncome: 250000})
		assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMKisan))
	})

	t.Run("farmer at the ceiling is in", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Farmer", AnnualIncome: 200000})
		assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMKisan))
	})
}

func TestMGNREGA(t *testing.T) {
	t.Run("manual occupation qualifies above the income line", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Labourer", AnnualIncome: 300000})
		assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemeMGNREGA))
	})

	t.Run("unemployed head qualifies", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Unemployed", AnnualIncome: 150000})
		assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemeMGNREGA))
	})

	t.Run("low income qualifies regardless of occupation", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Teacher", AnnualIncome: 100000})
		assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemeMGNREGA))
	})
}

func TestPMJAY(t *testing.T) {
	t.Run("disability of the head qualifies over the income threshold", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{Occupation: "Teacher", AnnualIncome: 400000, HasDisability: true})
		assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMJAY))
	})

	t.Run("disability of any member qualifies", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{
			Occupation:   "Teacher",
			AnnualIncome: 400000,
			Members:      []models.FamilyMember{{Name: "Priya", HasDisability: true}},
		})
		assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMJAY))
	})

	t.Run("SC and ST households qualify automatically", func(t *testing.T) {
		for _, category := range []string{"SC", "ST"} {
			schemes := Evaluate(models.FamilyProfile{Occupation: "Teacher", AnnualIncome: 400000, CasteCategory: category})
			assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMJAY), category)
		}
	})
}

func TestPMAYGramin(t *testing.T) {
	t.Run("priority category within the ceiling qualifies", func(t *testing.T) {
		for _, category := range []string{"SC", "ST", "OBC"} {
			schemes := Evaluate(models.FamilyProfile{CasteCategory: category, AnnualIncome: 150000})
			assert.Equal(t, models.StatusEligible, statusOf(t, schemes, SchemePMAYGramin), category)
		}
	})

	t.Run("general category is out even within the ceiling", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{CasteCategory: "General", AnnualIncome: 150000})
		assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMAYGramin))
	})

	t.Run("priority category above the ceiling is out", func(t *testing.T) {
		schemes := Evaluate(models.FamilyProfile{CasteCategory: "SC", AnnualIncome: 300000})
		assert.Equal(t, models.StatusNotEligible, statusOf(t, schemes, SchemePMAYGramin))
	})
}
