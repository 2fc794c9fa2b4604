// Package eligibility determines which welfare schemes a household qualifies
// for. Pure domain logic, no I/O and no side effects; the handler layer feeds
// it a family profile and persists whatever it returns.
package eligibility

import (
	"fmt"

	"janseva/internal/portal/models"
)

// Scheme names as published by the portal.
const (
	SchemePMKisan     = "PM-KISAN"
	SchemeMGNREGA     = "MGNREGA"
	SchemePMJAY       = "PM-JAY"
	SchemePMAYGramin  = "PMAY-Gramin"
	SchemeJanAushadhi = "Jan Aushadhi"
)

// Income ceilings in rupees per year.
const (
	pmKisanIncomeCeiling    = 200000
	mgnregaIncomeCeiling    = 120000
	pmjayIncomeCeiling      = 100000
	pmayGraminIncomeCeiling = 180000
)

// Evaluate produces a determination for every scheme in a fixed publication
// order. It never returns an empty set; ineligible schemes appear with a
// Not Eligible status and a reason rather than being omitted.
func Evaluate(family models.FamilyProfile) []models.SchemeEligibility {
	return []models.SchemeEligibility{
		evaluatePMKisan(family),
		evaluateMGNREGA(family),
		evaluatePMJAY(family),
		evaluatePMAYGramin(family),
		evaluateJanAushadhi(family),
	}
}

// evaluatePMKisan covers income support for landholding farmers.
func evaluatePMKisan(f models.FamilyProfile) models.SchemeEligibility {
	if f.Occupation != "Farmer" {
		return notEligible(SchemePMKisan, "the scheme supports landholding farmer families and the head's occupation is %s", f.Occupation)
	}
	if f.AnnualIncome > pmKisanIncomeCeiling {
		return notEligible(SchemePMKisan, "annual income of Rs. %.0f exceeds the Rs. %d ceiling for farmer income support", f.AnnualIncome, pmKisanIncomeCeiling)
	}
	return eligible(SchemePMKisan, "farmer household with annual income of Rs. %.0f within the Rs. %d ceiling qualifies for income support instalments", f.AnnualIncome, pmKisanIncomeCeiling)
}

// evaluateMGNREGA covers the rural wage employment guarantee.
func evaluateMGNREGA(f models.FamilyProfile) models.SchemeEligibility {
	manualWork := f.Occupation == "Farmer" || f.Occupation == "Labourer" || f.Occupation == "Unemployed"
	if f.AnnualIncome <= mgnregaIncomeCeiling {
		return eligible(SchemeMGNREGA, "household income of Rs. %.0f is within the Rs. %d line for guaranteed wage employment", f.AnnualIncome, mgnregaIncomeCeiling)
	}
	if manualWork {
		return eligible(SchemeMGNREGA, "the head's occupation (%s) qualifies the household for guaranteed rural wage work", f.Occupation)
	}
	return notEligible(SchemeMGNREGA, "household income of Rs. %.0f is above the Rs. %d line and the head's occupation does not involve manual rural work", f.AnnualIncome, mgnregaIncomeCeiling)
}

// evaluatePMJAY covers health insurance for deprived households.
func evaluatePMJAY(f models.FamilyProfile) models.SchemeEligibility {
	switch {
	case f.AnnualIncome <= pmjayIncomeCeiling:
		return eligible(SchemePMJAY, "household income of Rs. %.0f is below the Rs. %d coverage threshold for cashless health insurance", f.AnnualIncome, pmjayIncomeCeiling)
	case f.HasDisability || anyMemberDisabled(f):
		return eligible(SchemePMJAY, "a family member with a disability qualifies the household under the deprivation criteria")
	case f.CasteCategory == "SC" || f.CasteCategory == "ST":
		return eligible(SchemePMJAY, "%s households qualify under the automatic-inclusion deprivation criteria", f.CasteCategory)
	default:
		return notEligible(SchemePMJAY, "household income of Rs. %.0f exceeds the Rs. %d threshold and no deprivation criterion applies", f.AnnualIncome, pmjayIncomeCeiling)
	}
}

// evaluatePMAYGramin covers rural housing assistance.
func evaluatePMAYGramin(f models.FamilyProfile) models.SchemeEligibility {
	if f.AnnualIncome > pmayGraminIncomeCeiling {
		return notEligible(SchemePMAYGramin, "annual income of Rs. %.0f is above the Rs. %d ceiling for rural housing assistance", f.AnnualIncome, pmayGraminIncomeCeiling)
	}
	switch f.CasteCategory {
	case "SC", "ST", "OBC":
		return eligible(SchemePMAYGramin, "%s household with annual income of Rs. %.0f qualifies for priority rural housing assistance", f.CasteCategory, f.AnnualIncome)
	default:
		return notEligible(SchemePMAYGramin, "the household does not fall in a priority category for rural housing assistance")
	}
}

// evaluateJanAushadhi covers access to generic medicine outlets, which is
// universal.
func evaluateJanAushadhi(models.FamilyProfile) models.SchemeEligibility {
	return eligible(SchemeJanAushadhi, "generic medicine outlets are open to every household with no income or category conditions")
}

func anyMemberDisabled(f models.FamilyProfile) bool {
	for _, m := range f.Members {
		if m.HasDisability {
			return true
		}
	}
	return false
}

func eligible(scheme, format string, args ...any) models.SchemeEligibility {
	return models.SchemeEligibility{
		SchemeName:  scheme,
		Status:      models.StatusEligible,
		AIReasoning: fmt.Sprintf(format, args...),
	}
}

func notEligible(scheme, format string, args ...any) models.SchemeEligibility {
	return models.SchemeEligibility{
		SchemeName:  scheme,
		Status:      models.StatusNotEligible,
		AIReasoning: fmt.Sprintf(format, args...),
	}
}
