package engine_test

import (
	"strings"
	"testing"

	"domainsuggest/internal/engine"
	"domainsuggest/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestGenerate_WithRole(t *testing.T) {
	got := engine.Generate(domain.Applicant{
		Name:          "John Smith",
		TargetCompany: "Apple",
		TargetRole:    "Marketing Manager",
	})

	require.Equal(t, []string{
		"johnsmith-apple.com",
		"johnsmithatapple.com",
		"hirejohnsmith.com",
		"johnsmith-apple-marketingmanage.com",
		"johnsmith-marketingmanage.com",
		"johnsmithforapple.com",
		"meetjohnsmith.com",
		"johnsmith-apple.dev",
		"johnsmith-apple.io",
		"johnsmith.pro",
		"johnsmith-portfolio.com",
		"johnsmithresume.com",
	}, got)
}

func TestGenerate_WithoutRole(t *testing.T) {
	withRole := engine.Generate(applicant("John Smith", "Apple", "Marketing Manager"))
	got := engine.Generate(applicant("John Smith", "Apple", ""))

	require.Len(t, got, 10)
	for _, d := range got {
		require.NotContains(t, d, "marketing")
	}
	require.NotContains(t, got, "johnsmith-apple-marketingmanage.com")
	require.NotContains(t, got, "johnsmith-marketingmanage.com")

	// dropping the two role templates leaves the order untouched
	var expected []string
	for _, d := range withRole {
		if !strings.Contains(d, "marketingmanage") {
			expected = append(expected, d)
		}
	}
	require.Equal(t, expected, got)
}

func TestGenerate_RoleNormalizingToEmptyIsAbsent(t *testing.T) {
	withoutRole := engine.Generate(domain.Applicant{Name: "Ann Lee", TargetCompany: "Stripe"})
	blankRole := engine.Generate(domain.Applicant{Name: "Ann Lee", TargetCompany: "Stripe", TargetRole: " !! "})

	require.Equal(t, withoutRole, blankRole)
}

func TestGenerate_CompanyNormalizingToEmpty(t *testing.T) {
	// "Inc." normalizes to an empty company token
	got := engine.Generate(domain.Applicant{Name: "Ann Lee", TargetCompany: "Inc."})

	require.Equal(t, []string{
		"annlee-.com",
		"annleeat.com",
		"hireannlee.com",
		"annleefor.com",
		"meetannlee.com",
		"annlee-.dev",
		"annlee-.io",
		"annlee.pro",
		"annlee-portfolio.com",
		"annleeresume.com",
	}, got)
	require.Equal(t, got, engine.Filter(got, 0))
}

func TestGenerate_NameNormalizingToEmpty(t *testing.T) {
	raw := engine.Generate(domain.Applicant{Name: "李明", TargetCompany: "Apple"})
	require.Len(t, raw, 10)

	require.Equal(t, []string{
		"atapple.com",
		"hire.com",
		"forapple.com",
		"meet.com",
		"resume.com",
	}, engine.Filter(raw, engine.MaxCandidates))
}
