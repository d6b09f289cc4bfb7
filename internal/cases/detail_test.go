package cases_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
)

func TestComposeDocumentPanels(t *testing.T) {
	a := mockdata.Analysis()

	two := cases.Compose(cases.Case{ID: "1", DocumentIDs: []string{"1", "2"}}, a)
	assert.Equal(t, "1", two.Left.ID)
	assert.Equal(t, "2", two.Right.ID)

	one := cases.Compose(cases.Case{ID: "3", DocumentIDs: []string{"1"}}, a)
	assert.Equal(t, "1", one.Left.ID)
	assert.Equal(t, "1", one.Right.ID)
}

func TestComposeFlaggedArticles(t *testing.T) {
	d := cases.Compose(mockdata.Cases()[0], mockdata.Analysis())

	require.NotEmpty(t, d.Left.Articles)
	assert.True(t, d.Left.IsFlagged(d.Left.Articles[0]))
	assert.False(t, d.Left.IsFlagged(d.Left.Articles[1]))
	assert.Equal(t, "Law 7/2014", d.Left.Citation())
	assert.Equal(t, "Law 9/2002", d.Right.Citation())
}

func TestComposeClampsRisk(t *testing.T) {
	a := mockdata.Analysis()
	a.Impact.RiskAssessment = cases.RiskAssessment{ComplianceRisk: 140, LitigationRisk: -5, OperationalRisk: 45}

	d := cases.Compose(cases.Case{ID: "1"}, a)
	assert.Equal(t, cases.RiskAssessment{ComplianceRisk: 100, LitigationRisk: 0, OperationalRisk: 45}, d.Impact.RiskAssessment)
}

func TestComposeDoesNotShareSlices(t *testing.T) {
	a := mockdata.Analysis()
	d := cases.Compose(cases.Case{ID: "1", DocumentIDs: []string{"1", "2"}}, a)

	d.KeyDifferences[0] = "changed"
	d.Left.FlaggedArticles[0] = "changed"
	assert.NotEqual(t, "changed", a.KeyDifferences[0])
	assert.NotEqual(t, "changed", a.Left.FlaggedArticles[0])
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		score int
		want  cases.Severity
		label string
	}{
		{100, cases.SeverityHigh, "High Confidence"},
		{80, cases.SeverityHigh, "High Confidence"},
		{79, cases.SeverityMedium, "Medium Confidence"},
		{60, cases.SeverityMedium, "Medium Confidence"},
		{59, cases.SeverityLow, "Low Confidence"},
		{0, cases.SeverityLow, "Low Confidence"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cases.ConfidenceLevel(tt.score), tt.score)
		assert.Equal(t, tt.label, cases.ConfidenceLabel(tt.score), tt.score)
	}
}

func TestFindingsSplitOnColon(t *testing.T) {
	ai := cases.AIAnalysis{KeyFindings: []string{"Timeline Conflict: 30 days versus 60 days", "No separator"}}

	got := ai.Findings()
	require.Len(t, got, 2)
	assert.Equal(t, cases.Finding{Title: "Timeline Conflict", Description: "30 days versus 60 days"}, got[0])
	assert.Equal(t, cases.Finding{Title: "No separator"}, got[1])
}

func TestRecommendationNarrative(t *testing.T) {
	r := cases.Recommendation{
		ApplicableLaw: cases.ApplicableLaw{LawNumber: "7", Year: 2014, Title: "Commercial Companies Law", Rationale: "Later law prevails."},
		LegalBasis: []cases.LegalBasis{
			{Principle: "Lex Posterior", Description: "The later law governs."},
			{Principle: "Lex Specialis", Description: "The specific law governs."},
		},
		ExplanatoryNote: "Apply the thirty day deadline.",
	}

	want := "Based on a comprehensive legal analysis, it is recommended to apply Law 7/2014 - \"Commercial Companies Law\".\n\n" +
		"Later law prevails.\n\n" +
		"Legal Framework Analysis:\n1. Lex Posterior: The later law governs.\n\n2. Lex Specialis: The specific law governs.\n\n" +
		"Detailed Analysis:\nApply the thirty day deadline."
	assert.Equal(t, want, r.Narrative())

	r.AlternativeApproach = "Amend Law 9/2002."
	assert.True(t, strings.HasSuffix(r.Narrative(), "\n\nAlternative Consideration:\nAmend Law 9/2002."))
}

func TestRecommendationParagraphs(t *testing.T) {
	r := mockdata.Analysis().Recommendation

	paragraphs := r.Paragraphs()
	require.NotEmpty(t, paragraphs)
	assert.Empty(t, paragraphs[0].Heading)

	var headings []string
	for _, p := range paragraphs {
		if p.Heading != "" {
			headings = append(headings, p.Heading)
		}
	}
	assert.Equal(t, []string{"Legal Framework Analysis", "Detailed Analysis", "Alternative Consideration"}, headings)
}

func TestSystemDetail(t *testing.T) {
	sys := newSystem()

	d, err := sys.Detail(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", d.Case.ID)
	assert.Equal(t, 87, d.AI.Confidence)
	assert.Len(t, d.KeyDifferences, 3)

	_, err = sys.Detail(context.Background(), "999")
	assert.ErrorIs(t, err, cases.ErrNotFound)
}
