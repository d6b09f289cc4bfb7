package mockdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/reviews"
)

func TestCasesReferenceKnownRecords(t *testing.T) {
	docs := map[string]bool{}
	for _, d := range mockdata.Documents() {
		docs[d.ID] = true
	}
	people := map[string]bool{}
	for _, u := range mockdata.Users() {
		people[u.ID] = true
	}

	for _, c := range mockdata.Cases() {
		for _, id := range c.DocumentIDs {
			assert.True(t, docs[id], "case %s references unknown document %s", c.ID, id)
		}
		if c.AssignedTo != "" {
			assert.True(t, people[c.AssignedTo], "case %s assigned to unknown user", c.ID)
		}
	}
}

func TestStatsShares(t *testing.T) {
	s := mockdata.Stats()

	assert.Equal(t, 100, s.ConflictShare(0))
	assert.Equal(t, 82, s.ConflictShare(1))
	assert.Equal(t, 11, s.ConflictShare(4))
	assert.Equal(t, 0, s.ConflictShare(9))
}

func TestAnalysisConfidence(t *testing.T) {
	a := mockdata.Analysis()

	assert.Equal(t, 87, a.AI.Confidence)
	assert.Len(t, a.AI.Findings(), len(a.AI.KeyFindings))
	assert.NotEmpty(t, a.Recommendation.ImplementationSteps)
}

func TestReviewSeedIsDeterministic(t *testing.T) {
	first := mockdata.ReviewSeed(mockdata.Cases())
	second := mockdata.ReviewSeed(mockdata.Cases())
	require.Equal(t, first, second)

	assert.Len(t, first.Comments, len(mockdata.Cases()))

	var validated int
	for _, a := range first.Audit {
		if a.Action == reviews.ActionValidated {
			validated++
			assert.Equal(t, "3", a.CaseID)
		}
	}
	assert.Equal(t, 1, validated)
}
