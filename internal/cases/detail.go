package cases

import (
	"fmt"
	"slices"
	"strings"
)

// Article is one clause of a comparison document.
type Article struct {
	ID            string `json:"id"`
	ArticleNumber string `json:"article_number"`
	ClauseText    string `json:"clause_text"`
	EffectiveDate string `json:"effective_date,omitempty"`
	Version       string `json:"version,omitempty"`
}

// ComparisonDocument is a law shown in one of the side-by-side panels.
// FlaggedArticles holds the ids of the articles involved in the conflict.
type ComparisonDocument struct {
	ID              string    `json:"id"`
	LawNumber       string    `json:"law_number"`
	Year            int       `json:"year"`
	Title           string    `json:"title"`
	Jurisdiction    string    `json:"jurisdiction"`
	Articles        []Article `json:"articles"`
	FlaggedArticles []string  `json:"flagged_articles"`
}

// IsFlagged reports whether a is one of the document's flagged articles.
func (d ComparisonDocument) IsFlagged(a Article) bool {
	return slices.Contains(d.FlaggedArticles, a.ID)
}

// Citation formats the law as "Law N/YYYY".
func (d ComparisonDocument) Citation() string {
	return fmt.Sprintf("Law %s/%d", d.LawNumber, d.Year)
}

type AIAnalysis struct {
	DetectionMethod      string   `json:"detection_method"`
	Confidence           int      `json:"confidence"`
	TextSimilarity       int      `json:"text_similarity"`
	SemanticOverlap      int      `json:"semantic_overlap"`
	LogicalInconsistency bool     `json:"logical_inconsistency"`
	KeyFindings          []string `json:"key_findings"`
	LegalPrinciples      []string `json:"legal_principles"`
}

// Finding is a key finding split into its heading and explanation.
type Finding struct {
	Title       string
	Description string
}

// Findings splits each key finding at its first colon.
func (a AIAnalysis) Findings() []Finding {
	out := make([]Finding, len(a.KeyFindings))
	for i, f := range a.KeyFindings {
		title, desc, _ := strings.Cut(f, ":")
		out[i] = Finding{
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(desc),
		}
	}
	return out
}

// ConfidenceLevel grades a percentage score: 80 and above is high, 60 and
// above is medium, anything lower is low.
func ConfidenceLevel(score int) Severity {
	switch {
	case score >= 80:
		return SeverityHigh
	case score >= 60:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ConfidenceLabel returns the English badge text for score.
func ConfidenceLabel(score int) string {
	switch ConfidenceLevel(score) {
	case SeverityHigh:
		return "High Confidence"
	case SeverityMedium:
		return "Medium Confidence"
	default:
		return "Low Confidence"
	}
}

type Agency struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Impact Severity `json:"impact"`
}

type Stakeholder struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImpactLevel Severity `json:"impact_level"`
}

// Consequence types.
const (
	ConsequenceCompliance  = "compliance"
	ConsequenceLitigation  = "litigation"
	ConsequenceFinancial   = "financial"
	ConsequenceOperational = "operational"
)

type Consequence struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// RiskAssessment holds risk percentages.
type RiskAssessment struct {
	ComplianceRisk  int `json:"compliance_risk"`
	LitigationRisk  int `json:"litigation_risk"`
	OperationalRisk int `json:"operational_risk"`
}

// Clamped returns r with every percentage limited to 0 through 100.
func (r RiskAssessment) Clamped() RiskAssessment {
	return RiskAssessment{
		ComplianceRisk:  clampPercent(r.ComplianceRisk),
		LitigationRisk:  clampPercent(r.LitigationRisk),
		OperationalRisk: clampPercent(r.OperationalRisk),
	}
}

type ImpactAnalysis struct {
	AffectedAgencies     []Agency       `json:"affected_agencies"`
	AffectedStakeholders []Stakeholder  `json:"affected_stakeholders"`
	Consequences         []Consequence  `json:"consequences"`
	RiskAssessment       RiskAssessment `json:"risk_assessment"`
}

type ApplicableLaw struct {
	LawNumber string   `json:"law_number"`
	Year      int      `json:"year"`
	Title     string   `json:"title"`
	Articles  []string `json:"articles"`
	Rationale string   `json:"rationale"`
}

type LegalBasis struct {
	Principle   string `json:"principle"`
	Description string `json:"description"`
}

type Recommendation struct {
	ApplicableLaw       ApplicableLaw `json:"applicable_law"`
	LegalBasis          []LegalBasis  `json:"legal_basis"`
	ExplanatoryNote     string        `json:"explanatory_note"`
	ImplementationSteps []string      `json:"implementation_steps"`
	AlternativeApproach string        `json:"alternative_approach,omitempty"`
}

// Narrative renders the recommendation as prose paragraphs separated by
// blank lines. Section paragraphs start with a heading line ending in a colon.
func (r Recommendation) Narrative() string {
	law := r.ApplicableLaw

	var b strings.Builder
	fmt.Fprintf(&b,
		"Based on a comprehensive legal analysis, it is recommended to apply Law %s/%d - \"%s\".\n\n",
		law.LawNumber, law.Year, law.Title,
	)
	b.WriteString(law.Rationale)

	b.WriteString("\n\nLegal Framework Analysis:\n")
	for i, basis := range r.LegalBasis {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s: %s", i+1, basis.Principle, basis.Description)
	}

	b.WriteString("\n\nDetailed Analysis:\n")
	b.WriteString(r.ExplanatoryNote)

	if r.AlternativeApproach != "" {
		b.WriteString("\n\nAlternative Consideration:\n")
		b.WriteString(r.AlternativeApproach)
	}

	return b.String()
}

// Paragraph is one block of a narrative. Heading is set for section blocks.
type Paragraph struct {
	Heading string
	Body    string
}

var narrativeHeadings = []string{
	"Legal Framework Analysis:",
	"Detailed Analysis:",
	"Alternative Consideration:",
}

// Paragraphs splits Narrative into blocks, separating section headings from
// their first line of content.
func (r Recommendation) Paragraphs() []Paragraph {
	blocks := strings.Split(r.Narrative(), "\n\n")
	out := make([]Paragraph, 0, len(blocks))
	for _, block := range blocks {
		head, body, found := strings.Cut(block, "\n")
		if found && slices.Contains(narrativeHeadings, head) {
			out = append(out, Paragraph{Heading: strings.TrimSuffix(head, ":"), Body: body})
			continue
		}
		out = append(out, Paragraph{Body: block})
	}
	return out
}

// Analysis is the literal comparison and assessment content shown for every
// case.
type Analysis struct {
	Left           ComparisonDocument
	Right          ComparisonDocument
	KeyDifferences []string
	AI             AIAnalysis
	Impact         ImpactAnalysis
	Recommendation Recommendation
}

// Detail is a case composed with its comparison and assessment content.
type Detail struct {
	Case           Case
	Left           ComparisonDocument
	Right          ComparisonDocument
	KeyDifferences []string
	AI             AIAnalysis
	Impact         ImpactAnalysis
	Recommendation Recommendation
}

// Compose builds the detail of c from a. The left panel takes the case's
// first document id and the right panel its second, or the first again for
// a single-document case. Risk percentages are clamped.
func Compose(c Case, a Analysis) Detail {
	left := cloneDocument(a.Left)
	right := cloneDocument(a.Right)

	if len(c.DocumentIDs) > 0 {
		left.ID = c.DocumentIDs[0]
		right.ID = c.DocumentIDs[0]
	}
	if len(c.DocumentIDs) > 1 {
		right.ID = c.DocumentIDs[1]
	}

	impact := a.Impact
	impact.RiskAssessment = impact.RiskAssessment.Clamped()

	return Detail{
		Case:           c,
		Left:           left,
		Right:          right,
		KeyDifferences: slices.Clone(a.KeyDifferences),
		AI:             a.AI,
		Impact:         impact,
		Recommendation: a.Recommendation,
	}
}

func cloneDocument(d ComparisonDocument) ComparisonDocument {
	d.Articles = slices.Clone(d.Articles)
	d.FlaggedArticles = slices.Clone(d.FlaggedArticles)
	return d
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
