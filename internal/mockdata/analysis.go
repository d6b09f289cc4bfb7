package mockdata

import "github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"

// Analysis returns the comparison, AI assessment, impact assessment, and
// recommendation rendered for every case. The content is literal: it
// describes the registration deadline conflict between Law 7/2014 and
// Law 9/2002 regardless of which documents a case names.
func Analysis() cases.Analysis {
	return cases.Analysis{
		Left: cases.ComparisonDocument{
			LawNumber:    "7",
			Year:         2014,
			Title:        "Commercial Companies Law",
			Jurisdiction: "Federal",
			Articles: []cases.Article{
				{
					ID:            "7-2014-15",
					ArticleNumber: "15",
					ClauseText:    "Any company wishing to engage in commercial activities must register with the Ministry of Commerce and Industry within thirty days of its establishment. Failure to register within this period shall result in administrative penalties.",
					EffectiveDate: "2014-07-01",
					Version:       "1",
				},
				{
					ID:            "7-2014-16",
					ArticleNumber: "16",
					ClauseText:    "The registration process shall include submission of articles of association, proof of capital deposit, and identification documents of all founding members.",
					EffectiveDate: "2014-07-01",
					Version:       "1",
				},
				{
					ID:            "7-2014-17",
					ArticleNumber: "17",
					ClauseText:    "Upon successful registration, the company shall receive a commercial registration certificate valid for one year, renewable annually.",
					EffectiveDate: "2014-07-01",
					Version:       "1",
				},
			},
			FlaggedArticles: []string{"7-2014-15"},
		},
		Right: cases.ComparisonDocument{
			LawNumber:    "9",
			Year:         2002,
			Title:        "Business Registration Act",
			Jurisdiction: "Federal",
			Articles: []cases.Article{
				{
					ID:            "9-2002-22",
					ArticleNumber: "22",
					ClauseText:    "All commercial entities must complete registration procedures within sixty days of commencement of operations. Registration may be completed at any authorized registration office.",
					EffectiveDate: "2002-03-15",
					Version:       "2",
				},
				{
					ID:            "9-2002-23",
					ArticleNumber: "23",
					ClauseText:    "The registration fee shall be determined based on the capital and type of commercial activity.",
					EffectiveDate: "2002-03-15",
					Version:       "2",
				},
				{
					ID:            "9-2002-24",
					ArticleNumber: "24",
					ClauseText:    "Entities operating without proper registration shall be subject to fines not exceeding 50,000 Riyals.",
					EffectiveDate: "2002-03-15",
					Version:       "2",
				},
			},
			FlaggedArticles: []string{"9-2002-22"},
		},
		KeyDifferences: []string{
			"Registration timeframe: 30 days (Law 7/2014) vs. 60 days (Law 9/2002)",
			"Penalty specification differs between laws",
			"Temporal precedence: Law 7/2014 is more recent",
		},
		AI: cases.AIAnalysis{
			DetectionMethod:      "Semantic similarity with rule-based deadline extraction",
			Confidence:           87,
			TextSimilarity:       72,
			SemanticOverlap:      89,
			LogicalInconsistency: true,
			KeyFindings: []string{
				"Conflicting deadlines: Article 15 requires registration within thirty days while Article 22 allows sixty days",
				"Shared scope: Both provisions govern registration of commercial entities with the same ministry",
				"Divergent sanctions: Law 7/2014 imposes administrative penalties while Law 9/2002 sets fines up to 50,000 Riyals",
				"Temporal precedence: Law 7/2014 was enacted twelve years after Law 9/2002",
			},
			LegalPrinciples: []string{
				"Lex posterior derogat priori",
				"Lex specialis derogat generali",
				"Legal certainty",
			},
		},
		Impact: cases.ImpactAnalysis{
			AffectedAgencies: []cases.Agency{
				{Name: "Ministry of Commerce and Industry", Role: "Registration authority", Impact: cases.SeverityHigh},
				{Name: "Ministry of Justice", Role: "Legislative review", Impact: cases.SeverityMedium},
				{Name: "General Tax Authority", Role: "Taxpayer registration", Impact: cases.SeverityLow},
			},
			AffectedStakeholders: []cases.Stakeholder{
				{Category: "New companies", Description: "Face two registration deadlines for the same obligation", ImpactLevel: cases.SeverityHigh},
				{Category: "Legal practitioners", Description: "Must advise clients under inconsistent regimes", ImpactLevel: cases.SeverityMedium},
				{Category: "Foreign investors", Description: "Receive conflicting guidance on market entry timelines", ImpactLevel: cases.SeverityMedium},
			},
			Consequences: []cases.Consequence{
				{Type: cases.ConsequenceCompliance, Description: "Companies registering between day 31 and day 60 comply with one law while breaching the other", Severity: cases.SeverityHigh},
				{Type: cases.ConsequenceLitigation, Description: "Penalties imposed after day 30 may be challenged by citing the sixty-day period", Severity: cases.SeverityMedium},
				{Type: cases.ConsequenceFinancial, Description: "Sanctions for the same delay range from administrative penalties to fines of 50,000 Riyals", Severity: cases.SeverityMedium},
				{Type: cases.ConsequenceOperational, Description: "Registration offices apply different deadlines to comparable applications", Severity: cases.SeverityLow},
			},
			RiskAssessment: cases.RiskAssessment{
				ComplianceRisk:  78,
				LitigationRisk:  64,
				OperationalRisk: 45,
			},
		},
		Recommendation: cases.Recommendation{
			ApplicableLaw: cases.ApplicableLaw{
				LawNumber: "7",
				Year:      2014,
				Title:     "Commercial Companies Law",
				Articles:  []string{"Article 15", "Article 16", "Article 17"},
				Rationale: "Law 7/2014 is the later enactment and regulates company registration specifically, so its thirty-day period should govern companies in place of the general sixty-day period in Law 9/2002.",
			},
			LegalBasis: []cases.LegalBasis{
				{Principle: "Lex posterior derogat priori", Description: "A later law prevails over an earlier law of equal rank to the extent that the two conflict."},
				{Principle: "Lex specialis derogat generali", Description: "A provision addressed to companies prevails over a provision addressed to commercial entities in general."},
				{Principle: "Legal certainty", Description: "Persons subject to the law must be able to determine a single applicable deadline in advance."},
			},
			ExplanatoryNote: "Article 15 of Law 7/2014 and Article 22 of Law 9/2002 impose the same registration obligation with different deadlines. Law 7/2014 does not expressly repeal Article 22, which leaves registration offices and companies without a clear rule for the period between day 31 and day 60. Reading the later and more specific law as controlling resolves the conflict for companies while leaving Article 22 in force for other commercial entities.",
			ImplementationSteps: []string{
				"Issue a ministerial circular confirming the thirty-day registration period for companies",
				"Amend Article 22 of Law 9/2002 to exclude companies governed by Law 7/2014",
				"Update registration office procedures and published guidance",
				"Align the penalty provisions of Article 24 of Law 9/2002 with Law 7/2014",
			},
			AlternativeApproach: "If the legislature intends a single period for all commercial entities, Article 15 of Law 7/2014 could instead be amended to adopt the sixty-day period, with the penalty provisions harmonized in the same amendment.",
		},
	}
}
