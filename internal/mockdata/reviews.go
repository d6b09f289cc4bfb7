package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/reviews"
)

// auditNamespace scopes the deterministic ids of seeded audit entries so
// that seeding a persistent journal twice inserts nothing new.
var auditNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://justice.gov.qa/law-harmony/audit"))

// SeedComment is the analyst annotation every case starts with.
func SeedComment(caseID string) reviews.Comment {
	return reviews.Comment{
		ID:        "1",
		CaseID:    caseID,
		Author:    "Ahmed Al-Mansoori",
		Role:      "Legal Analyst",
		Text:      "Initial review shows clear contradiction between Article 15 and Article 22. The temporal precedence suggests Law 7/2014 should take priority.",
		Timestamp: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
	}
}

// ReviewSeed returns the initial journal for items: the seed comment plus
// audit entries for flagging, assignment, and validation.
func ReviewSeed(items []cases.Case) reviews.Seed {
	var seed reviews.Seed
	for _, c := range items {
		seed.Comments = append(seed.Comments, SeedComment(c.ID))

		seed.Audit = append(seed.Audit, auditEntry(c.ID, c.FlaggedBy, reviews.ActionCreated, c.FlaggedDate,
			"Flagged as "+string(c.CaseType)))

		if c.AssignedTo != "" {
			seed.Audit = append(seed.Audit, auditEntry(c.ID, "System", reviews.ActionAssigned, c.FlaggedDate,
				"Assigned to reviewer #"+c.AssignedTo))
		}

		if c.Validated() && c.ValidationDate != nil {
			seed.Audit = append(seed.Audit, auditEntry(c.ID, "User #"+c.ValidatedBy, reviews.ActionValidated, *c.ValidationDate, ""))
		}
	}
	return seed
}

func auditEntry(caseID, user string, action reviews.Action, at time.Time, details string) reviews.AuditEntry {
	key := caseID + "/" + string(action)
	return reviews.AuditEntry{
		ID:        uuid.NewSHA1(auditNamespace, []byte(key)).String(),
		CaseID:    caseID,
		UserName:  user,
		Action:    action,
		Timestamp: at,
		Details:   details,
	}
}
