// Package mockdata holds the static catalog the dashboard serves: users,
// subjects, documents, cases, dashboard statistics, and the literal
// analysis content shown on every case detail page.
package mockdata

import (
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/documents"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/users"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// Users returns the catalog accounts.
func Users() []users.User {
	return []users.User{
		{
			ID:        "1",
			Name:      "أحمد محمد",
			Email:     "ahmed.mohammed@justice.gov.qa",
			Role:      users.RoleAdmin,
			Status:    users.StatusActive,
			CreatedAt: date(2024, time.January, 15),
			LastLogin: ptr(date(2025, time.November, 3)),
		},
		{
			ID:        "2",
			Name:      "فاطمة علي",
			Email:     "fatima.ali@justice.gov.qa",
			Role:      users.RoleLegalAnalyst,
			Status:    users.StatusActive,
			CreatedAt: date(2024, time.February, 20),
			LastLogin: ptr(date(2025, time.November, 2)),
		},
		{
			ID:        "3",
			Name:      "خالد حسن",
			Email:     "khaled.hassan@justice.gov.qa",
			Role:      users.RoleReviewer,
			Status:    users.StatusActive,
			CreatedAt: date(2024, time.March, 10),
			LastLogin: ptr(date(2025, time.November, 1)),
		},
	}
}

// Subjects returns the subject taxonomy.
func Subjects() []subjects.Subject {
	return []subjects.Subject{
		{ID: "1", NameAr: "التشريعات المدنية", NameEn: "Civil Legislation", Description: "Laws related to civil matters", Color: "#3B82F6"},
		{ID: "2", NameAr: "التشريعات الجنائية", NameEn: "Criminal Legislation", Description: "Laws related to criminal matters", Color: "#EF4444"},
		{ID: "3", NameAr: "التشريعات الاقتصادية", NameEn: "Economic Legislation", Description: "Laws related to economic matters", Color: "#10B981"},
		{ID: "4", NameAr: "التشريعات الإدارية", NameEn: "Administrative Legislation", Description: "Laws related to administrative matters", Color: "#F59E0B"},
		{ID: "5", NameAr: "التشريعات العمالية", NameEn: "Labor Legislation", Description: "Laws related to labor and employment", Color: "#8B5CF6"},
	}
}

// Documents returns the law catalog.
func Documents() []documents.Document {
	return []documents.Document{
		{
			ID:           "1",
			LawNumber:    "قانون رقم 11",
			Year:         2004,
			Jurisdiction: "قطر",
			TitleAr:      "قانون المرافعات المدنية والتجارية",
			TitleEn:      "Civil and Commercial Procedures Law",
			Version:      1,
			UploadedBy:   "2",
			UploadDate:   date(2025, time.October, 15),
			SubjectID:    "1",
			FilePath:     "/documents/law-11-2004.pdf",
			Status:       documents.StatusActive,
			ArticleCount: ptr(456),
		},
		{
			ID:           "2",
			LawNumber:    "قانون رقم 14",
			Year:         2014,
			Jurisdiction: "قطر",
			TitleAr:      "قانون العمل",
			TitleEn:      "Labor Law",
			Version:      2,
			UploadedBy:   "2",
			UploadDate:   date(2025, time.October, 20),
			SubjectID:    "5",
			FilePath:     "/documents/law-14-2014.pdf",
			Status:       documents.StatusActive,
			ArticleCount: ptr(123),
		},
		{
			ID:           "3",
			LawNumber:    "قانون رقم 27",
			Year:         2006,
			Jurisdiction: "قطر",
			TitleAr:      "قانون التجارة",
			TitleEn:      "Commercial Law",
			Version:      1,
			UploadedBy:   "2",
			UploadDate:   date(2025, time.October, 25),
			SubjectID:    "3",
			FilePath:     "/documents/law-27-2006.pdf",
			Status:       documents.StatusActive,
			ArticleCount: ptr(789),
		},
	}
}

// Cases returns the flagged cases.
func Cases() []cases.Case {
	return []cases.Case{
		{
			ID:                 "1",
			DocumentIDs:        []string{"1", "2"},
			CaseType:           cases.TypeContradiction,
			FlaggedBy:          "AI System",
			FlaggedDate:        date(2025, time.October, 28),
			Status:             cases.StatusNew,
			AssignedTo:         "3",
			Severity:           cases.SeverityHigh,
			RecommendationText: "Review contradiction between civil procedures and labor law regarding notice periods.",
		},
		{
			ID:          "2",
			DocumentIDs: []string{"2", "3"},
			CaseType:    cases.TypeOverlap,
			FlaggedBy:   "AI System",
			FlaggedDate: date(2025, time.October, 29),
			Status:      cases.StatusUnderReview,
			AssignedTo:  "3",
			Severity:    cases.SeverityMedium,
		},
		{
			ID:             "3",
			DocumentIDs:    []string{"1"},
			CaseType:       cases.TypeGap,
			FlaggedBy:      "AI System",
			FlaggedDate:    date(2025, time.October, 30),
			Status:         cases.StatusValidated,
			AssignedTo:     "3",
			ValidatedBy:    "1",
			ValidationDate: ptr(date(2025, time.November, 2)),
			Severity:       cases.SeverityLow,
		},
	}
}
