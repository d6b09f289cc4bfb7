package mockdata

// SubjectConflicts counts the open conflicts within one subject category.
type SubjectConflicts struct {
	SubjectID string `json:"subject_id"`
	Conflicts int    `json:"conflicts"`
}

// DashboardStats are the headline figures on the dashboard.
type DashboardStats struct {
	TotalDocuments     int                `json:"total_documents"`
	FlaggedCases       int                `json:"flagged_cases"`
	ValidatedThisMonth int                `json:"validated_this_month"`
	AvgProcessingDays  float64            `json:"avg_processing_days"`
	TopSubjects        []SubjectConflicts `json:"top_subjects"`
}

// ConflictShare returns the conflicts of subject i as a percentage of the
// leading subject, which is always 100.
func (s DashboardStats) ConflictShare(i int) int {
	if i < 0 || i >= len(s.TopSubjects) || s.TopSubjects[0].Conflicts == 0 {
		return 0
	}
	return s.TopSubjects[i].Conflicts * 100 / s.TopSubjects[0].Conflicts
}

// Stats returns the dashboard statistics, ordered by conflict count.
func Stats() DashboardStats {
	return DashboardStats{
		TotalDocuments:     1247,
		FlaggedCases:       89,
		ValidatedThisMonth: 23,
		AvgProcessingDays:  4.5,
		TopSubjects: []SubjectConflicts{
			{SubjectID: "1", Conflicts: 34},
			{SubjectID: "2", Conflicts: 28},
			{SubjectID: "3", Conflicts: 15},
			{SubjectID: "5", Conflicts: 8},
			{SubjectID: "4", Conflicts: 4},
		},
	}
}
