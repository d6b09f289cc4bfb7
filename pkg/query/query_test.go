package query_test

import (
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/query"
)

func commentProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "case_comments", "c").
		Project("id", "ID").
		Project("case_id", "CaseID").
		Project("created_at", "Timestamp")
}

func TestBuildWithoutConditions(t *testing.T) {
	sql, args := query.NewBuilder(commentProjection()).Build()

	want := "SELECT c.id, c.case_id, c.created_at FROM public.case_comments c"
	if sql != want {
		t.Errorf("sql:\n got %q\nwant %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildWithConditionsAndSort(t *testing.T) {
	caseID := "1"
	sql, args := query.
		NewBuilder(commentProjection(), query.SortField{Field: "Timestamp"}, query.SortField{Field: "ID", Descending: true}).
		WhereEquals("CaseID", &caseID).
		WhereEquals("ID", "c-7").
		Build()

	want := "SELECT c.id, c.case_id, c.created_at FROM public.case_comments c" +
		" WHERE c.case_id = $1 AND c.id = $2 ORDER BY c.created_at ASC, c.id DESC"
	if sql != want {
		t.Errorf("sql:\n got %q\nwant %q", sql, want)
	}
	if len(args) != 2 || args[1] != "c-7" {
		t.Errorf("args = %v", args)
	}
}

func TestWhereEqualsSkipsNil(t *testing.T) {
	var missing *string
	sql, args := query.NewBuilder(commentProjection()).WhereEquals("CaseID", missing).BuildCount()

	want := "SELECT COUNT(*) FROM public.case_comments c"
	if sql != want {
		t.Errorf("sql:\n got %q\nwant %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestColumnFallsBackToInput(t *testing.T) {
	p := commentProjection()
	if got := p.Column("Unknown"); got != "Unknown" {
		t.Errorf("Column(Unknown) = %q", got)
	}
	if got := p.Column("CaseID"); got != "c.case_id" {
		t.Errorf("Column(CaseID) = %q", got)
	}
}
