package pagination_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

func defaultConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := pagination.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 10 {
		t.Errorf("DefaultPageSize = %d, want 10", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "25")
	t.Setenv("TEST_MAX_PAGE", "50")

	cfg := pagination.Config{}
	err := cfg.Finalize(&pagination.ConfigEnv{
		DefaultPageSize: "TEST_PAGE_SIZE",
		MaxPageSize:     "TEST_MAX_PAGE",
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 25 || cfg.MaxPageSize != 50 {
		t.Errorf("got %d/%d, want 25/50", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
}

func TestConfigFinalizeRejectsDefaultAboveMax(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	err := cfg.Finalize(nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "cannot exceed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values get defaults", pagination.PageRequest{}, 1, 10},
		{"negative page corrected", pagination.PageRequest{Page: -3, PageSize: 5}, 1, 5},
		{"page size clamped", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(defaultConfig())
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{"page": {"3"}, "page_size": {"15"}, "search": {"law"}}
	req := pagination.PageRequestFromQuery(values, defaultConfig())

	if req.Page != 3 || req.PageSize != 15 {
		t.Errorf("got page %d size %d, want 3/15", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "law" {
		t.Errorf("Search = %v, want law", req.Search)
	}
	if req.Offset() != 30 {
		t.Errorf("Offset() = %d, want 30", req.Offset())
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		wantFirst int
		wantLen   int
	}{
		{"first page", 1, 0, 10},
		{"second page", 2, 10, 10},
		{"partial last page", 3, 20, 3},
		{"past the end", 4, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.Paginate(items, tt.page, 10)

			if len(result.Data) != tt.wantLen {
				t.Fatalf("len(Data) = %d, want %d", len(result.Data), tt.wantLen)
			}
			if tt.wantLen > 0 && result.Data[0] != tt.wantFirst {
				t.Errorf("Data[0] = %d, want %d", result.Data[0], tt.wantFirst)
			}
			if result.Total != 23 || result.TotalPages != 3 {
				t.Errorf("Total/TotalPages = %d/%d, want 23/3", result.Total, result.TotalPages)
			}
			if result.Page != tt.page {
				t.Errorf("Page = %d, want %d", result.Page, tt.page)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	result := pagination.Paginate([]string{}, 1, 10)

	if result.Data == nil || len(result.Data) != 0 {
		t.Errorf("Data = %v, want empty non-nil slice", result.Data)
	}
	if result.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", result.TotalPages)
	}
	if result.HasNext() || result.HasPrevious() {
		t.Error("empty result should have no neighbours")
	}
}

func TestConfigFinalizeRejectsMalformedEnv(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "ten")

	cfg := pagination.Config{}
	err := cfg.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"})
	if err == nil || !strings.Contains(err.Error(), "TEST_PAGE_SIZE") {
		t.Errorf("expected env parse error, got %v", err)
	}
}
