package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of three", 25, 1, 10, 3, true, false},
		{"middle page", 25, 2, 10, 3, true, true},
		{"last page", 25, 3, 10, 3, false, true},
		{"exact fit", 20, 2, 10, 2, false, true},
		{"empty still reports one page", 0, 1, 10, 1, false, false},
		{"single page", 5, 1, 10, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext || p.HasPrev != tt.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tt.wantNext, tt.wantPrev)
			}
		})
	}
}
