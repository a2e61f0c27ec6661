package service

import "testing"

func TestComputePagination(t *testing.T) {
	cases := []struct {
		name        string
		page, size  int
		total       int64
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"first of three", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last of three", 3, 10, 25, 3, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"empty set still has one page", 1, 10, 0, 1, false, false},
		{"single item", 1, 1, 1, 1, false, false},
		{"page beyond total", 5, 10, 25, 3, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := ComputePagination(tc.page, tc.size, tc.total)
			if meta.TotalPages != tc.wantPages {
				t.Fatalf("total_pages: want %d, got %d", tc.wantPages, meta.TotalPages)
			}
			if meta.HasNext != tc.wantNext {
				t.Fatalf("has_next: want %v, got %v", tc.wantNext, meta.HasNext)
			}
			if meta.HasPrevious != tc.wantPrev {
				t.Fatalf("has_previous: want %v, got %v", tc.wantPrev, meta.HasPrevious)
			}
			if meta.Page != tc.page || meta.PageSize != tc.size || meta.TotalItems != tc.total {
				t.Fatalf("echoed inputs mangled: %+v", meta)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	if got := pageOffset(1, 10); got != 0 {
		t.Fatalf("page 1 offset: want 0, got %d", got)
	}
	if got := pageOffset(3, 10); got != 20 {
		t.Fatalf("page 3 offset: want 20, got %d", got)
	}
	if got := pageOffset(2, 7); got != 7 {
		t.Fatalf("page 2 size 7 offset: want 7, got %d", got)
	}
}
