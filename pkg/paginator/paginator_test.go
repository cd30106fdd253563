package paginator

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{75, 25, 3},
		{76, 25, 4},
		{9, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		page       int
		totalPages int
		want       int
	}{
		{0, 3, 1},
		{-5, 3, 1},
		{1, 3, 1},
		{3, 3, 3},
		{9999, 3, 3},
		{2, 1, 1},
	}
	for _, tc := range cases {
		if got := Clamp(tc.page, tc.totalPages); got != tc.want {
			t.Fatalf("Clamp(%d, %d) = %d, want %d", tc.page, tc.totalPages, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	p := New([]int{1, 2, 3}, 2, 3, 7)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if !p.HasPrev || !p.HasNext {
		t.Fatalf("page 2 of 3 should have prev and next")
	}

	empty := New[int](nil, 1, 25, 0)
	if empty.Items == nil || len(empty.Items) != 0 {
		t.Fatalf("nil items should become empty slice")
	}
	if empty.TotalPages != 1 {
		t.Fatalf("empty result set should still be one page, got %d", empty.TotalPages)
	}
}
