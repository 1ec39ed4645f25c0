package hwy

import "testing"

func TestFirstN(t *testing.T) {
	for count := -1; count <= 5; count++ {
		m := FirstN(count)
		want := max(0, min(count, MaxLanes))
		if got := m.CountTrue(); got != want {
			t.Errorf("FirstN(%d).CountTrue() = %d, want %d", count, got, want)
		}
		for i := range MaxLanes {
			if m.GetBit(i) != (i < want) {
				t.Errorf("FirstN(%d) lane %d = %v", count, i, m.GetBit(i))
			}
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		wantFull  []int
		wantTail  int
		wantCount int
	}{
		{0, nil, -1, 0},
		{3, nil, 0, 3},
		{4, []int{0}, -1, 0},
		{9, []int{0, 4}, 8, 1},
		{16, []int{0, 4, 8, 12}, -1, 0},
	}

	for _, tt := range tests {
		var full []int
		tailOffset, tailCount := -1, 0
		ProcessWithTail(tt.size,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tailOffset, tailCount = offset, count },
		)
		if len(full) != len(tt.wantFull) {
			t.Errorf("size %d: full offsets %v, want %v", tt.size, full, tt.wantFull)
			continue
		}
		for i := range full {
			if full[i] != tt.wantFull[i] {
				t.Errorf("size %d: full offsets %v, want %v", tt.size, full, tt.wantFull)
			}
		}
		if tailOffset != tt.wantTail || tailCount != tt.wantCount {
			t.Errorf("size %d: tail (%d, %d), want (%d, %d)", tt.size, tailOffset, tailCount, tt.wantTail, tt.wantCount)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	cases := map[int]int{0: 0, 1: 4, 3: 4, 4: 4, 5: 8, 16: 16, 17: 20}
	for in, want := range cases {
		if got := AlignedSize(in); got != want {
			t.Errorf("AlignedSize(%d) = %d, want %d", in, got, want)
		}
		if IsLaneMultiple(in) != (in == want) {
			t.Errorf("IsLaneMultiple(%d) = %v", in, IsLaneMultiple(in))
		}
	}
}
