package iheap

import (
	"errors"
	"testing"
)

func TestMerge(t *testing.T) {
	intCmp := func(a, b int) bool { return a < b }
	tests := []struct {
		name   string
		inputs [][]int
		want   []int
	}{
		{
			name:   "disjoint runs",
			inputs: [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:   "uneven lengths",
			inputs: [][]int{{1, 2, 3, 4, 5}, {6}, {}},
			want:   []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:   "duplicates across inputs",
			inputs: [][]int{{1, 3, 3}, {3, 5}, {2, 3}},
			want:   []int{1, 2, 3, 3, 3, 3, 5},
		},
		{
			name:   "single input",
			inputs: [][]int{{2, 4, 6}},
			want:   []int{2, 4, 6},
		},
		{
			name:   "all empty",
			inputs: [][]int{{}, {}, {}},
			want:   nil,
		},
		{
			name:   "no inputs",
			inputs: nil,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make([]Source[int], 0, len(tt.inputs))
			for _, in := range tt.inputs {
				sources = append(sources, SliceSource(in))
			}
			got := Merge(intCmp, sources...)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("at %d: got %v, want %v", i, got, tt.want)
				}
			}
		})
	}
}

func TestMergeToStrings(t *testing.T) {
	var out []string
	err := MergeTo(func(s string) error {
		out = append(out, s)
		return nil
	}, func(a, b string) bool { return a < b },
		SliceSource([]string{"ant", "cat", "owl"}),
		SliceSource([]string{"bee", "dog"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ant", "bee", "cat", "dog", "owl"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v, want %v", out, want)
		}
	}
}

func TestMergeToEmitError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	err := MergeTo(func(int) error {
		n++
		if n == 3 {
			return boom
		}
		return nil
	}, func(a, b int) bool { return a < b },
		SliceSource([]int{1, 3, 5}),
		SliceSource([]int{2, 4, 6}),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if n != 3 {
		t.Fatalf("emit called %d times, want 3", n)
	}
}
