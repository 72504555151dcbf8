package domain

import (
	"reflect"
	"testing"
)

func TestCountThrees(t *testing.T) {
	tests := []struct {
		name    string
		cells   []placement
		neutral Color
		want    map[Color]int
	}{
		{
			name: "empty board",
			want: map[Color]int{Red: 0, Blue: 0, Green: 0, Yellow: 0},
		},
		{
			name:  "single horizontal three",
			cells: line(5, 4, 0, 1, 3, Red),
			want:  map[Color]int{Red: 1, Blue: 0, Green: 0, Yellow: 0},
		},
		{
			name:  "run of five counts three windows",
			cells: line(5, 3, 0, 1, 5, Blue),
			want:  map[Color]int{Red: 0, Blue: 3, Green: 0, Yellow: 0},
		},
		{
			name:  "vertical and diagonal",
			cells: append(line(1, 1, 1, 0, 3, Green), line(6, 8, 1, -1, 4, Yellow)...),
			want:  map[Color]int{Red: 0, Blue: 0, Green: 1, Yellow: 2},
		},
		{
			name:    "neutral color excluded",
			cells:   append(line(5, 4, 0, 1, 3, Yellow), line(7, 4, 0, 1, 3, Red)...),
			neutral: Yellow,
			want:    map[Color]int{Red: 1, Blue: 0, Green: 0},
		},
		{
			name:  "pair does not count",
			cells: line(5, 5, 0, 1, 2, Red),
			want:  map[Color]int{Red: 0, Blue: 0, Green: 0, Yellow: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountThrees(boardWith(tt.cells...), tt.neutral)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CountThrees() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMostThrees(t *testing.T) {
	tests := []struct {
		name     string
		counts   map[Color]int
		want     Color
		wantTied []Color
	}{
		{name: "clear leader", counts: map[Color]int{Red: 1, Blue: 3, Green: 0}, want: Blue},
		{name: "two-way tie", counts: map[Color]int{Red: 2, Blue: 2, Green: 1}, want: ColorNone, wantTied: []Color{Red, Blue}},
		{name: "all zero", counts: map[Color]int{Red: 0, Green: 0}, want: ColorNone, wantTied: []Color{Red, Green}},
		{name: "single color", counts: map[Color]int{Yellow: 0}, want: Yellow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tied := MostThrees(tt.counts)
			if got != tt.want || !reflect.DeepEqual(tied, tt.wantTied) {
				t.Fatalf("MostThrees() = %v, %v; want %v, %v", got, tied, tt.want, tt.wantTied)
			}
		})
	}
}
