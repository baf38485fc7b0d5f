// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

import "testing"

func TestImageSubrangeIntersect(t *testing.T) {
	tests := []struct {
		name    string
		a, b    ImageSubrange
		wantOK  bool
		wantLvl uint32
	}{
		{
			name:    "full overlap",
			a:       AllSubrange(),
			b:       ImageSubrange{BaseLevel: 2, LevelCount: 1, BaseLayer: 0, LayerCount: RemainingArrayLayers},
			wantOK:  true,
			wantLvl: 2,
		},
		{
			name:   "disjoint levels",
			a:      ImageSubrange{BaseLevel: 0, LevelCount: 2, BaseLayer: 0, LayerCount: 1},
			b:      ImageSubrange{BaseLevel: 4, LevelCount: 2, BaseLayer: 0, LayerCount: 1},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.BaseLevel != tt.wantLvl {
				t.Errorf("Intersect() BaseLevel = %d, want %d", got.BaseLevel, tt.wantLvl)
			}
		})
	}
}

func TestImageSubrangeContains(t *testing.T) {
	outer := AllSubrange()
	inner := ImageSubrange{BaseLevel: 1, LevelCount: 1, BaseLayer: 0, LayerCount: 1}
	if !outer.Contains(inner) {
		t.Error("expected the unrestricted range to contain any sub-range")
	}
	if inner.Contains(outer) {
		t.Error("did not expect a narrow range to contain the unrestricted range")
	}
}

func TestMultiSubrangeDifference(t *testing.T) {
	whole := AllMultiSubrange()
	hole := SingleMultiSubrange(ImageSubrange{BaseLevel: 0, LevelCount: 1, BaseLayer: 0, LayerCount: RemainingArrayLayers})

	remainder := whole.Difference(hole)
	if remainder.Empty() {
		t.Fatal("expected a non-empty remainder after removing a single level from an unrestricted range")
	}
	for _, r := range remainder.Ranges {
		if r.BaseLevel == 0 && r.LevelCount != 0 {
			t.Errorf("remainder still covers the removed level: %+v", r)
		}
	}
}

func TestMultiSubrangeDifferenceFullyCovers(t *testing.T) {
	r := SingleMultiSubrange(ImageSubrange{BaseLevel: 0, LevelCount: 4, BaseLayer: 0, LayerCount: 1})
	same := SingleMultiSubrange(ImageSubrange{BaseLevel: 0, LevelCount: 4, BaseLayer: 0, LayerCount: 1})

	remainder := r.Difference(same)
	if !remainder.Empty() {
		t.Errorf("expected empty remainder, got %+v", remainder.Ranges)
	}
}

func TestMultiSubrangeIntersect(t *testing.T) {
	a := SingleMultiSubrange(ImageSubrange{BaseLevel: 0, LevelCount: 4, BaseLayer: 0, LayerCount: 1})
	b := ImageSubrange{BaseLevel: 2, LevelCount: 4, BaseLayer: 0, LayerCount: 1}

	got := a.Intersect(b)
	if got.Empty() {
		t.Fatal("expected a non-empty intersection")
	}
	if got.Ranges[0].BaseLevel != 2 || got.Ranges[0].LevelCount != 2 {
		t.Errorf("Intersect() = %+v, want BaseLevel=2 LevelCount=2", got.Ranges[0])
	}
}
