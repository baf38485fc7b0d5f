// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// ImageSubrange is a mip/layer range within an image, used by SLICE to
// describe which portion of an image it peels off and by the SSA rewrite
// (link.walkWrites) to decide whether a requested write range is fully
// contained in, disjoint from, or straddles an existing split.
type ImageSubrange struct {
	BaseLevel  uint32
	LevelCount uint32
	BaseLayer  uint32
	LayerCount uint32
}

// AllSubrange is the unrestricted range: every level, every layer.
func AllSubrange() ImageSubrange {
	return ImageSubrange{
		BaseLevel:  0,
		LevelCount: RemainingMipLevels,
		BaseLayer:  0,
		LayerCount: RemainingArrayLayers,
	}
}

func (r ImageSubrange) levelEnd() uint64 {
	if r.LevelCount == RemainingMipLevels {
		return 1 << 32
	}
	return uint64(r.BaseLevel) + uint64(r.LevelCount)
}

func (r ImageSubrange) layerEnd() uint64 {
	if r.LayerCount == RemainingArrayLayers {
		return 1 << 32
	}
	return uint64(r.BaseLayer) + uint64(r.LayerCount)
}

func (r ImageSubrange) empty() bool {
	return r.LevelCount == 0 || r.LayerCount == 0
}

// Intersect returns the range covered by both r and o, and whether that
// intersection is non-empty.
func (r ImageSubrange) Intersect(o ImageSubrange) (ImageSubrange, bool) {
	lvlLo := max32(r.BaseLevel, o.BaseLevel)
	lvlHi := minU64(r.levelEnd(), o.levelEnd())
	layLo := max32(r.BaseLayer, o.BaseLayer)
	layHi := minU64(r.layerEnd(), o.layerEnd())

	if uint64(lvlLo) >= lvlHi || uint64(layLo) >= layHi {
		return ImageSubrange{}, false
	}

	out := ImageSubrange{BaseLevel: lvlLo, BaseLayer: layLo}
	if lvlHi >= (1 << 32) {
		out.LevelCount = RemainingMipLevels
	} else {
		out.LevelCount = uint32(lvlHi) - lvlLo
	}
	if layHi >= (1 << 32) {
		out.LayerCount = RemainingArrayLayers
	} else {
		out.LayerCount = uint32(layHi) - layLo
	}
	return out, true
}

// Contains reports whether o is fully contained in r.
func (r ImageSubrange) Contains(o ImageSubrange) bool {
	isect, ok := r.Intersect(o)
	if !ok {
		return o.empty()
	}
	return isect.BaseLevel == o.BaseLevel && isect.BaseLayer == o.BaseLayer &&
		isect.LevelCount == o.LevelCount && isect.LayerCount == o.LayerCount
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// MultiSubrange is a set of disjoint ImageSubranges, supporting the
// intersect/difference operations link.walkWrites needs to track how much
// of a requested write range remains unresolved as it descends through
// SLICE splits. An empty MultiSubrange (zero-length Ranges) means "no
// range at all"; use AllMultiSubrange for "unrestricted".
type MultiSubrange struct {
	Ranges []ImageSubrange
}

// AllMultiSubrange is the unrestricted multi-range: the entire resource.
func AllMultiSubrange() MultiSubrange {
	return MultiSubrange{Ranges: []ImageSubrange{AllSubrange()}}
}

// SingleMultiSubrange wraps a single ImageSubrange.
func SingleMultiSubrange(r ImageSubrange) MultiSubrange {
	return MultiSubrange{Ranges: []ImageSubrange{r}}
}

// Empty reports whether m covers nothing.
func (m MultiSubrange) Empty() bool {
	return len(m.Ranges) == 0
}

// Intersect returns the portion of m covered by r.
func (m MultiSubrange) Intersect(r ImageSubrange) MultiSubrange {
	var out []ImageSubrange
	for _, rng := range m.Ranges {
		if isect, ok := rng.Intersect(r); ok {
			out = append(out, isect)
		}
	}
	return MultiSubrange{Ranges: out}
}

// Difference returns the portion of m not covered by o.
func (m MultiSubrange) Difference(o MultiSubrange) MultiSubrange {
	result := m.Ranges
	for _, sub := range o.Ranges {
		var next []ImageSubrange
		for _, rng := range result {
			next = append(next, subtractRange(rng, sub)...)
		}
		result = next
	}
	return MultiSubrange{Ranges: result}
}

// subtractRange removes sub from rng, splitting along the level axis
// then the layer axis. This is coarser than a minimal rectangle
// decomposition but sufficient for the compiler's use: it only needs to
// know whether anything remains, not a tight cover.
func subtractRange(rng, sub ImageSubrange) []ImageSubrange {
	isect, ok := rng.Intersect(sub)
	if !ok {
		return []ImageSubrange{rng}
	}
	if isect == rng {
		return nil
	}

	var out []ImageSubrange
	if isect.BaseLevel > rng.BaseLevel {
		out = append(out, ImageSubrange{
			BaseLevel: rng.BaseLevel, LevelCount: isect.BaseLevel - rng.BaseLevel,
			BaseLayer: rng.BaseLayer, LayerCount: rng.LayerCount,
		})
	}
	if rng.levelEnd() > isect.levelEnd() {
		rem := rng.levelEnd() - isect.levelEnd()
		lc := RemainingMipLevels
		if rem < (1 << 32) {
			lc = uint32(rem)
		}
		out = append(out, ImageSubrange{
			BaseLevel: uint32(isect.levelEnd()), LevelCount: lc,
			BaseLayer: rng.BaseLayer, LayerCount: rng.LayerCount,
		})
	}
	if isect.BaseLayer > rng.BaseLayer {
		out = append(out, ImageSubrange{
			BaseLevel: isect.BaseLevel, LevelCount: isect.LevelCount,
			BaseLayer: rng.BaseLayer, LayerCount: isect.BaseLayer - rng.BaseLayer,
		})
	}
	if rng.layerEnd() > isect.layerEnd() {
		rem := rng.layerEnd() - isect.layerEnd()
		lc := RemainingArrayLayers
		if rem < (1 << 32) {
			lc = uint32(rem)
		}
		out = append(out, ImageSubrange{
			BaseLevel: isect.BaseLevel, LevelCount: isect.LevelCount,
			BaseLayer: uint32(isect.layerEnd()), LayerCount: lc,
		})
	}
	return out
}
