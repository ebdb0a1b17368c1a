// File: massivecount.go
// Role: massive_count (spec.md §4.2) — a single pass over a cube list's
// cubes (plus its cofactor, the T[0] of the original's array convention)
// deriving per-variable zero counts and the splitting variable.
package recur

import "github.com/katalvlaran/espresso/cube"

// MassiveCount computes per-variable zero counts and picks the splitting
// variable for cl. A part already fixed by cl's cofactor (GetPart(cofactor,
// v, p) == true) is not counted: it has already been factored out of this
// subproblem and carries no new splitting information.
//
// Complexity: O(NVars·maxPartSize·cl.Len()) — one pass per (variable, part)
// over every cube in cl.
func MassiveCount(d *cube.Descriptor, cl *cube.CubeList) CountResult {
	stats := make([]VarStat, d.NVars)

	for v := 0; v < d.NVars; v++ {
		for p := 0; p < d.PartSize[v]; p++ {
			fixed, _ := d.GetPart(cl.Cofactor, v, p)
			if fixed {
				continue
			}
			zeros := 0
			for _, c := range cl.Cubes {
				set, _ := d.GetPart(c, v, p)
				if !set {
					zeros++
				}
			}
			if zeros == 0 {
				continue
			}
			stats[v].VarZeros += zeros
			stats[v].PartsActive++
			stats[v].PartZeros = append(stats[v].PartZeros, zeros)
		}
		stats[v].IsUnate = stats[v].PartsActive == 1
	}

	res := CountResult{Stats: stats, Best: -1}
	bestBalance := -1
	for v := range stats {
		s := stats[v]
		if s.PartsActive >= 1 {
			res.VarsActive++
		}
		if s.IsUnate {
			res.VarsUnate++
		}
		if s.PartsActive < 2 {
			continue
		}
		switch {
		case res.Best == -1:
			res.Best, bestBalance = v, balance(s.PartZeros)
		case s.PartsActive > stats[res.Best].PartsActive:
			res.Best, bestBalance = v, balance(s.PartZeros)
		case s.PartsActive == stats[res.Best].PartsActive && s.VarZeros > stats[res.Best].VarZeros:
			res.Best, bestBalance = v, balance(s.PartZeros)
		case s.PartsActive == stats[res.Best].PartsActive && s.VarZeros == stats[res.Best].VarZeros:
			if b := balance(s.PartZeros); b < bestBalance {
				res.Best, bestBalance = v, b
			}
		}
	}
	return res
}

// balance returns the spread (max-min) of a part's zero counts: lower means
// the zeros are more evenly distributed across parts.
func balance(zeros []int) int {
	if len(zeros) == 0 {
		return 0
	}
	lo, hi := zeros[0], zeros[0]
	for _, z := range zeros[1:] {
		if z < lo {
			lo = z
		}
		if z > hi {
			hi = z
		}
	}
	return hi - lo
}
