// File: special.go
// Role: compl_special_cases / simplify_special_cases / simp_comp_special_cases
// (spec.md §4.3) — the shared leaf-case ladder all three top-level
// operations share before falling back to a binate split.
package complement

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
	"github.com/katalvlaran/espresso/unatecover"
)

// outcome is the Result type Complement and Simplify's recursion carries:
// a single resulting cover plus any error surfaced from a deeper recursive
// call (the column-of-zeros special case recurses into the same
// algorithm directly, outside of Driver's split/merge machinery, so errors
// from that inner call must be threaded back up by hand).
type outcome struct {
	cover *cube.Cover
	err   error
}

// pair is SimpComp's Result type: the simplified cover and its complement,
// computed together.
type pair struct {
	newCover *cube.Cover
	bar      *cube.Cover
	err      error
}

// complSpecial builds compl_special_cases as a recur.SpecialCase. recurse
// is Complement's own driver, supplied by the caller so the column-of-
// zeros case can recurse into the full algorithm directly (the original's
// literal `complement(T)` call from inside the special-case function).
func complSpecial(d *cube.Descriptor, recurse func(*cube.CubeList) outcome) recur.SpecialCase {
	return func(cl *cube.CubeList) (recur.Result, bool) {
		cof := cl.Cofactor

		if cl.Len() == 0 {
			out := d.NewCover(1)
			out.Add(d.Fullset.Clone())
			return outcome{cover: out}, true
		}

		if cl.Len() == 1 {
			p := d.NewCube()
			_ = d.SetOr(&p, cof, cl.Cubes[0])
			return outcome{cover: ComplCube(d, p)}, true
		}

		for _, p := range cl.Cubes {
			if recur.FullRow(d, p, cof) {
				return outcome{cover: d.NewCover(0)}, true
			}
		}

		ceil := recur.Ceiling(d, cof, cl.Cubes)
		if !d.SetpFull(ceil) {
			ceilCompl := ComplCube(d, ceil)
			sub := d.NewCubeList(recur.FactoredCofactor(d, cof, ceil), cl.Cubes)
			rec := recurse(sub)
			if rec.err != nil {
				return outcome{err: rec.err}, true
			}
			rec.cover.SfAppend(ceilCompl)
			return outcome{cover: rec.cover}, true
		}

		count := recur.MassiveCount(d, cl)
		if count.VarsActive == 1 {
			return outcome{cover: d.NewCover(0)}, true
		}
		if count.VarsActive > 0 && count.VarsUnate == count.VarsActive {
			f, cols := unatecover.MapCoverToUnate(d, cl)
			complF := unatecover.UnateCompl(f)
			return outcome{cover: unatecover.MapUnateToCover(d, complF, cols)}, true
		}

		return nil, false
	}
}

// simplifySpecial builds simplify_special_cases. recurse plays the same
// role as in complSpecial, but calls back into Simplify (whose result is
// the simplified cover itself, not its complement).
func simplifySpecial(d *cube.Descriptor, recurse func(*cube.CubeList) outcome) recur.SpecialCase {
	return func(cl *cube.CubeList) (recur.Result, bool) {
		cof := cl.Cofactor

		if cl.Len() == 0 {
			return outcome{cover: d.NewCover(0)}, true
		}

		if cl.Len() == 1 {
			p := d.NewCube()
			_ = d.SetOr(&p, cof, cl.Cubes[0])
			out := d.NewCover(1)
			out.Add(p)
			return outcome{cover: out}, true
		}

		for _, p := range cl.Cubes {
			if recur.FullRow(d, p, cof) {
				out := d.NewCover(1)
				out.Add(d.Fullset.Clone())
				return outcome{cover: out}, true
			}
		}

		ceil := recur.Ceiling(d, cof, cl.Cubes)
		if !d.SetpFull(ceil) {
			sub := d.NewCubeList(recur.FactoredCofactor(d, cof, ceil), cl.Cubes)
			rec := recurse(sub)
			if rec.err != nil {
				return outcome{err: rec.err}, true
			}
			for i := 0; i < rec.cover.Len(); i++ {
				c := rec.cover.At(i)
				_ = d.SetAnd(&c, c, ceil)
				rec.cover.Set(i, c)
			}
			return outcome{cover: rec.cover}, true
		}

		count := recur.MassiveCount(d, cl)
		if count.VarsActive == 1 {
			out := d.NewCover(1)
			out.Add(d.Fullset.Clone())
			return outcome{cover: out}, true
		}
		if count.VarsActive > 0 && count.VarsUnate == count.VarsActive {
			return outcome{cover: d.SfContain(cl.ToCover())}, true
		}

		return nil, false
	}
}

// simpCompSpecial builds simp_comp_special_cases: the same ladder, but
// producing (new, complement) simultaneously.
func simpCompSpecial(d *cube.Descriptor, recurse func(*cube.CubeList) pair) recur.SpecialCase {
	return func(cl *cube.CubeList) (recur.Result, bool) {
		cof := cl.Cofactor

		if cl.Len() == 0 {
			bar := d.NewCover(1)
			bar.Add(d.Fullset.Clone())
			return pair{newCover: d.NewCover(0), bar: bar}, true
		}

		if cl.Len() == 1 {
			p := d.NewCube()
			_ = d.SetOr(&p, cof, cl.Cubes[0])
			nc := d.NewCover(1)
			nc.Add(p)
			return pair{newCover: nc, bar: ComplCube(d, p)}, true
		}

		for _, p := range cl.Cubes {
			if recur.FullRow(d, p, cof) {
				nc := d.NewCover(1)
				nc.Add(d.Fullset.Clone())
				return pair{newCover: nc, bar: d.NewCover(0)}, true
			}
		}

		ceil := recur.Ceiling(d, cof, cl.Cubes)
		if !d.SetpFull(ceil) {
			sub := d.NewCubeList(recur.FactoredCofactor(d, cof, ceil), cl.Cubes)
			rec := recurse(sub)
			if rec.err != nil {
				return pair{err: rec.err}, true
			}
			for i := 0; i < rec.newCover.Len(); i++ {
				c := rec.newCover.At(i)
				_ = d.SetAnd(&c, c, ceil)
				rec.newCover.Set(i, c)
			}
			rec.bar.SfAppend(ComplCube(d, ceil))
			return pair{newCover: rec.newCover, bar: rec.bar}, true
		}

		count := recur.MassiveCount(d, cl)
		if count.VarsActive == 1 {
			nc := d.NewCover(1)
			nc.Add(d.Fullset.Clone())
			return pair{newCover: nc, bar: d.NewCover(0)}, true
		}
		if count.VarsActive > 0 && count.VarsUnate == count.VarsActive {
			nc := d.SfContain(cl.ToCover())
			f, cols := unatecover.MapCoverToUnate(d, cl)
			complF := unatecover.UnateCompl(f)
			bar := unatecover.MapUnateToCover(d, complF, cols)
			return pair{newCover: nc, bar: bar}, true
		}

		return nil, false
	}
}
