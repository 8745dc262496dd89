package mathfs

import "fmt"

// Family identifies the curve family of a segment, i.e. the basis its
// control points are expressed in.
type Family int

const (
	FamilyCubicBez Family = iota
	FamilyHermite
	FamilyCatmullRom
	FamilyBSpline
	FamilyQuadBez
)

// Arity returns the number of control points a segment of the family has.
func (f Family) Arity() int {
	if f == FamilyQuadBez {
		return 3
	}
	return 4
}

func (f Family) String() string {
	switch f {
	case FamilyCubicBez:
		return "CubicBez"
	case FamilyHermite:
		return "Hermite"
	case FamilyCatmullRom:
		return "CatmullRom"
	case FamilyBSpline:
		return "BSpline"
	case FamilyQuadBez:
		return "QuadBez"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}
