// Package transform implements working-space color conversions: the sRGB
// transfer function, the ACEScg matrices, and a generic path through CIE XYZ.
package transform

import (
	"fmt"
	"math"
	"strings"
)

// Space is a named working color space.
type Space uint8

const (
	SpaceSRGB Space = iota
	SpaceLinear
	SpaceACEScg
	SpaceACES2065_1
	SpaceRec709
	SpaceRec2020
	SpaceDCIP3
	SpaceDisplayP3
	SpaceAdobeRGB
	SpaceProPhotoRGB
	SpaceXYZ
	SpaceRaw
)

// Name returns the display name of the space.
func (s Space) Name() string {
	switch s {
	case SpaceSRGB:
		return "sRGB"
	case SpaceLinear:
		return "Linear"
	case SpaceACEScg:
		return "ACEScg"
	case SpaceACES2065_1:
		return "ACES2065-1"
	case SpaceRec709:
		return "Rec.709"
	case SpaceRec2020:
		return "Rec.2020"
	case SpaceDCIP3:
		return "DCI-P3"
	case SpaceDisplayP3:
		return "Display P3"
	case SpaceAdobeRGB:
		return "Adobe RGB"
	case SpaceProPhotoRGB:
		return "ProPhoto RGB"
	case SpaceXYZ:
		return "CIE XYZ"
	case SpaceRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// FromName resolves a space by name, case-insensitively, accepting the
// common aliases. The second return is false if the name is unknown.
func FromName(name string) (Space, bool) {
	switch strings.ToLower(name) {
	case "srgb":
		return SpaceSRGB, true
	case "linear", "linear srgb":
		return SpaceLinear, true
	case "acescg":
		return SpaceACEScg, true
	case "aces2065-1", "aces":
		return SpaceACES2065_1, true
	case "rec709", "rec.709":
		return SpaceRec709, true
	case "rec2020", "rec.2020":
		return SpaceRec2020, true
	case "dci-p3", "dcip3":
		return SpaceDCIP3, true
	case "display p3", "displayp3":
		return SpaceDisplayP3, true
	case "adobe rgb", "adobergb":
		return SpaceAdobeRGB, true
	case "prophoto", "prophoto rgb":
		return SpaceProPhotoRGB, true
	case "xyz", "cie xyz":
		return SpaceXYZ, true
	case "raw":
		return SpaceRaw, true
	default:
		return SpaceSRGB, false
	}
}

// AllSpaces lists the spaces the transform engine knows by name.
func AllSpaces() []Space {
	return []Space{
		SpaceSRGB, SpaceLinear, SpaceACEScg, SpaceACES2065_1,
		SpaceRec709, SpaceRec2020, SpaceDCIP3, SpaceDisplayP3,
		SpaceAdobeRGB, SpaceProPhotoRGB, SpaceXYZ,
	}
}

// SRGBToLinear converts one sRGB-encoded component in [0,1] to linear.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB converts one linear component in [0,1] to sRGB encoding.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// RGB is a color triple in the space indicated by context.
type RGB [3]float64

func (c RGB) mapEach(f func(float64) float64) RGB {
	return RGB{f(c[0]), f(c[1]), f(c[2])}
}

// SRGBToLinearRGB applies the sRGB EOTF per component.
func SRGBToLinearRGB(c RGB) RGB { return c.mapEach(SRGBToLinear) }

// LinearToSRGBRGB applies the sRGB OETF per component.
func LinearToSRGBRGB(c RGB) RGB { return c.mapEach(LinearToSRGB) }

type matrix3 [3][3]float64

func (m matrix3) mul(v RGB) RGB {
	return RGB{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Conversion matrices. The ACEScg pair is the approximate Bradford-adapted
// sRGB-linear fit; the XYZ pair is the exact sRGB/D65 matrix.
var (
	linearToACEScgM = matrix3{
		{0.6131, 0.3395, 0.0474},
		{0.0701, 0.9164, 0.0135},
		{0.0206, 0.1096, 0.8698},
	}
	acescgToLinearM = matrix3{
		{1.7051, -0.6218, -0.0833},
		{-0.1302, 1.1408, -0.0106},
		{-0.0240, -0.1289, 1.1529},
	}
	linearToXYZM = matrix3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToLinearM = matrix3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// Convert transforms a triple between spaces. Direct paths exist for the
// sRGB/linear/ACEScg trio; everything else goes through XYZ and errors if a
// leg is unsupported.
func Convert(c RGB, from, to Space) (RGB, error) {
	if from == to {
		return c, nil
	}

	switch {
	case from == SpaceSRGB && to == SpaceLinear:
		return SRGBToLinearRGB(c), nil
	case from == SpaceLinear && to == SpaceSRGB:
		return LinearToSRGBRGB(c), nil
	case from == SpaceLinear && to == SpaceACEScg:
		return linearToACEScgM.mul(c), nil
	case from == SpaceACEScg && to == SpaceLinear:
		return acescgToLinearM.mul(c), nil
	}

	xyz, err := toXYZ(c, from)
	if err != nil {
		return RGB{}, err
	}
	return fromXYZ(xyz, to)
}

func toXYZ(c RGB, from Space) (RGB, error) {
	var linear RGB
	switch from {
	case SpaceSRGB:
		linear = SRGBToLinearRGB(c)
	case SpaceLinear:
		linear = c
	case SpaceACEScg:
		linear = acescgToLinearM.mul(c)
	case SpaceXYZ:
		return c, nil
	default:
		return RGB{}, fmt.Errorf("transform: unsupported source space %s", from.Name())
	}
	return linearToXYZM.mul(linear), nil
}

func fromXYZ(xyz RGB, to Space) (RGB, error) {
	if to == SpaceXYZ {
		return xyz, nil
	}

	linear := xyzToLinearM.mul(xyz)
	switch to {
	case SpaceLinear:
		return linear, nil
	case SpaceSRGB:
		return LinearToSRGBRGB(linear), nil
	case SpaceACEScg:
		return linearToACEScgM.mul(linear), nil
	default:
		return RGB{}, fmt.Errorf("transform: unsupported target space %s", to.Name())
	}
}
