package units

import (
	"math"

	"github.com/tinywasm/plot/errs"
)

// Conversion constants between the supported document units.
// 1 inch = 2.54 cm = 25.4 mm = 72 postscript points.
const (
	PointsPerInch = 72.0
	MMPerInch     = 25.4
	CmPerInch     = 2.54
)

// Unit identifies a physical document unit, using the same vocabulary
// accepted by the document generators of this family ("pt", "mm", "cm", "in").
type Unit string

const (
	Point      Unit = "pt"
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
)

// inchFactor returns how many inches one of u measures.
func (u Unit) inchFactor() (float64, error) {
	switch u {
	case Point:
		return 1.0 / PointsPerInch, nil
	case Millimeter:
		return 1.0 / MMPerInch, nil
	case Centimeter:
		return 1.0 / CmPerInch, nil
	case Inch:
		return 1.0, nil
	}
	return 0, errs.New("incorrect unit", string(u))
}

// ToPoints converts a length expressed in u to postscript points.
func (u Unit) ToPoints(v float64) (float64, error) {
	k, err := u.inchFactor()
	if err != nil {
		return 0, err
	}
	return v * k * PointsPerInch, nil
}

// PixelsPerUnit returns the raster scale factor for u at the given
// resolution: how many pixels one unit covers.
func (u Unit) PixelsPerUnit(dpi int) (float64, error) {
	if dpi <= 0 {
		return 0, errs.InvalidResolution
	}
	k, err := u.inchFactor()
	if err != nil {
		return 0, err
	}
	return k * float64(dpi), nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Convert re-expresses a length from one unit in another.
func Convert(v float64, from, to Unit) (float64, error) {
	kf, err := from.inchFactor()
	if err != nil {
		return 0, err
	}
	kt, err := to.inchFactor()
	if err != nil {
		return 0, err
	}
	return v * kf / kt, nil
}

// CmToInch converts a document measurement in centimeters to inches,
// the unit the export collaborator expects. The input must be a positive
// finite number.
func CmToInch(cm float64) (float64, error) {
	if !positiveFinite(cm) {
		return 0, errs.InvalidDimension
	}
	return cm / CmPerInch, nil
}

// ExportSpec packages the physical size and resolution used to rasterize
// a figure to a file.
type ExportSpec struct {
	Wd   float64 // width in Unit
	Ht   float64 // height in Unit
	Unit Unit
	DPI  int // dots per inch
}

// NewExportSpec packages export dimensions given in inches with a
// resolution. Width, height and dpi must be positive; the unit tag is
// fixed to inches.
func NewExportSpec(widthInches, heightInches float64, dpi int) (ExportSpec, error) {
	if !positiveFinite(widthInches) || !positiveFinite(heightInches) {
		return ExportSpec{}, errs.InvalidDimension
	}
	if dpi <= 0 {
		return ExportSpec{}, errs.InvalidResolution
	}
	return ExportSpec{
		Wd:   widthInches,
		Ht:   heightInches,
		Unit: Inch,
		DPI:  dpi,
	}, nil
}

// Validate reports whether the spec can be rasterized.
func (s ExportSpec) Validate() error {
	if !positiveFinite(s.Wd) || !positiveFinite(s.Ht) {
		return errs.InvalidDimension
	}
	if s.DPI <= 0 {
		return errs.InvalidResolution
	}
	_, err := s.Unit.inchFactor()
	return err
}

// PixelSize returns the raster dimensions of the spec, rounded to whole
// pixels.
func (s ExportSpec) PixelSize() (w, h int, err error) {
	if err = s.Validate(); err != nil {
		return 0, 0, err
	}
	k, err := s.Unit.PixelsPerUnit(s.DPI)
	if err != nil {
		return 0, 0, err
	}
	return int(math.Round(s.Wd * k)), int(math.Round(s.Ht * k)), nil
}
