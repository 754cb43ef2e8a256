package units

import (
	"math"
	"testing"
)

func TestCmToInch(t *testing.T) {
	got, err := CmToInch(2.54)
	if err != nil {
		t.Fatalf("CmToInch(2.54) error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("CmToInch(2.54) = %v, se esperaba 1.0", got)
	}

	got, err = CmToInch(16)
	if err != nil {
		t.Fatalf("CmToInch(16) error: %v", err)
	}
	if math.Abs(got-6.2992) > 1e-4 {
		t.Errorf("CmToInch(16) = %v, se esperaba 6.2992", got)
	}
}

func TestCmToInchInvalid(t *testing.T) {
	for _, cm := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := CmToInch(cm); err == nil {
			t.Errorf("CmToInch(%v) debería fallar", cm)
		}
	}
}

func TestCmToInchMonotonic(t *testing.T) {
	prev := 0.0
	for cm := 0.5; cm < 50; cm += 0.5 {
		in, err := CmToInch(cm)
		if err != nil {
			t.Fatalf("CmToInch(%v) error: %v", cm, err)
		}
		if in <= prev {
			t.Fatalf("CmToInch no es estrictamente creciente en %v", cm)
		}
		prev = in
	}
}

func TestCmToInchIdempotent(t *testing.T) {
	a, _ := CmToInch(13.7)
	b, _ := CmToInch(13.7)
	if a != b {
		t.Errorf("CmToInch no es pura: %v != %v", a, b)
	}
}

func TestNewExportSpec(t *testing.T) {
	spec, err := NewExportSpec(4, 3, 300)
	if err != nil {
		t.Fatalf("NewExportSpec(4, 3, 300) error: %v", err)
	}
	if spec.Wd != 4 || spec.Ht != 3 || spec.DPI != 300 || spec.Unit != Inch {
		t.Errorf("spec inesperado: %+v", spec)
	}

	w, h, err := spec.PixelSize()
	if err != nil {
		t.Fatalf("PixelSize error: %v", err)
	}
	if w != 1200 || h != 900 {
		t.Errorf("PixelSize = %dx%d, se esperaba 1200x900", w, h)
	}
}

func TestNewExportSpecInvalid(t *testing.T) {
	cases := []struct {
		w, h float64
		dpi  int
	}{
		{0, 3, 300},
		{4, 0, 300},
		{4, 3, 0},
		{-4, 3, 300},
		{4, -3, 300},
		{4, 3, -72},
		{math.NaN(), 3, 300},
		{4, math.Inf(1), 300},
	}
	for _, c := range cases {
		if _, err := NewExportSpec(c.w, c.h, c.dpi); err == nil {
			t.Errorf("NewExportSpec(%v, %v, %d) debería fallar", c.w, c.h, c.dpi)
		}
	}
}

func TestUnitToPoints(t *testing.T) {
	cases := []struct {
		unit Unit
		v    float64
		want float64
	}{
		{Inch, 1, 72},
		{Point, 10, 10},
		{Centimeter, 2.54, 72},
		{Millimeter, 25.4, 72},
	}
	for _, c := range cases {
		got, err := c.unit.ToPoints(c.v)
		if err != nil {
			t.Fatalf("ToPoints(%s) error: %v", c.unit, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%v %s = %v pt, se esperaba %v", c.v, c.unit, got, c.want)
		}
	}

	if _, err := Unit("furlong").ToPoints(1); err == nil {
		t.Error("unidad desconocida debería fallar")
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{1, Inch, Centimeter, 2.54},
		{25.4, Millimeter, Inch, 1},
		{72, Point, Inch, 1},
		{1, Centimeter, Millimeter, 10},
		{28.35, Point, Centimeter, 1.000125},
	}
	for _, c := range cases {
		got, err := Convert(c.v, c.from, c.to)
		if err != nil {
			t.Fatalf("Convert(%v, %s, %s) error: %v", c.v, c.from, c.to, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Convert(%v, %s, %s) = %v, se esperaba %v", c.v, c.from, c.to, got, c.want)
		}
	}

	if _, err := Convert(1, Unit("px"), Inch); err == nil {
		t.Error("unidad de origen desconocida debería fallar")
	}
	if _, err := Convert(1, Inch, Unit("px")); err == nil {
		t.Error("unidad de destino desconocida debería fallar")
	}
}

func TestPixelsPerUnit(t *testing.T) {
	k, err := Centimeter.PixelsPerUnit(254)
	if err != nil {
		t.Fatalf("PixelsPerUnit error: %v", err)
	}
	if math.Abs(k-100) > 1e-9 {
		t.Errorf("cm a 254 dpi = %v px, se esperaba 100", k)
	}

	if _, err := Inch.PixelsPerUnit(0); err == nil {
		t.Error("dpi 0 debería fallar")
	}
}
