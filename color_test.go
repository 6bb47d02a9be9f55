package plot

import (
	"errors"
	"math"
	"testing"
)

func TestColorNamed(t *testing.T) {
	c, err := ColorNamed("firebrick")
	if err != nil {
		t.Fatalf("ColorNamed(firebrick) = %v", err)
	}
	// firebrick is #B22222.
	if math.Abs(c.R-178.0/255) > 0.01 || math.Abs(c.G-34.0/255) > 0.01 || math.Abs(c.B-34.0/255) > 0.01 {
		t.Errorf("firebrick = %+v, want ~(0.70, 0.13, 0.13)", c)
	}
	if c.A != 1 {
		t.Errorf("firebrick alpha = %v, want 1", c.A)
	}
}

func TestColorNamedCaseInsensitive(t *testing.T) {
	lower, err := ColorNamed("navy")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := ColorNamed("Navy")
	if err != nil {
		t.Fatalf("ColorNamed(Navy) = %v", err)
	}
	if lower != upper {
		t.Error("color names should match case-insensitively")
	}
}

func TestColorNamedHex(t *testing.T) {
	c, err := ColorNamed("#ff0000")
	if err != nil {
		t.Fatalf("ColorNamed(#ff0000) = %v", err)
	}
	if math.Abs(c.R-1) > 0.01 || c.G > 0.01 || c.B > 0.01 {
		t.Errorf("#ff0000 = %+v, want red", c)
	}
}

func TestColorNamedUnknown(t *testing.T) {
	_, err := ColorNamed("not-a-color")
	if err == nil {
		t.Fatal("unknown color name should fail")
	}
	var uce *UnknownColorError
	if !errors.As(err, &uce) {
		t.Fatalf("error %v is not an *UnknownColorError", err)
	}
	if uce.Name != "not-a-color" {
		t.Errorf("UnknownColorError.Name = %q, want not-a-color", uce.Name)
	}
}

func TestMustColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustColor with unknown name should panic")
		}
	}()
	MustColor("definitely-not-a-color")
}
