package aim

import (
	"errors"
	"math"
	"testing"
)

func TestAdviseUsesHeightAtTarget(t *testing.T) {
	adv, err := NewAdvisor().Advise(50, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := math.Cos(math.Pi / 4)
	tt := 20 / (50 * c)
	y := 50*c*tt - 0.5*9.81*tt*tt

	if math.Abs(adv.TravelTime-tt) > 1e-12 {
		t.Errorf("TravelTime = %g, want %g", adv.TravelTime, tt)
	}
	if math.Abs(adv.HeightAtTarget-y) > 1e-9 {
		t.Errorf("HeightAtTarget = %g, want %g", adv.HeightAtTarget, y)
	}
	if math.Abs(adv.OffsetM-0.4*y) > 1e-9 {
		t.Errorf("OffsetM = %g, want %g", adv.OffsetM, 0.4*y)
	}
	if adv.OffsetCM != math.Round(0.4*y*100) {
		t.Errorf("OffsetCM = %g, want %g", adv.OffsetCM, math.Round(0.4*y*100))
	}
	if adv.AngleDeg != 45 {
		t.Errorf("AngleDeg = %g, want 45", adv.AngleDeg)
	}
}

func TestAdviseFallsBackToApex(t *testing.T) {
	// 10 m/s at 45° lands at ~10.2 m; 30 m is past the landing point.
	adv, err := NewAdvisor().Advise(10, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adv.HeightAtTarget > 0 {
		t.Fatalf("HeightAtTarget = %g, expected negative beyond range", adv.HeightAtTarget)
	}

	vy := 10 * math.Sin(math.Pi/4)
	hMax := vy * vy / (2 * 9.81)
	if math.Abs(adv.MaxHeight-hMax) > 1e-9 {
		t.Errorf("MaxHeight = %g, want %g", adv.MaxHeight, hMax)
	}
	if math.Abs(adv.OffsetM-0.4*hMax) > 1e-9 {
		t.Errorf("OffsetM = %g, want apex fallback %g", adv.OffsetM, 0.4*hMax)
	}
}

func TestAdviseZeroDistance(t *testing.T) {
	// y(0) = 0 is not positive, so the apex fallback applies.
	adv, err := NewAdvisor().Advise(40, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(adv.OffsetM-0.4*adv.MaxHeight) > 1e-12 {
		t.Errorf("OffsetM = %g, want %g", adv.OffsetM, 0.4*adv.MaxHeight)
	}
}

func TestAdviseCustomConstants(t *testing.T) {
	a := NewAdvisor()
	a.Factor = 1

	base, _ := NewAdvisor().Advise(60, 25)
	full, err := a.Advise(60, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(full.OffsetM-base.OffsetM/0.4) > 1e-9 {
		t.Errorf("factor 1 offset = %g, want %g", full.OffsetM, base.OffsetM/0.4)
	}

	a = NewAdvisor()
	a.AngleDeg = 30
	low, err := a.Advise(60, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if low.AngleDeg != 30 {
		t.Errorf("AngleDeg = %g, want 30", low.AngleDeg)
	}
	if low.OffsetM >= base.OffsetM {
		t.Errorf("flatter launch should need less hold-over: %g >= %g", low.OffsetM, base.OffsetM)
	}
}

func TestAdviseInvalidVelocity(t *testing.T) {
	for _, v0 := range []float64{0, -10, math.NaN()} {
		_, err := NewAdvisor().Advise(v0, 10)
		if !errors.Is(err, ErrInvalidVelocity) {
			t.Errorf("v0=%g: error = %v, want ErrInvalidVelocity", v0, err)
		}
	}
}
