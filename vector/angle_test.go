package vector

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestAngleWith(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector
		unit   Unit
		expect float64
	}{
		{"radians", MustNew(3.183, -7.627), MustNew(-2.668, 5.319), Radians, 3.072},
		{"degrees", MustNew(7.35, 0.221, 5.188), MustNew(2.751, 8.259, 3.985), Degrees, 60.276},
		{"right angle", MustNew(1, 0), MustNew(0, 5), Radians, math.Pi / 2},
		{"right angle degrees", MustNew(0, 0, 2), MustNew(3, 0, 0), Degrees, 90},
		{"same direction", MustNew(2, 2), MustNew(5, 5), Radians, 0},
	}

	for _, tc := range tests {
		got, err := tc.v.AngleWith(tc.w, tc.unit)
		if err != nil {
			t.Fatalf("%s: AngleWith failed: %v", tc.name, err)
		}
		if math.Abs(got-tc.expect) > 1e-3 {
			t.Errorf("%s: expected %.3f %s, got %.6f", tc.name, tc.expect, tc.unit, got)
		}
	}
}

func TestAngleWithGuardSnapsAntiParallel(t *testing.T) {
	for _, unit := range []Unit{Radians, Degrees} {
		angle, err := MustNew(1, 0).AngleWith(MustNew(-1, 0), unit)
		if err != nil {
			t.Fatalf("AngleWith failed: %v", err)
		}
		if angle != 0 {
			t.Errorf("Anti-parallel vectors should snap to 0 %s, got %v", unit, angle)
		}
	}
}

func TestAngleWithZeroVector(t *testing.T) {
	v := MustNew("2.118", "4.827")
	zero := MustNew("0", "0")

	for _, pair := range [][2]Vector{{v, zero}, {zero, v}, {zero, zero}} {
		_, err := pair[0].AngleWith(pair[1], Degrees)
		if !errors.Is(err, ErrDegenerateVector) {
			t.Fatalf("Expected ErrDegenerateVector, got %v", err)
		}
		if err.Error() != "degenerate vector: cannot compute an angle with the zero vector" {
			t.Errorf("Unexpected message: %v", err)
		}
	}
}

func TestAngleWithLogsGuard(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	space := NewSpace(WithLogger(logger))

	v, _ := space.New("-7.579", "-7.88")
	w, _ := space.New("22.737", "23.64")
	if _, err := v.AngleWith(w, Radians); err != nil {
		t.Fatalf("AngleWith failed: %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a log entry")
	}
	if entry.Message != "angle: stability guard applied" {
		t.Errorf("Unexpected message: %q", entry.Message)
	}
	if entry.Data["guard"] != DefaultParallelGuard {
		t.Errorf("Expected guard field %v, got %v", DefaultParallelGuard, entry.Data["guard"])
	}

	hook.Reset()
	zero, _ := space.New(0, 0)
	if _, err := zero.Normalized(); err == nil {
		t.Fatal("Expected error normalizing zero vector")
	}
	if len(hook.Entries) != 1 || hook.LastEntry().Level != logrus.DebugLevel {
		t.Errorf("Expected one debug entry, got %d", len(hook.Entries))
	}
}

func TestParallelAndOrthogonal(t *testing.T) {
	tests := []struct {
		v, w       Vector
		parallel   bool
		orthogonal bool
	}{
		{MustNew("-7.579", "-7.88"), MustNew("22.737", "23.64"), true, false},
		{MustNew("-2.029", "9.97", "4.172"), MustNew("-9.231", "-6.639", "-7.245"), false, false},
		{MustNew("-2.328", "-7.284", "-1.214"), MustNew("-1.821", "1.072", "-2.94"), false, true},
		{MustNew("2.118", "4.827"), MustNew("0", "0"), true, true},
		{MustNew("0", "0"), MustNew("2.118", "4.827"), true, true},
	}

	for _, tc := range tests {
		parallel, err := tc.v.IsParallelTo(tc.w)
		if err != nil {
			t.Fatalf("IsParallelTo failed: %v", err)
		}
		if parallel != tc.parallel {
			t.Errorf("%s parallel to %s: expected %v, got %v", tc.v, tc.w, tc.parallel, parallel)
		}

		orthogonal, err := tc.v.IsOrthogonalTo(tc.w)
		if err != nil {
			t.Fatalf("IsOrthogonalTo failed: %v", err)
		}
		if orthogonal != tc.orthogonal {
			t.Errorf("%s orthogonal to %s: expected %v, got %v", tc.v, tc.w, tc.orthogonal, orthogonal)
		}
	}
}

func TestIsParallelToBranches(t *testing.T) {
	// default guard: anti-parallel pairs are caught by the angle == 0 branch
	parallel, err := MustNew(1, 0).IsParallelTo(MustNew(-1, 0))
	if err != nil || !parallel {
		t.Errorf("Expected anti-parallel vectors to be parallel, got %v, %v", parallel, err)
	}

	// without the guard the angle is exactly π and the second branch decides
	space := NewSpace(WithParallelGuard(0))
	v, _ := space.New(1, 0)
	w, _ := space.New(-1, 0)

	angle, err := v.AngleWith(w, Radians)
	if err != nil {
		t.Fatalf("AngleWith failed: %v", err)
	}
	if angle != math.Pi {
		t.Fatalf("Expected exactly π, got %v", angle)
	}
	parallel, err = v.IsParallelTo(w)
	if err != nil || !parallel {
		t.Errorf("Expected parallel via the π branch, got %v, %v", parallel, err)
	}

	same, _ := space.New(3, 0)
	angle, err = v.AngleWith(same, Radians)
	if err != nil || angle != 0 {
		t.Errorf("Expected exactly 0 without the guard, got %v, %v", angle, err)
	}

	skew, _ := space.New(1, 1)
	parallel, err = v.IsParallelTo(skew)
	if err != nil || parallel {
		t.Errorf("Expected skew vectors not to be parallel, got %v, %v", parallel, err)
	}
}

func TestTolerances(t *testing.T) {
	tiny := MustNew("1e-11", "0")
	if !tiny.IsZero() {
		t.Errorf("%s should be zero under the default tolerance", tiny)
	}
	if tiny.IsZeroWithin(1e-12) {
		t.Errorf("%s should not be zero under 1e-12", tiny)
	}

	v := MustNew(1, "0.001")
	w := MustNew("-0.001", 1.5)
	orthogonal, err := v.IsOrthogonalTo(w)
	if err != nil || orthogonal {
		t.Errorf("Expected not orthogonal under default tolerance, got %v, %v", orthogonal, err)
	}
	orthogonal, err = v.IsOrthogonalToWithin(w, 1e-2)
	if err != nil || !orthogonal {
		t.Errorf("Expected orthogonal under 1e-2, got %v, %v", orthogonal, err)
	}

	loose := NewSpace(WithOrthogonalTolerance(1e-2), WithZeroTolerance(1))
	lv, _ := loose.New(1, "0.001")
	if ok, _ := lv.IsOrthogonalTo(w); !ok {
		t.Error("Space tolerance should apply to IsOrthogonalTo")
	}
	if small, _ := loose.New("0.5", "0.5"); !small.IsZero() {
		t.Error("Space tolerance should apply to IsZero")
	}
}

func TestConcurrentReads(t *testing.T) {
	v := MustNew(7.35, 0.221, 5.188)
	w := MustNew(2.751, 8.259, 3.985)
	expected, err := v.AngleWith(w, Degrees)
	if err != nil {
		t.Fatalf("AngleWith failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := v.AngleWith(w, Degrees)
			if err != nil {
				errs <- err
				return
			}
			if got != expected {
				errs <- errors.New("angle differs between goroutines")
			}
			if _, err := v.Plus(w); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	if !v.Equal(MustNew(7.35, 0.221, 5.188)) {
		t.Errorf("Vector was modified: %s", v)
	}
}

func TestUnitString(t *testing.T) {
	tests := []struct {
		unit   Unit
		expect string
	}{
		{Radians, "radians"},
		{Degrees, "degrees"},
		{Unit(7), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.unit.String(); got != tc.expect {
			t.Errorf("Expected %s, got %s", tc.expect, got)
		}
	}
}

func TestRelabelDegenerate(t *testing.T) {
	dimErr := &DimensionMismatchError{Expected: 2, Actual: 3}
	plain := errors.New("something else")

	tests := []struct {
		name   string
		in     error
		expect error
	}{
		{"zero vector", errCannotNormalize, errZeroVectorAngle},
		{"dimension mismatch", dimErr, dimErr},
		{"plain error", plain, plain},
		{"invalid argument", errNoCoordinates, errNoCoordinates},
	}

	for _, tc := range tests {
		if got := relabelDegenerate(tc.in); got != tc.expect {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expect, got)
		}
	}
}

func TestIsParallelToUsesReceiverTolerance(t *testing.T) {
	loose := NewSpace(WithZeroTolerance(1))
	v, _ := loose.New(1, 0)
	w := MustNew("0.5", "0.5")

	parallel, err := v.IsParallelTo(w)
	if err != nil || !parallel {
		t.Errorf("Expected w to count as zero under the receiver's tolerance, got %v, %v", parallel, err)
	}

	parallel, err = w.IsParallelTo(v)
	if err != nil || parallel {
		t.Errorf("Expected not parallel under the default tolerance, got %v, %v", parallel, err)
	}
}
