package utils

import "testing"

func TestFloatSpreadRange(t *testing.T) {
	rng := NewPRNGService(42)
	const spread = 500.0
	var lo, hi float64
	for i := 0; i < 10000; i++ {
		v := rng.FloatSpread(spread)
		if v < -spread/2 || v >= spread/2 {
			t.Fatalf("FloatSpread(%v) = %v; out of range", spread, v)
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	// равномерное распределение должно почти заполнить интервал
	if lo > -240 || hi < 240 {
		t.Errorf("values span [%v, %v]; want close to [-250, 250)", lo, hi)
	}
}

func TestSeededSequenceRepeats(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
	}
}
