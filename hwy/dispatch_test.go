package hwy

import (
	"os"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentWidth() != 16 && CurrentWidth() != 32 {
		t.Errorf("CurrentWidth: got %d, want 16 or 32", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName: got %q, want %q", CurrentName(), CurrentLevel().String())
	}
	if os.Getenv("HWY_NO_SIMD") == "1" && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD=1: got level %v, want scalar", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "true")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv with HWY_NO_SIMD=true: got false, want true")
	}
	t.Setenv("HWY_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("NoSimdEnv with HWY_NO_SIMD empty: got true, want false")
	}
}

func TestMaxLanes(t *testing.T) {
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]: got %d, want %d", got, want)
	}
	if got, want := MaxLanes[int8](), CurrentWidth(); got != want {
		t.Errorf("MaxLanes[int8]: got %d, want %d", got, want)
	}
}
