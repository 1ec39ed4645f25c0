package hwy

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDispatchLevel(t *testing.T) {
	level := CurrentLevel()
	if level.String() == "unknown" {
		t.Errorf("unexpected dispatch level %d", level)
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, level %q", CurrentName(), level.String())
	}
	if w := CurrentWidth(); w < 16 || w&(w-1) != 0 {
		t.Errorf("CurrentWidth() = %d, want a power of two >= 16", w)
	}
	if DispatchLevel(99).String() != "unknown" {
		t.Error("out-of-range level should be unknown")
	}
	t.Logf("dispatch %s, width %d, fma %v, kernels %s", CurrentName(), CurrentWidth(), HasFMA(), ActiveKernels().Name)
}

func TestActiveKernelsNamed(t *testing.T) {
	name := ActiveKernels().Name
	if name != "hardware" && name != "emulated" {
		t.Errorf("active kernel set %q is not one of the named sets", name)
	}
}

func TestParseKernels(t *testing.T) {
	for _, s := range []string{"hardware", " Hardware ", "EMULATED"} {
		if _, ok := ParseKernels(s); !ok {
			t.Errorf("ParseKernels(%q) failed", s)
		}
	}
	if k, _ := ParseKernels("emulated"); k.Name != "emulated" {
		t.Errorf("ParseKernels(emulated).Name = %q", k.Name)
	}
	if _, ok := ParseKernels("avx9000"); ok {
		t.Error("ParseKernels accepted an unknown name")
	}
}

func TestSetKernelsRestore(t *testing.T) {
	before := ActiveKernels().Name
	restore := SetKernels(EmulatedKernels())
	if ActiveKernels().Name != "emulated" {
		t.Fatalf("SetKernels did not activate the emulated set")
	}
	restore()
	if ActiveKernels().Name != before {
		t.Errorf("restore left %q active, want %q", ActiveKernels().Name, before)
	}
}

func TestSetKernelsFillsMissing(t *testing.T) {
	defer SetKernels(Kernels{Div: divRefined})()
	k := ActiveKernels()
	if k.Name != "custom" || k.MulAdd == nil || k.ReduceSum == nil || k.ReduceMin == nil || k.ReduceMax == nil {
		t.Fatalf("SetKernels left unset fields: %+v", k.Name)
	}
	if got := ReduceSum(vec(1, 2, 3, 4)); got != 10 {
		t.Errorf("ReduceSum with filled set: got %v", got)
	}
}

func TestSetLoggerLogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	out := buf.String()
	if !strings.Contains(out, "hwy dispatch") || !strings.Contains(out, "kernels="+ActiveKernels().Name) {
		t.Errorf("dispatch log missing fields: %q", out)
	}
}

func TestEnvBool(t *testing.T) {
	cases := map[string]bool{"": false, "0": false, "false": false, "1": true, "true": true, "yes": true}
	for val, want := range cases {
		t.Setenv("HWY_TEST_FLAG", val)
		if got := envBool("HWY_TEST_FLAG"); got != want {
			t.Errorf("envBool(%q) = %v, want %v", val, got, want)
		}
	}
}
