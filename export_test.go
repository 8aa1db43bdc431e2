package ascent

import (
	"bytes"
	"strings"
	"testing"
)

func samplePlots() Plots {
	return Plots{
		T:    []float64{0, 1},
		Rx:   []float64{1, 2}, Ry: []float64{0, 0}, Rz: []float64{0, 0}, Rmag: []float64{1, 2},
		Vx: []float64{0, 0}, Vy: []float64{1, 1}, Vz: []float64{0, 0},
		VySrf: []float64{1, 1}, VtSrf: []float64{0, 0}, Vmag: []float64{1, 1},
		Mass: []float64{1000, 990}, Thrust: []float64{0, 0}, Accel: []float64{0, 0},
		DynamicPressure: []float64{0, 0}, PitchDeg: []float64{90, 85}, YawDeg: []float64{0, 0},
		AngPSrfDeg: []float64{0, 0}, AngYSrfDeg: []float64{0, 0}, AngPObtDeg: []float64{0, 0}, AngYObtDeg: []float64{0, 0},
	}
}

func TestExportCSVHeaderAndRowCount(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, samplePlots()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 { // header + 2 rows
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "t,rx,ry,rz,rmag") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
}
