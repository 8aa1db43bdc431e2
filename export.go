package ascent

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportCSV writes a Plots time series to w in the column layout of
// SPEC_FULL.md §4: one row per step, columns
// t,rx,ry,rz,rmag,vx,vy,vz,vy_srf,vt_srf,vmag,mass,F,a,q,pitch,yaw,angle_ps,angle_ys,angle_po,angle_yo.
// This replaces the teacher's channel-streamed Cosmographia/JSON-catalog
// exporter (export.go) with the single encoding/csv.Writer it also used for
// its plain-CSV branch, dropping the interpolated-trajectory and catalog
// machinery this simulator has no use for.
func ExportCSV(w io.Writer, p Plots) error {
	cw := csv.NewWriter(w)
	header := []string{
		"t", "rx", "ry", "rz", "rmag", "vx", "vy", "vz", "vy_srf", "vt_srf", "vmag",
		"mass", "F", "a", "q", "pitch", "yaw", "angle_ps", "angle_ys", "angle_po", "angle_yo",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("ascent: writing csv header: %w", err)
	}

	n := len(p.T)
	for i := 0; i < n; i++ {
		row := []string{
			f(p.T[i]), f(p.Rx[i]), f(p.Ry[i]), f(p.Rz[i]), f(p.Rmag[i]),
			f(p.Vx[i]), f(p.Vy[i]), f(p.Vz[i]), f(p.VySrf[i]), f(p.VtSrf[i]), f(p.Vmag[i]),
			f(p.Mass[i]), f(p.Thrust[i]), f(p.Accel[i]), f(p.DynamicPressure[i]),
			f(p.PitchDeg[i]), f(p.YawDeg[i]),
			f(p.AngPSrfDeg[i]), f(p.AngYSrfDeg[i]), f(p.AngPObtDeg[i]), f(p.AngYObtDeg[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ascent: writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
