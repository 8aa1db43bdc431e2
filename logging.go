package ascent

import (
	"os"

	kitlog "github.com/go-kit/log"
)

// NewLogger builds a structured logfmt logger, modernizing the teacher's
// SCLogInit (spacecraft.go) from the legacy go-kit/kit/log import path to
// go-kit/log and from a per-spacecraft name to a per-subsystem tag, per
// SPEC_FULL.md §2.1.
func NewLogger(subsys string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(l, "subsys", subsys, "ts", kitlog.DefaultTimestampUTC)
}
