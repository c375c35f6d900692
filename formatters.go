package hickory

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// ScalarTicks is the tick marker for linear axes. It keeps the default tick
// positions but formats every major label with minimal-digit %g formatting,
// so labels never carry trailing zeros or math markup.
type ScalarTicks struct{}

func (ScalarTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			// minor tick
			continue
		}
		ticks[i].Label = FormatScalarTick(ticks[i].Value)
	}
	return ticks
}

// LogTicks is the tick marker for log axes. Major labels on decades far from
// 1 are written in scientific notation.
type LogTicks struct{}

func (LogTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.LogTicks{Prec: -1}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = FormatLogTick(ticks[i].Value)
	}
	return ticks
}

// FormatScalarTick formats a linear axis tick label.
func FormatScalarTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatLogTick formats a log axis tick label, using "1e<k>" notation on
// decades at or beyond 1e4 and 1e-4.
func FormatLogTick(v float64) string {
	if v > 0 {
		exp := math.Log10(v)
		r := math.Round(exp)
		if math.Abs(exp-r) < 1e-9 && (r >= 4 || r <= -4) {
			return fmt.Sprintf("1e%d", int(r))
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
