package hickory

import "context"

// Config is the explicit configuration for the convenience entry points.
// The resolution order is: explicit per-call option, then Config, then the
// built-in default. There is no environment sniffing.
type Config struct {
	// Show controls whether the convenience entry points display the
	// figure. nil means "show unless a file is written".
	Show *bool

	// Addr is the display server listen address. Empty picks a free
	// localhost port.
	Addr string

	// OpenBrowser controls opening the system browser on show. nil means
	// true.
	OpenBrowser *bool
}

func (c *Config) withDefaults() *Config {
	if c == nil {
		return &Config{}
	}
	return c
}

func (c *Config) openBrowser() bool {
	if c.OpenBrowser != nil {
		return *c.OpenBrowser
	}
	return true
}

// resolveShow applies the documented resolution order for the show flag.
func resolveShow(explicit *bool, cfg *Config, fileGiven bool) bool {
	if explicit != nil {
		return *explicit
	}
	if cfg != nil && cfg.Show != nil {
		return *cfg.Show
	}
	return !fileGiven
}

// XYOptions configures the PlotXY convenience entry point.
type XYOptions struct {
	PlotOptions

	XErr, YErr []float64

	Style Style

	// File, when set, writes the figure there. Writing a file turns the
	// default show off.
	File string

	// Show overrides the show default for this call.
	Show *bool

	Config *Config
}

// PlotXY makes a plot of x vs y in one call: points, or points with error
// bars when XErr/YErr are given. When showing, it blocks until ctx is
// canceled.
func PlotXY(ctx context.Context, x, y []float64, o *XYOptions) (*Plot, error) {
	if o == nil {
		o = &XYOptions{}
	}

	plt := NewPlot(o.PlotOptions)

	var err error
	if o.XErr != nil || o.YErr != nil {
		err = plt.ErrorBar(x, y, o.XErr, o.YErr, &o.Style)
	} else {
		err = plt.Plot(x, y, &o.Style)
	}
	if err != nil {
		return nil, err
	}

	if o.File != "" {
		if err := plt.Write(o.File); err != nil {
			return nil, err
		}
	}

	if resolveShow(o.Show, o.Config, o.File != "") {
		if err := plt.Show(ctx, o.Config); err != nil {
			return nil, err
		}
	}

	return plt, nil
}

// HistXOptions configures the PlotHist convenience entry point.
type HistXOptions struct {
	PlotOptions

	Hist HistOptions

	File string
	Show *bool

	Config *Config
}

// PlotHist makes a histogram plot of data in one call.
func PlotHist(ctx context.Context, data []float64, o *HistXOptions) (*Plot, error) {
	if o == nil {
		o = &HistXOptions{}
	}

	plt := NewPlot(o.PlotOptions)
	plt.Hist(data, &o.Hist)

	// binning errors surface at render time; force a render now so the
	// caller gets them synchronously
	if _, _, err := plt.render(); err != nil {
		return nil, err
	}

	if o.File != "" {
		if err := plt.Write(o.File); err != nil {
			return nil, err
		}
	}

	if resolveShow(o.Show, o.Config, o.File != "") {
		if err := plt.Show(ctx, o.Config); err != nil {
			return nil, err
		}
	}

	return plt, nil
}
