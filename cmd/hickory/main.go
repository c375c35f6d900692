package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/esheldon/hickory"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type options struct {
	Title  string `short:"t" long:"title" description:"figure title"`
	XLabel string `short:"x" long:"xlabel" description:"x axis label"`
	YLabel string `short:"y" long:"ylabel" description:"y axis label"`
	XLog   bool   `long:"xlog" description:"logarithmic x axis"`
	YLog   bool   `long:"ylog" description:"logarithmic y axis"`

	Hist    bool     `long:"hist" description:"histogram the first input column instead of plotting x/y pairs"`
	Bins    int      `long:"bins" description:"number of histogram bins"`
	BinSize *float64 `long:"binsize" description:"histogram bin width, overrides --bins"`

	Marker    string  `short:"m" long:"marker" description:"marker name or code, or 'cycle'"`
	LineStyle string  `short:"l" long:"linestyle" description:"line style name, or 'cycle'"`
	Color     string  `short:"c" long:"color" description:"color name or hex, or 'cycle'"`
	Alpha     float64 `long:"alpha" default:"1" description:"opacity between 0 and 1"`
	Label     string  `long:"label" description:"legend label for the data"`

	Output string `short:"o" long:"output" description:"write the figure to this file instead of displaying it"`
	Show   bool   `long:"show" description:"display the figure in a browser even when --output is given"`
	Addr   string `long:"addr" default:"127.0.0.1:0" description:"display server listen address"`
	CSV    bool   `long:"csv" description:"parse input as strict CSV instead of whitespace separated columns"`

	Debug bool `long:"debug" description:"enable debug logging"`

	Args struct {
		File string `positional-arg-name:"file" description:"input file, defaults to stdin"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if opts.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logger := logrus.WithField("tag", "main")

	if err := run(context.Background(), opts); err != nil {
		logger.WithError(err).Error("hickory failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	input := io.Reader(os.Stdin)
	if opts.Args.File != "" {
		f, err := os.Open(opts.Args.File)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	var reader hickory.ColumnReader
	if opts.CSV {
		reader = hickory.NewCsvColumnReader(input)
	} else {
		reader = hickory.NewRelaxedColumnReader(input)
	}

	columns, err := hickory.ReadAllColumns(ctx, reader)
	if err != nil {
		return err
	}
	if len(columns) == 0 || len(columns[0]) == 0 {
		return fmt.Errorf("no data read from input")
	}

	plotOpts := hickory.PlotOptions{
		Title:  opts.Title,
		XLabel: opts.XLabel,
		YLabel: opts.YLabel,
		XLog:   opts.XLog,
		YLog:   opts.YLog,
	}

	show := opts.Show || opts.Output == ""
	cfg := hickory.Config{
		Show: hickory.Opt(show),
		Addr: opts.Addr,
	}

	if opts.Hist {
		return runHist(ctx, columns[0], opts, plotOpts, cfg)
	}
	return runXY(ctx, columns, opts, plotOpts, cfg)
}

func runXY(ctx context.Context, columns [][]float64, opts options, plotOpts hickory.PlotOptions, cfg hickory.Config) error {
	var x, y []float64
	if len(columns) == 1 {
		// A single column is plotted against its index.
		y = columns[0]
		x = hickory.Linspace(0, float64(len(y)-1), len(y))
	} else {
		x = columns[0]
		y = columns[1]
	}

	_, err := hickory.PlotXY(ctx, x, y, &hickory.XYOptions{
		PlotOptions: plotOpts,
		Style:       styleFromOptions(opts),
		File:        opts.Output,
		Config:      &cfg,
	})
	return err
}

func runHist(ctx context.Context, data []float64, opts options, plotOpts hickory.PlotOptions, cfg hickory.Config) error {
	hist := hickory.HistOptions{
		Bins:    opts.Bins,
		BinSize: opts.BinSize,
		Alpha:   opts.Alpha,
		Label:   opts.Label,
	}
	if opts.Color != "" {
		hist.Color = hickory.Opt(opts.Color)
	}

	_, err := hickory.PlotHist(ctx, data, &hickory.HistXOptions{
		PlotOptions: plotOpts,
		Hist:        hist,
		File:        opts.Output,
		Config:      &cfg,
	})
	return err
}

func styleFromOptions(opts options) hickory.Style {
	var st hickory.Style
	if opts.Marker != "" {
		st.Marker = hickory.Opt(opts.Marker)
	}
	if opts.LineStyle != "" {
		st.LineStyle = hickory.Opt(opts.LineStyle)
	}
	if opts.Color != "" {
		st.Color = hickory.Opt(opts.Color)
	}
	st.Alpha = opts.Alpha
	st.Label = opts.Label
	return st
}
