package hickory

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var errIgnoreThisRow = errors.New("ignore this row")

// ColumnReader reads one row of numeric columns per call. io.EOF signals the
// end of the input.
type ColumnReader interface {
	Read(context.Context) ([]float64, error)
}

// CsvColumnReader reads strictly formatted CSV rows of floating point
// values. Unparsable lines are ignored and logged as warnings.
type CsvColumnReader struct {
	csvReader *csv.Reader
	lineCount int
	logger    logrus.FieldLogger
}

func NewCsvColumnReader(input io.Reader) *CsvColumnReader {
	r := csv.NewReader(input)
	r.FieldsPerRecord = -1
	return &CsvColumnReader{
		csvReader: r,
		logger:    logrus.WithField("tag", "CsvColumnReader"),
	}
}

func (r *CsvColumnReader) Read(ctx context.Context) ([]float64, error) {
	record, err := r.csvReader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}

	r.lineCount++

	if err != nil {
		logger := r.logger.WithField("lineNum", r.lineCount)
		switch err.(type) {
		case *csv.ParseError:
			logger.WithError(err).Warn("unable to parse CSV line, ignoring")
			return nil, errIgnoreThisRow
		default:
			logger.WithError(err).Error("unable to read CSV")
			return nil, err
		}
	}

	return parseFloatColumns(record, r.logger, r.lineCount)
}

var relaxedSeparators = regexp.MustCompile(`[,\s]+`)

// RelaxedColumnReader splits lines on any run of commas and whitespace, for
// inputs that are not strictly CSV. This is the CLI default.
type RelaxedColumnReader struct {
	scanner   *bufio.Scanner
	lineCount int
	logger    logrus.FieldLogger
}

func NewRelaxedColumnReader(input io.Reader) *RelaxedColumnReader {
	return &RelaxedColumnReader{
		scanner: bufio.NewScanner(input),
		logger:  logrus.WithField("tag", "RelaxedColumnReader"),
	}
}

func (r *RelaxedColumnReader) Read(ctx context.Context) ([]float64, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	r.lineCount++

	line := strings.TrimSpace(r.scanner.Text())
	if line == "" {
		return nil, errIgnoreThisRow
	}

	return parseFloatColumns(relaxedSeparators.Split(line, -1), r.logger, r.lineCount)
}

func parseFloatColumns(fields []string, logger logrus.FieldLogger, lineNum int) ([]float64, error) {
	row := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"lineNum": lineNum,
				"field":   field,
			}).Warn("non numeric field, ignoring line")
			return nil, errIgnoreThisRow
		}
		row = append(row, v)
	}
	return row, nil
}

// ReadAllColumns drains a ColumnReader into column major data. Ignorable
// rows are skipped; rows whose column count differs from the first kept row
// are skipped with a warning.
func ReadAllColumns(ctx context.Context, r ColumnReader) ([][]float64, error) {
	logger := logrus.WithField("tag", "ReadAllColumns")

	var columns [][]float64
	for {
		row, err := r.Read(ctx)
		if err == io.EOF {
			return columns, nil
		}
		if err == errIgnoreThisRow {
			continue
		}
		if err != nil {
			return nil, err
		}

		if columns == nil {
			columns = make([][]float64, len(row))
		}
		if len(row) != len(columns) {
			logger.WithFields(logrus.Fields{
				"want": len(columns),
				"got":  len(row),
			}).Warn("inconsistent column count, ignoring line")
			continue
		}

		for i, v := range row {
			columns[i] = append(columns[i], v)
		}
	}
}
