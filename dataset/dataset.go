// Package dataset reads interpolation points (x, y) from two column text files.
//
// Columns are separated by whitespace or, if that fails, by commas. Files have
// no header. Rows with a missing value are dropped, and the remaining points
// are sorted by x.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/errwrap"

	"github.com/numerics/newtonpoly/utils"
)

// MinPoints is the minimum number of points a Table holds.
const MinPoints = 2

var (
	// ErrTooFewPoints is returned when fewer than MinPoints points remain
	// after dropping the rows with missing values.
	ErrTooFewPoints = errors.New("too few points")

	// ErrColumns is returned when a row has more than two columns.
	ErrColumns = errors.New("expected two columns")
)

// missing lists the tokens read as a missing value, compared case insensitively.
var missing = map[string]bool{
	"":     true,
	"nan":  true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"none": true,
}

// Table is a set of interpolation points sorted by increasing x.
type Table struct {
	X, Y []float64

	// Dropped is the number of rows removed because of a missing value.
	Dropped int

	// HasDuplicates is set when two points share the same x. Such a table
	// cannot be interpolated.
	HasDuplicates bool
}

// Len returns the number of points.
func (t *Table) Len() int {
	return len(t.X)
}

// Degree returns the degree of the polynomial interpolating the table.
func (t *Table) Degree() int {
	return len(t.X) - 1
}

// Range returns the smallest interval containing all the nodes. A degenerate
// interval is widened by 0.5 on each side.
func (t *Table) Range() (a, b float64) {
	a, b = utils.MinMax(t.X)
	if a == b {
		a, b = a-0.5, b+0.5
	}
	return
}

func (t *Table) Less(i, j int) bool {
	return t.X[i] < t.X[j]
}

func (t *Table) Swap(i, j int) {
	t.X[i], t.X[j] = t.X[j], t.X[i]
	t.Y[i], t.Y[j] = t.Y[j], t.Y[i]
}

// Parse reads a Table from r.
func Parse(r io.Reader) (*Table, error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errwrap.Wrapf("Failed to read dataset: {{err}}", err)
	}

	rows, err := splitFields(string(data))
	if err != nil {

		if !strings.Contains(string(data), ",") {
			return nil, errwrap.Wrapf("Failed to parse dataset: {{err}}", err)
		}

		if rows, err = splitComma(string(data)); err != nil {
			return nil, errwrap.Wrapf("Failed to parse dataset as comma separated values: {{err}}", err)
		}
	}

	table := new(Table)

	for _, row := range rows {
		if math.IsNaN(row[0]) || math.IsNaN(row[1]) {
			table.Dropped++
			continue
		}
		table.X = append(table.X, row[0])
		table.Y = append(table.Y, row[1])
	}

	if table.Len() < MinPoints {
		return nil, fmt.Errorf("%w: %d valid rows, at least %d are required", ErrTooFewPoints, table.Len(), MinPoints)
	}

	sort.Stable(table)

	table.HasDuplicates = !utils.AllDistinct(table.X)

	return table, nil
}

func splitFields(data string) (rows [][2]float64, err error) {

	scanner := bufio.NewScanner(strings.NewReader(data))

	for line := 1; scanner.Scan(); line++ {

		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		var row [2]float64
		if row, err = parseRow(fields); err != nil {
			return nil, errwrap.Wrapf(fmt.Sprintf("Failed to parse line %d: {{err}}", line), err)
		}

		rows = append(rows, row)
	}

	return rows, scanner.Err()
}

func splitComma(data string) (rows [][2]float64, err error) {

	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()

		if err == io.EOF {
			return rows, nil
		}

		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)

		var row [2]float64
		if row, err = parseRow(record); err != nil {
			return nil, errwrap.Wrapf(fmt.Sprintf("Failed to parse line %d: {{err}}", line), err)
		}

		rows = append(rows, row)
	}
}

// parseRow parses one or two columns. A missing column is read as NaN.
func parseRow(fields []string) (row [2]float64, err error) {

	if len(fields) > 2 {
		return row, fmt.Errorf("%w, got %d", ErrColumns, len(fields))
	}

	row = [2]float64{math.NaN(), math.NaN()}

	for i, field := range fields {

		field = strings.TrimSpace(field)

		if missing[strings.ToLower(field)] {
			continue
		}

		if row[i], err = strconv.ParseFloat(field, 64); err != nil {
			return row, err
		}
	}

	return
}
