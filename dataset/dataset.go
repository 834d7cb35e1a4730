package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/flipset/flipset"
	"github.com/katalvlaran/flipset/weights"
)

// Directory names inside the data root.
const (
	VotesDir   = "electoralVotes"
	ResultsDir = "electionResults"
)

// stateCodeLen is the length of a state code; longer codes are districts.
const stateCodeLen = 2

// Dataset is everything the analyzer needs for a batch run.
type Dataset struct {
	Weights   *weights.Table
	Elections []flipset.Election
}

// Load reads both directories from fsys. Elections are sorted by year.
func Load(fsys fs.FS) (*Dataset, error) {
	table, err := LoadWeights(fsys)
	if err != nil {
		return nil, err
	}
	elections, err := LoadElections(fsys)
	if err != nil {
		return nil, err
	}

	return &Dataset{Weights: table, Elections: elections}, nil
}

// LoadWeights reads every electoralVotes year file into a weights.Table.
func LoadWeights(fsys fs.FS) (*weights.Table, error) {
	files, err := yearFiles(fsys, VotesDir)
	if err != nil {
		return nil, err
	}

	entries := make([]weights.Entry, 0, len(files))
	for _, f := range files {
		rows, err := readRows(fsys, f.path)
		if err != nil {
			return nil, err
		}
		app := make(weights.Apportionment, len(rows))
		for _, rec := range rows {
			row := rec.fields
			if len(row) < 2 {
				return nil, rowError(f.path, rec.line, "want 2 fields, got %d", len(row))
			}
			ev, err := parseCount(row[1])
			if err != nil {
				return nil, rowError(f.path, rec.line, "electoral votes %q", row[1])
			}
			app[cleanCell(row[0])] = ev
		}
		entries = append(entries, weights.Entry{EffectiveYear: f.year, Apportionment: app})
	}

	table, err := weights.NewTable(entries...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", VotesDir, err)
	}

	return table, nil
}

// LoadElections reads every electionResults year file.
func LoadElections(fsys fs.FS) ([]flipset.Election, error) {
	files, err := yearFiles(fsys, ResultsDir)
	if err != nil {
		return nil, err
	}

	elections := make([]flipset.Election, 0, len(files))
	seen := make(map[int]string, len(files))
	for _, f := range files {
		if prev, dup := seen[f.year]; dup {
			return nil, fmt.Errorf("%w: %d in %s and %s", ErrDuplicateYear, f.year, prev, f.path)
		}
		seen[f.year] = f.path

		rows, err := readRows(fsys, f.path)
		if err != nil {
			return nil, err
		}
		units, err := parseResults(f.path, rows)
		if err != nil {
			return nil, err
		}
		elections = append(elections, flipset.Election{Year: f.year, Units: units})
	}

	return elections, nil
}

// district is a parsed district row before it is attached to its state.
type district struct {
	number int
	result flipset.DistrictResult
}

// parseResults turns result rows into units: states in file order, each
// with its districts ordered by number.
func parseResults(file string, rows []record) ([]flipset.UnitResult, error) {
	var (
		order     []string
		margins   = make(map[string]int)
		districts = make(map[string][]district)
	)
	for _, rec := range rows {
		row := rec.fields
		if len(row) < 3 {
			return nil, rowError(file, rec.line, "want at least 3 fields, got %d", len(row))
		}
		code := cleanCell(row[0])
		d, err := parseCount(row[1])
		if err != nil {
			return nil, rowError(file, rec.line, "d_votes %q", row[1])
		}
		r, err := parseCount(row[2])
		if err != nil {
			return nil, rowError(file, rec.line, "r_votes %q", row[2])
		}
		margin := d - r

		if len(code) <= stateCodeLen {
			if _, dup := margins[code]; dup {
				return nil, rowError(file, rec.line, "state %q listed twice", code)
			}
			margins[code] = margin
			order = append(order, code)
			continue
		}

		number, err := strconv.Atoi(code[stateCodeLen:])
		if err != nil || number < 1 {
			return nil, rowError(file, rec.line, "district code %q", code)
		}
		state := code[:stateCodeLen]
		districts[state] = append(districts[state], district{
			number: number,
			result: flipset.DistrictResult{Code: code, Margin: margin},
		})
	}

	units := make([]flipset.UnitResult, 0, len(order))
	for _, code := range order {
		ds, ok := districts[code]
		if !ok {
			units = append(units, flipset.UnitResult{Code: code, Tally: flipset.Statewide{Margin: margins[code]}})
			continue
		}
		delete(districts, code)

		sort.Slice(ds, func(i, j int) bool { return ds[i].number < ds[j].number })
		results := make([]flipset.DistrictResult, len(ds))
		for k, d := range ds {
			if k > 0 && d.number == ds[k-1].number {
				return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateDistrict, d.result.Code, file)
			}
			results[k] = d.result
		}
		units = append(units, flipset.UnitResult{
			Code:  code,
			Tally: flipset.Districted{Margin: margins[code], Districts: results},
		})
	}

	for state := range districts {
		return nil, fmt.Errorf("%w: %s in %s", ErrOrphanDistrict, state, file)
	}

	return units, nil
}

// yearFile is a CSV file whose name starts with a four-digit year.
type yearFile struct {
	year int
	path string
}

// yearFiles lists dir's year files in name order.
func yearFiles(fsys fs.FS, dir string) ([]yearFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var out []yearFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(path.Ext(name), ".csv") || len(name) < 4 {
			continue
		}
		year, err := strconv.Atoi(name[:4])
		if err != nil {
			continue
		}
		out = append(out, yearFile{year: year, path: path.Join(dir, name)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, dir)
	}

	return out, nil
}

// record is one data row and the file line it started on.
type record struct {
	line   int
	fields []string
}

// readRows reads a CSV file and drops its header row.
func readRows(fsys fs.FS, name string) ([]record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []record
	for first := true; ; first = false {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if first || isBlank(row) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, record{line: line, fields: row})
	}

	return rows, nil
}

// parseCount parses a non-negative count, tolerating thousands separators.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(cleanCell(s), ",", ""))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}

	return n, nil
}

func cleanCell(s string) string {
	return strings.TrimSpace(s)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cleanCell(cell) != "" {
			return false
		}
	}

	return true
}

// rowError reports a malformed data row at its 1-based file line.
func rowError(file string, line int, format string, args ...any) error {
	return fmt.Errorf("%w: %s line %d: %s", ErrMalformedRow, file, line, fmt.Sprintf(format, args...))
}
