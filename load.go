package singlelink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Coordinates accepted by the loader are whole numbers in
// [MinCoordinate, MaxCoordinate].
const (
	MinCoordinate = 0
	MaxCoordinate = 1000
)

// Load failure kinds. A *LoadError always wraps exactly one of these.
var (
	ErrOpen        = errors.New("singlelink: cannot open input")
	ErrHeader      = errors.New("singlelink: malformed count header")
	ErrRecord      = errors.New("singlelink: malformed object record")
	ErrCoordinate  = errors.New("singlelink: coordinate out of range or not a whole number")
	ErrDuplicateID = errors.New("singlelink: duplicate object id")
)

// LoadError describes why an input could not be loaded.
type LoadError struct {
	// Path is the input file, if the input came from a file.
	Path string
	// Line is the 1-based line the failure was detected on, or 0.
	Line int
	// Kind is one of ErrOpen, ErrHeader, ErrRecord, ErrCoordinate or
	// ErrDuplicateID.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the failure kind and the underlying cause to
// errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrOpen, Err: err}
	}
	defer f.Close()

	col, err := Load(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return col, nil
}

// Load reads a "count=N" header followed by N "<id> <x> <y>" records and
// returns one singleton cluster per record, in input order. Blank lines
// between records are skipped and anything after the Nth record is ignored.
//
// Any failure aborts the load immediately: clusters built so far are
// released and the returned collection is nil.
func Load(r io.Reader) (*Collection, error) {
	sc := bufio.NewScanner(r)
	line := 0

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, &LoadError{Line: 1, Kind: ErrHeader, Err: err}
		}
		return nil, &LoadError{Line: 1, Kind: ErrHeader, Err: errors.New("empty input")}
	}
	line++
	count, err := parseHeader(sc.Text())
	if err != nil {
		return nil, &LoadError{Line: line, Kind: ErrHeader, Err: err}
	}

	col := NewCollection(min(count, 4096))
	fail := func(le *LoadError) (*Collection, error) {
		col.Clear()
		return nil, le
	}

	seen := make(map[int]int, min(count, 4096))
	for col.Len() < count {
		if !sc.Scan() {
			cause := sc.Err()
			if cause == nil {
				cause = fmt.Errorf("expected %d objects, found %d", count, col.Len())
			}
			return fail(&LoadError{Line: line + 1, Kind: ErrRecord, Err: cause})
		}
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		p, le := parseRecord(text)
		if le != nil {
			le.Line = line
			return fail(le)
		}
		if first, dup := seen[p.ID]; dup {
			return fail(&LoadError{Line: line, Kind: ErrDuplicateID,
				Err: fmt.Errorf("id %d already defined on line %d", p.ID, first)})
		}
		seen[p.ID] = line

		c := NewCluster(1)
		if err := c.Append(p); err != nil {
			return fail(&LoadError{Line: line, Kind: ErrRecord, Err: err})
		}
		col.Add(c)
	}

	return col, nil
}

func parseHeader(s string) (int, error) {
	rest, ok := strings.CutPrefix(strings.TrimRight(s, " \t\r"), "count=")
	if !ok {
		return 0, fmt.Errorf("expected \"count=<N>\", got %q", s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("count %q is not an integer", rest)
	}
	if n < 0 {
		return 0, fmt.Errorf("count must be >= 0, got %d", n)
	}
	return n, nil
}

// parseRecord parses "<id> <x> <y>". The returned error has no line set.
func parseRecord(s string) (Point, *LoadError) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Point{}, &LoadError{Kind: ErrRecord, Err: fmt.Errorf("expected 3 fields, got %d", len(fields))}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, &LoadError{Kind: ErrRecord, Err: fmt.Errorf("id %q is not an integer", fields[0])}
	}

	var coords [2]float64
	for k, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, &LoadError{Kind: ErrRecord, Err: fmt.Errorf("coordinate %q is not a number", f)}
		}
		if v != math.Trunc(v) || v < MinCoordinate || v > MaxCoordinate {
			return Point{}, &LoadError{Kind: ErrCoordinate,
				Err: fmt.Errorf("coordinate %s is not a whole number in [%d, %d]", f, MinCoordinate, MaxCoordinate)}
		}
		coords[k] = v
	}

	return Point{ID: id, X: coords[0], Y: coords[1]}, nil
}
