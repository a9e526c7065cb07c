package palette

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
)

// HeaderStyle selects the column naming written to the backing file.
type HeaderStyle int

const (
	// HeaderLower writes "name,r,g,b".
	HeaderLower HeaderStyle = iota
	// HeaderTitle writes "Name,R,G,B".
	HeaderTitle
)

// ParseHeaderStyle maps "lower" / "title" to a HeaderStyle.
func ParseHeaderStyle(s string) (HeaderStyle, error) {
	switch strings.ToLower(s) {
	case "", "lower":
		return HeaderLower, nil
	case "title":
		return HeaderTitle, nil
	}
	return HeaderLower, perrors.New(perrors.ErrCodeInvalidInput, "invalid header style: %q (must be 'lower' or 'title')", s)
}

// String returns the config name of the style.
func (h HeaderStyle) String() string {
	if h == HeaderTitle {
		return "title"
	}
	return "lower"
}

func (h HeaderStyle) columns() []string {
	if h == HeaderTitle {
		return []string{"Name", "R", "G", "B"}
	}
	return []string{"name", "r", "g", "b"}
}

// Update names the channels to overwrite. Nil fields are left untouched.
type Update struct {
	R, G, B *float64
}

// Channel is a convenience for building an Update field.
func Channel(v float64) *float64 { return &v }

// IsZero reports whether the update touches no channel.
func (u Update) IsZero() bool {
	return u.R == nil && u.G == nil && u.B == nil
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithHeader sets the header style used when the store creates its file. An
// existing file keeps its own header through every rewrite.
func WithHeader(h HeaderStyle) StoreOption {
	return func(s *Store) { s.header = h }
}

// WithDefaults replaces the seed set written when the file does not exist.
func WithDefaults(entries []Entry) StoreOption {
	return func(s *Store) { s.defaults = entries }
}

// Store is a palette persisted to a single CSV file.
//
// Store holds no entries in memory; each call reads the file. It is not safe
// for concurrent use by multiple processes or goroutines.
type Store struct {
	path     string
	header   HeaderStyle
	defaults []Entry
}

// NewStore returns a store backed by the file at path. The file is not
// touched until the first call.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path, header: HeaderLower, defaults: Defaults()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Header returns the header style used when creating the file.
func (s *Store) Header() HeaderStyle { return s.header }

// Read loads all entries in file order. A missing file is first initialized
// with the default seed set.
func (s *Store) Read() ([]Entry, error) {
	t, err := s.load()
	if err != nil {
		return nil, err
	}
	return t.entries, nil
}

// Add appends an entry and rewrites the file. Existing entries with the same
// name are kept.
func (s *Store) Add(name string, r, g, b float64) error {
	t, err := s.load()
	if err != nil {
		return err
	}
	t.add(NewEntry(name, r, g, b))
	return s.write(t)
}

// Update overwrites the supplied channels of the first entry named name and
// rewrites the file. If no entry matches, the file is left untouched and a
// NOT_FOUND error is returned.
func (s *Store) Update(name string, u Update) error {
	t, err := s.load()
	if err != nil {
		return err
	}
	i := Find(t.entries, name)
	if i < 0 {
		return perrors.New(perrors.ErrCodeNotFound, "%s not found", name)
	}
	e := &t.entries[i]
	if u.R != nil {
		e.R = *u.R
	}
	if u.G != nil {
		e.G = *u.G
	}
	if u.B != nil {
		e.B = *u.B
	}
	t.set(i, *e)
	return s.write(t)
}

// Delete removes every entry named name and returns how many were removed.
// The file is only rewritten when something was removed.
func (s *Store) Delete(name string) (int, error) {
	t, err := s.load()
	if err != nil {
		return 0, err
	}
	removed := t.remove(name)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.write(t)
}

// Lookup returns the first entry named name.
func (s *Store) Lookup(name string) (Entry, error) {
	entries, err := s.Read()
	if err != nil {
		return Entry{}, err
	}
	if i := Find(entries, name); i >= 0 {
		return entries[i], nil
	}
	return Entry{}, perrors.New(perrors.ErrCodeNotFound, "%s not found", name)
}

// load parses the backing file, creating it from the defaults when missing.
func (s *Store) load() (*table, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		t := newTable(s.header)
		for _, e := range s.defaults {
			t.add(e)
		}
		if err := s.write(t); err != nil {
			return nil, err
		}
		return t, nil
	}
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "open palette %s", s.path)
	}
	defer f.Close()

	return decode(f)
}

// write replaces the whole file with t.
func (s *Store) write(t *table) error {
	var buf bytes.Buffer
	if err := encode(&buf, t); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "encode palette")
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return perrors.Wrap(perrors.ErrCodeInternal, err, "create palette dir")
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "write palette %s", s.path)
	}
	return nil
}

// table is a parsed palette file. Records keep every field as read, so the
// header spelling, column order and unknown columns survive a rewrite.
type table struct {
	header  []string
	idx     []int // record positions of name, r, g, b
	records [][]string
	entries []Entry
}

func newTable(h HeaderStyle) *table {
	return &table{header: h.columns(), idx: []int{0, 1, 2, 3}}
}

func (t *table) add(e Entry) {
	t.records = append(t.records, make([]string, len(t.header)))
	t.entries = append(t.entries, e)
	t.set(len(t.entries)-1, e)
}

// set writes the known fields of e into record i. Other fields are untouched.
func (t *table) set(i int, e Entry) {
	rec := t.records[i]
	rec[t.idx[0]] = e.Name
	rec[t.idx[1]] = formatChannel(e.R)
	rec[t.idx[2]] = formatChannel(e.G)
	rec[t.idx[3]] = formatChannel(e.B)
	t.entries[i] = e
}

func (t *table) remove(name string) int {
	n := 0
	for i, e := range t.entries {
		if e.Name == name {
			continue
		}
		t.entries[n], t.records[n] = e, t.records[i]
		n++
	}
	removed := len(t.entries) - n
	t.entries, t.records = t.entries[:n], t.records[:n]
	return removed
}

func encode(w io.Writer, t *table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	return cw.WriteAll(t.records)
}

// decode parses a palette file. Header names are matched case-insensitively
// and extra columns are carried along untouched.
func decode(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, perrors.New(perrors.ErrCodeMalformedStore, "palette file is empty")
	}
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeMalformedStore, err, "read header")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	t := &table{header: header, idx: make([]int, 4)}
	for i, want := range HeaderLower.columns() {
		c, ok := cols[want]
		if !ok {
			return nil, perrors.New(perrors.ErrCodeMalformedStore, "missing column %q", want)
		}
		t.idx[i] = c
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeMalformedStore, err, "row %d", row)
		}
		e, err := decodeRow(rec, t.idx, row)
		if err != nil {
			return nil, err
		}
		t.records = append(t.records, rec)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

func decodeRow(rec []string, idx []int, row int) (Entry, error) {
	field := func(i int) (string, error) {
		if idx[i] >= len(rec) {
			return "", perrors.New(perrors.ErrCodeMalformedStore, "row %d: missing column %q", row, HeaderLower.columns()[i])
		}
		return rec[idx[i]], nil
	}

	name, err := field(0)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Name: name}
	for i, dst := range []*float64{&e.R, &e.G, &e.B} {
		raw, err := field(i + 1)
		if err != nil {
			return Entry{}, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Entry{}, perrors.Wrap(perrors.ErrCodeMalformedStore, err, "row %d: column %q", row, HeaderLower.columns()[i+1])
		}
		*dst = v
	}
	return e, nil
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders an entry the way it appears in the file.
func (e Entry) String() string {
	return fmt.Sprintf("%s,%s,%s,%s", e.Name, formatChannel(e.R), formatChannel(e.G), formatChannel(e.B))
}
