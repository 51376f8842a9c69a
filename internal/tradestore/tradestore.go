package tradestore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"trading-assistant/internal/logger"
	"trading-assistant/internal/market"
	"trading-assistant/internal/types"
)

// Load failures are internal only; the public LoadDay boundary collapses
// every one of them to "no data" after logging.
var (
	ErrNoFile        = errors.New("no day file for date")
	ErrAmbiguousDate = errors.New("multiple day files embed the same date")
	ErrEmptyFile     = errors.New("day file has no data rows")
)

var fileDatePattern = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)

// Store owns the per-date cache of loaded trading days. One mutex guards
// the whole cache; load volume is low enough that per-key locking would be
// overkill.
type Store struct {
	dataDir    string
	filePrefix string

	mu    sync.Mutex
	cache map[string]*types.TradingDay
}

func New(dataDir, filePrefix string) *Store {
	return &Store{
		dataDir:    dataDir,
		filePrefix: filePrefix,
		cache:      make(map[string]*types.TradingDay),
	}
}

// AvailableDates scans the data directory and returns the distinct dates
// embedded in day-file names, sorted ascending. Unparseable filenames are
// skipped.
func (s *Store) AvailableDates(ctx context.Context) []time.Time {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		logger.Warn(ctx, "Data directory not readable", "dir", s.dataDir, "error", err)
		return nil
	}

	seen := map[string]time.Time{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		d, ok := s.dateFromFilename(e.Name())
		if !ok {
			continue
		}
		seen[dateKey(d)] = d
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// LoadDay returns the cached trading day for a date, loading it on first
// use. ok is false when the day has no data for any reason; absence and
// load failure are indistinguishable to callers.
func (s *Store) LoadDay(ctx context.Context, date time.Time) (*types.TradingDay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dateKey(date)
	if day, ok := s.cache[key]; ok {
		return day, day != nil
	}

	day, err := s.loadDay(ctx, date)
	if err != nil {
		if !errors.Is(err, ErrNoFile) {
			logger.Warn(ctx, "Day load failed, treating as no data",
				"date", key, "error", err)
		}
		// Negative result is cached too; the data snapshot is fixed per run.
		s.cache[key] = nil
		return nil, false
	}

	s.cache[key] = day
	logger.Info(ctx, "Loaded trading day", "date", key, "file", day.Source, "records", len(day.Records))
	return day, true
}

// loadDay finds and parses the single day file for a date. Two files
// embedding the same date token is an explicit error rather than a silent
// filesystem-order pick.
func (s *Store) loadDay(ctx context.Context, date time.Time) (*types.TradingDay, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if d, ok := s.dateFromFilename(e.Name()); ok && d.Equal(truncate(date)) {
			matches = append(matches, e.Name())
		}
	}

	switch {
	case len(matches) == 0:
		return nil, ErrNoFile
	case len(matches) > 1:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousDate, strings.Join(matches, ", "))
	}

	path := filepath.Join(s.dataDir, matches[0])
	records, err := s.parseFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	return &types.TradingDay{
		Date:    truncate(date),
		Source:  path,
		Records: records,
	}, nil
}

// parseFile reads one semicolon-delimited day file. Columns are located by
// header name so extra columns are ignored; rows that fail numeric parsing
// are skipped with a log line.
func (s *Store) parseFile(ctx context.Context, path string) ([]types.TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, nil
	}

	cols := columnIndex(rows[0])
	for _, required := range []string{"Instrument", "Quantity", "Price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%s: missing required column %s", path, required)
		}
	}

	records := make([]types.TradeRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, ok := parseRow(row, cols)
		if !ok {
			logger.Warn(ctx, "Skipping malformed trade row", "file", path, "line", i+2)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, cols map[string]int) (types.TradeRecord, bool) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	qty, err := strconv.ParseFloat(field("Quantity"), 64)
	if err != nil || qty < 0 {
		return types.TradeRecord{}, false
	}
	price, err := strconv.ParseFloat(field("Price"), 64)
	if err != nil || price <= 0 {
		return types.TradeRecord{}, false
	}
	instrument := market.Normalize(field("Instrument"))
	if instrument == "" {
		return types.TradeRecord{}, false
	}

	return types.TradeRecord{
		Timestamp:   field("Timestamp"),
		ClientName:  field("ClientName"),
		AccountName: field("AccountName"),
		Instrument:  instrument,
		Quantity:    qty,
		Price:       price,
		Notional:    qty * price,
		Market:      market.Lookup(instrument).Market,
	}, true
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// dateFromFilename extracts the embedded YYYYMMDD token from a day-file
// name like ClientExecution_20251025.csv.
func (s *Store) dateFromFilename(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, s.filePrefix+"_") || !strings.HasSuffix(name, ".csv") {
		return time.Time{}, false
	}
	m := fileDatePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse("20060102", m[0])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
