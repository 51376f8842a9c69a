package tradestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Timestamp;ClientName;AccountName;Instrument;Quantity;Price\n"

func writeDayFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableDates(t *testing.T) {
	dir := t.TempDir()
	writeDayFile(t, dir, "ClientExecution_20251025.csv", header)
	writeDayFile(t, dir, "ClientExecution_20251023.csv", header)
	writeDayFile(t, dir, "ClientExecution_20251024.csv", header)
	// Not matching the naming convention: skipped silently.
	writeDayFile(t, dir, "ClientExecution_notes.csv", header)
	writeDayFile(t, dir, "Other_20251022.csv", header)

	s := New(dir, "ClientExecution")
	dates := s.AvailableDates(context.Background())

	require.Len(t, dates, 3)
	assert.Equal(t, date(2025, 10, 23), dates[0])
	assert.Equal(t, date(2025, 10, 24), dates[1])
	assert.Equal(t, date(2025, 10, 25), dates[2])
}

func TestAvailableDatesMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"), "ClientExecution")
	assert.Empty(t, s.AvailableDates(context.Background()))
}

func TestLoadDay(t *testing.T) {
	dir := t.TempDir()
	writeDayFile(t, dir, "ClientExecution_20251025.csv", header+
		"09:30:15.048448;ABC;ABC_account;0148.hk;10000;27.44\n"+
		"10:15:22.123456;XYZ;XYZ_invest;0700.HK;5000;320.15\n")

	s := New(dir, "ClientExecution")
	day, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	require.True(t, ok)
	require.Len(t, day.Records, 2)

	first := day.Records[0]
	assert.Equal(t, "0148.HK", first.Instrument, "instrument is uppercased")
	assert.Equal(t, "ABC", first.ClientName)
	assert.Equal(t, 10000.0, first.Quantity)
	assert.Equal(t, 27.44, first.Price)
	assert.InDelta(t, 274400.0, first.Notional, 1e-9)
	assert.Equal(t, "Hong Kong", first.Market)
}

func TestLoadDayCaches(t *testing.T) {
	dir := t.TempDir()
	name := "ClientExecution_20251025.csv"
	writeDayFile(t, dir, name, header+"09:30:00;A;A_acc;0148.HK;100;10\n")

	s := New(dir, "ClientExecution")
	day1, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	require.True(t, ok)

	// Removing the file must not matter: the snapshot is cached per run.
	require.NoError(t, os.Remove(filepath.Join(dir, name)))
	day2, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	require.True(t, ok)
	assert.Equal(t, day1, day2)
}

func TestLoadDayNoFile(t *testing.T) {
	s := New(t.TempDir(), "ClientExecution")
	day, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	assert.False(t, ok)
	assert.Nil(t, day)
}

func TestLoadDayAmbiguousDate(t *testing.T) {
	dir := t.TempDir()
	// Two files embedding the same date is reported as no data, not a
	// silent filesystem-order pick.
	writeDayFile(t, dir, "ClientExecution_20251025.csv", header+"09:30:00;A;A_acc;0148.HK;100;10\n")
	writeDayFile(t, dir, "ClientExecution_20251025_v2.csv", header+"09:30:00;A;A_acc;0148.HK;999;99\n")

	s := New(dir, "ClientExecution")
	_, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	assert.False(t, ok)
}

func TestLoadDaySkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writeDayFile(t, dir, "ClientExecution_20251025.csv", header+
		"09:30:00;A;A_acc;0148.HK;not-a-number;10\n"+
		"09:31:00;A;A_acc;0148.HK;100;-5\n"+
		"09:32:00;A;A_acc;0148.HK;100;10\n")

	s := New(dir, "ClientExecution")
	day, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	require.True(t, ok)
	require.Len(t, day.Records, 1)
	assert.Equal(t, 100.0, day.Records[0].Quantity)
}

func TestLoadDayEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeDayFile(t, dir, "ClientExecution_20251025.csv", header)

	s := New(dir, "ClientExecution")
	_, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	assert.False(t, ok)
}

func TestLoadDayExtraColumnsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeDayFile(t, dir, "ClientExecution_20251025.csv",
		"Timestamp;ClientName;AccountName;Venue;Instrument;Quantity;Price;Note\n"+
			"09:30:00;A;A_acc;X;0148.HK;100;10;hello\n")

	s := New(dir, "ClientExecution")
	day, ok := s.LoadDay(context.Background(), date(2025, 10, 25))
	require.True(t, ok)
	require.Len(t, day.Records, 1)
	assert.Equal(t, "0148.HK", day.Records[0].Instrument)
	assert.Equal(t, 10.0, day.Records[0].Price)
}
