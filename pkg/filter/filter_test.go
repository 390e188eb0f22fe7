package filter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/logfilter/pkg/diag"
	"github.com/ccollicutt/logfilter/pkg/parser"
)

type scenario struct {
	Name     string   `yaml:"name"`
	Level    string   `yaml:"level"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Input    string   `yaml:"input"`
	Output   []string `yaml:"output"`
	Warnings []string `yaml:"warnings"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	if s == "" {
		return nil
	}
	d, err := parser.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func outputLines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestFilter_Scenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			criteria, err := NewCriteria(sc.Level, mustDate(t, sc.Start), mustDate(t, sc.End))
			require.NoError(t, err)

			var out bytes.Buffer
			rec := diag.NewRecorder()
			f := New(criteria, &out, rec)

			stats, err := f.Run(context.Background(), parser.NewReaderSource(strings.NewReader(sc.Input), sc.Name))
			require.NoError(t, err)

			assert.Equal(t, sc.Output, outputLines(&out))
			assert.Equal(t, len(sc.Output), stats.Matched)
			assert.Equal(t, len(sc.Warnings), stats.Malformed)
			assert.Equal(t, stats.Lines, stats.Matched+stats.Excluded+stats.Malformed)

			if len(sc.Warnings) == 0 {
				assert.Empty(t, rec.Records())
			} else {
				assert.Equal(t, sc.Warnings, rec.Messages())
			}
		})
	}
}

func TestFilter_WarningIdentifiesLine(t *testing.T) {
	rec := diag.NewRecorder()
	var out bytes.Buffer
	f := New(Criteria{}, &out, rec)

	input := "[2024-01-01 10:00:00] INFO: ok\ngarbage line\n"
	_, err := f.Run(context.Background(), parser.NewReaderSource(strings.NewReader(input), "mem"))
	require.NoError(t, err)

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0].Level)
	assert.Equal(t, "garbage line", records[0].Fields["line"])
	assert.Equal(t, 2, records[0].Fields["line_num"])
	assert.Equal(t, "[2024-01-01 10:00:00] INFO: ok\n", out.String())
}

func TestFilter_ZeroMatchesIsNotAnError(t *testing.T) {
	criteria, err := NewCriteria("ERROR", nil, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	stats, err := New(criteria, &out, diag.NewRecorder()).Run(context.Background(),
		parser.NewReaderSource(strings.NewReader("[2024-01-01 10:00:00] INFO: ok\n"), "mem"))
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, Stats{Lines: 1, Excluded: 1}, stats)
}

func TestFilter_LongLineDoesNotAbortRun(t *testing.T) {
	long := "[2024-01-01 10:00:01] INFO: " + strings.Repeat("m", 2*1024*1024)
	input := "[2024-01-01 10:00:00] INFO: before\n" + long + "\n[2024-01-01 10:00:02] INFO: after\n"

	var out bytes.Buffer
	rec := diag.NewRecorder()
	stats, err := New(Criteria{}, &out, rec).Run(context.Background(),
		parser.NewReaderSource(strings.NewReader(input), "mem"))
	require.NoError(t, err)

	assert.Equal(t, Stats{Lines: 3, Matched: 3}, stats)
	assert.Equal(t, input, out.String())
	assert.Empty(t, rec.Records())
}

func TestFilter_SourceError(t *testing.T) {
	var out bytes.Buffer
	_, err := New(Criteria{}, &out, diag.NewRecorder()).Run(context.Background(),
		parser.NewFileSource(filepath.Join(t.TempDir(), "missing.log")))
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestFilter_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := New(Criteria{}, &out, diag.NewRecorder()).Run(ctx,
		parser.NewReaderSource(strings.NewReader("[2024-01-01 10:00:00] INFO: ok\n"), "mem"))
	assert.ErrorIs(t, err, context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestFilter_WriteError(t *testing.T) {
	_, err := New(Criteria{}, failingWriter{}, diag.NewRecorder()).Run(context.Background(),
		parser.NewReaderSource(strings.NewReader("[2024-01-01 10:00:00] INFO: ok\n"), "mem"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing output")
}
