package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/minic/diag"
)

func TestReporterStartsAtZero(t *testing.T) {
	r := diag.New(nil)
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.Errors())
}

func TestReporterIncrementsPerCall(t *testing.T) {
	r := diag.New(nil)
	r.Report("a.c", "first")
	r.ReportAt("a.c", 3, 5, "second")
	r.ReportWithToken("a.c", 4, 1, "}", "third")
	assert.Equal(t, 3, r.Count())
	require.Len(t, r.Errors(), 3)
}

func TestReporterFormatsWithAndWithoutPosition(t *testing.T) {
	var buf bytes.Buffer
	r := diag.New(&buf)
	r.Report("a.c", "no position here")
	r.ReportAt("a.c", 10, 2, "has a position")

	out := buf.String()
	assert.Contains(t, out, "a.c: no position here")
	assert.Contains(t, out, "a.c:10:2: has a position")
}

func TestReporterErrorsIsACopy(t *testing.T) {
	r := diag.New(nil)
	r.Report("a.c", "one")
	errs := r.Errors()
	errs[0].Message = "mutated"
	assert.Equal(t, "one", r.Errors()[0].Message)
}

func TestReporterReset(t *testing.T) {
	r := diag.New(nil)
	r.Report("a.c", "one")
	r.Reset()
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.Errors())
}

func TestReporterIndependentInstances(t *testing.T) {
	a := diag.New(nil)
	b := diag.New(nil)
	a.Report("a.c", "err")
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 0, b.Count())
}
