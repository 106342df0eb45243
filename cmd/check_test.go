package cmd

import (
	"bytes"
	"testing"

	"mnp-alarm/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	report := &reconcile.Report{
		Results: reconcile.RunResult{"DE": true, "US": false},
		Groups: []reconcile.GroupReport{
			{Name: "DE", Numbers: 1, Matched: true},
			{Name: "US", Numbers: 2, Matched: false, LookupFailures: 2, BatchError: "hlr unreachable"},
		},
		AlertBody: "1555 network_id - null expected A\n",
		Duration:  "1ms",
	}

	var buf bytes.Buffer
	printReport(&buf, report, true)
	out := buf.String()

	assert.Contains(t, out, "DE           matched")
	assert.Contains(t, out, "US           DRIFT")
	assert.Contains(t, out, "batch error: hlr unreachable")
	assert.Contains(t, out, "1555 network_id - null expected A\n(dry run, not sent)")
	assert.Equal(t, 1, countDrift(report))
}

func TestPrintReport_AlertFailed(t *testing.T) {
	report := &reconcile.Report{
		Results:    reconcile.RunResult{"US": false},
		Groups:     []reconcile.GroupReport{{Name: "US", Numbers: 1}},
		AlertBody:  "x\n",
		AlertError: "status 503",
	}

	var buf bytes.Buffer
	printReport(&buf, report, false)
	assert.Contains(t, buf.String(), "(not delivered: status 503)")
}
