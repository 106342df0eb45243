package reconcile

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"mnp-alarm/core/utils"
)

// Compared field names, in the order they are diffed.
const (
	FieldNetworkID = "network_id"
	FieldOwnerID   = "owner_id"
)

// Record is the canonical, comparable shape of one subscriber number.
// A nil field means the value was not supplied; nil equals only nil.
type Record struct {
	NetworkID *string `json:"network_id"`
	OwnerID   *string `json:"owner_id"`
}

// Group holds subscriber numbers and their reference records in reference
// order. The zero value is an empty group.
type Group struct {
	numbers []string
	records map[string]Record
}

// GroupOf builds a group from records ordered by number. Sources without a
// natural order use it.
func GroupOf(records map[string]Record) Group {
	numbers := make([]string, 0, len(records))
	for number := range records {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	g := Group{numbers: numbers, records: make(map[string]Record, len(records))}
	for number, rec := range records {
		g.records[number] = rec
	}
	return g
}

// Add appends number to the group.
func (g *Group) Add(number string, rec Record) error {
	if _, dup := g.records[number]; dup {
		return fmt.Errorf("duplicate number %s", number)
	}
	if g.records == nil {
		g.records = make(map[string]Record)
	}
	g.numbers = append(g.numbers, number)
	g.records[number] = rec
	return nil
}

// Numbers returns the group's subscriber numbers in reference order.
func (g Group) Numbers() []string {
	return slices.Clone(g.numbers)
}

// Record returns the reference record of number.
func (g Group) Record(number string) (Record, bool) {
	rec, ok := g.records[number]
	return rec, ok
}

// Len returns the number of subscriber numbers.
func (g Group) Len() int {
	return len(g.numbers)
}

// Live maps subscriber numbers to their normalized lookup records.
type Live map[string]Record

// ReferenceSet holds the groups (countries) in reference order.
// It is loaded once per run and never mutated by the engine.
type ReferenceSet struct {
	names  []string
	groups map[string]Group
}

// SetOf builds a reference set from groups ordered by name.
func SetOf(groups map[string]Group) ReferenceSet {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	r := ReferenceSet{names: names, groups: make(map[string]Group, len(groups))}
	for name, g := range groups {
		r.groups[name] = g
	}
	return r
}

// Add appends a group to the set.
func (r *ReferenceSet) Add(name string, g Group) error {
	if _, dup := r.groups[name]; dup {
		return fmt.Errorf("duplicate group %s", name)
	}
	if r.groups == nil {
		r.groups = make(map[string]Group)
	}
	r.names = append(r.names, name)
	r.groups[name] = g
	return nil
}

// GroupNames returns the group names in iteration order.
func (r ReferenceSet) GroupNames() []string {
	return slices.Clone(r.names)
}

// Group returns the named group, or an empty group.
func (r ReferenceSet) Group(name string) Group {
	return r.groups[name]
}

// Len returns the number of groups.
func (r ReferenceSet) Len() int {
	return len(r.names)
}

// RawRecord is a provider-shaped lookup response decoded from JSON.
type RawRecord map[string]any

// LookupResult is the outcome of one number's lookup.
// A non-nil Err marks a lookup failure and Raw is then ignored.
type LookupResult struct {
	Raw RawRecord
	Err error
}

// Failed reports whether the lookup could not be completed.
func (r LookupResult) Failed() bool {
	return r.Err != nil
}

// Discrepancy describes one mismatched field for one subscriber number.
// Observed is the live value, Expected the reference value.
type Discrepancy struct {
	Number   string  `json:"number"`
	Field    string  `json:"field"`
	Observed *string `json:"observed"`
	Expected *string `json:"expected"`
}

// String renders the alert line, e.g. "1555 network_id - B expected A".
func (d Discrepancy) String() string {
	return fmt.Sprintf("%s %s - %s expected %s", d.Number, d.Field, utils.Nullable(d.Observed), utils.Nullable(d.Expected))
}

// RunResult maps each group name to whether it matched exactly.
type RunResult map[string]bool

// Matched reports whether every group matched.
func (r RunResult) Matched() bool {
	for _, ok := range r {
		if !ok {
			return false
		}
	}
	return true
}

// GroupReport holds the per-group detail of a run.
type GroupReport struct {
	// Name is the group name.
	Name string `json:"name"`
	// Numbers is the count of subscriber numbers looked up.
	Numbers int `json:"numbers"`
	// Matched is true when no discrepancy was found.
	Matched bool `json:"matched"`
	// Discrepancies lists mismatches in reference key order.
	Discrepancies []Discrepancy `json:"discrepancies"`
	// LookupFailures counts numbers whose lookup failed individually.
	LookupFailures int `json:"lookup_failures"`
	// BatchError is set when the whole group's lookup failed.
	BatchError string `json:"batch_error,omitempty"`
}

// Report is the outcome of one run. It is returned to the caller and never stored.
type Report struct {
	// Results is the per-group match status.
	Results RunResult `json:"results"`
	// Groups holds per-group detail in group order.
	Groups []GroupReport `json:"groups"`
	// AlertBody is the unescaped alert text; empty when every group matched.
	AlertBody string `json:"alert_body,omitempty"`
	// Alerted is true when the alert sender was invoked.
	Alerted bool `json:"alerted"`
	// AlertError holds the delivery error, if any. It does not affect Results.
	AlertError string `json:"alert_error,omitempty"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// Duration is the wall time of the run.
	Duration string `json:"duration"`
}

// Matched reports whether every group matched.
func (r *Report) Matched() bool {
	return r.Results.Matched()
}
