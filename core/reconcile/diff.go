package reconcile

import "mnp-alarm/core/utils"

// Diff compares live against reference and returns one Discrepancy per
// mismatched field. Numbers are visited in reference key order and, per number,
// network_id precedes owner_id. A number missing from live compares as all-nil.
// Values are compared exactly, without any normalization.
func Diff(reference Group, live Live) []Discrepancy {
	var diff []Discrepancy
	for _, number := range reference.Numbers() {
		expected, _ := reference.Record(number)
		observed := live[number]

		if !utils.EqualNullable(expected.NetworkID, observed.NetworkID) {
			diff = append(diff, Discrepancy{
				Number:   number,
				Field:    FieldNetworkID,
				Observed: observed.NetworkID,
				Expected: expected.NetworkID,
			})
		}
		if !utils.EqualNullable(expected.OwnerID, observed.OwnerID) {
			diff = append(diff, Discrepancy{
				Number:   number,
				Field:    FieldOwnerID,
				Observed: observed.OwnerID,
				Expected: expected.OwnerID,
			})
		}
	}
	return diff
}
