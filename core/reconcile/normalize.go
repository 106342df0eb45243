package reconcile

import "mnp-alarm/core/utils"

// Provider field names used by the HLR service.
const (
	DefaultNetworkField = "mccmnc"
	DefaultOwnerField   = "ownerID"
)

// Normalizer maps provider-specific response keys onto a Record.
type Normalizer struct {
	// NetworkField is the provider key carrying the network identifier.
	NetworkField string
	// OwnerField is the provider key carrying the owner identifier.
	OwnerField string
}

// DefaultNormalizer returns a Normalizer for the HLR provider's field names.
func DefaultNormalizer() Normalizer {
	return Normalizer{NetworkField: DefaultNetworkField, OwnerField: DefaultOwnerField}
}

// Normalize converts a raw response into a Record. It never fails: a missing
// or non-string value becomes nil, and any string (including "") is kept as-is.
func (n Normalizer) Normalize(raw RawRecord) Record {
	return Record{
		NetworkID: utils.StringField(raw, n.NetworkField),
		OwnerID:   utils.StringField(raw, n.OwnerField),
	}
}

// NormalizeResult normalizes a lookup result; a failed lookup yields an all-nil Record.
func (n Normalizer) NormalizeResult(res LookupResult) Record {
	if res.Failed() {
		return Record{}
	}
	return n.Normalize(res.Raw)
}
