package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := DefaultNormalizer()

	t.Run("ProviderResponse", func(t *testing.T) {
		raw := RawRecord{
			"source":   "MNP",
			"ported":   float64(1),
			"ownerID":  "mTINKOFF",
			"mccmnc":   "250062",
			"dnis":     "79216503431",
			"id":       float64(59554872),
			"cached":   float64(0),
			"result":   float64(0),
			"provider": map[string]any{"name": "mnp"},
		}

		rec := n.Normalize(raw)
		require.NotNil(t, rec.NetworkID)
		require.NotNil(t, rec.OwnerID)
		assert.Equal(t, "250062", *rec.NetworkID)
		assert.Equal(t, "mTINKOFF", *rec.OwnerID)
	})

	t.Run("MissingFields", func(t *testing.T) {
		rec := n.Normalize(RawRecord{"result": float64(1)})
		assert.Nil(t, rec.NetworkID)
		assert.Nil(t, rec.OwnerID)
	})

	t.Run("MalformedFields", func(t *testing.T) {
		rec := n.Normalize(RawRecord{"mccmnc": float64(250062), "ownerID": nil})
		assert.Nil(t, rec.NetworkID)
		assert.Nil(t, rec.OwnerID)
	})

	t.Run("EmptyStringIsNotNull", func(t *testing.T) {
		rec := n.Normalize(RawRecord{"mccmnc": "", "ownerID": "X"})
		require.NotNil(t, rec.NetworkID)
		assert.Equal(t, "", *rec.NetworkID)
	})

	t.Run("NilRecord", func(t *testing.T) {
		assert.Equal(t, Record{}, n.Normalize(nil))
	})

	t.Run("CustomFields", func(t *testing.T) {
		custom := Normalizer{NetworkField: "network", OwnerField: "owner"}
		rec := custom.Normalize(RawRecord{"network": "A", "owner": "X", "mccmnc": "B"})
		assert.Equal(t, "A", *rec.NetworkID)
		assert.Equal(t, "X", *rec.OwnerID)
	})
}

func TestNormalizer_NormalizeResult(t *testing.T) {
	n := DefaultNormalizer()

	failed := LookupResult{Raw: RawRecord{"mccmnc": "A"}, Err: errors.New("timeout")}
	assert.Equal(t, Record{}, n.NormalizeResult(failed))

	ok := n.NormalizeResult(LookupResult{Raw: RawRecord{"mccmnc": "A"}})
	require.NotNil(t, ok.NetworkID)
	assert.Equal(t, "A", *ok.NetworkID)
	assert.Nil(t, ok.OwnerID)
}
