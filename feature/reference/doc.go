// Package reference loads the ported-number reference set.
//
// The reference set maps a group (country) to subscriber numbers and their
// expected network and owner identifiers. It can be read from:
//
//   - file: a local JSON or YAML document
//   - storage: the same document kept as an object in a MinIO/S3 bucket
//   - database: rows of a table with group_name, number, network_id, owner_id
//
// Documents have the shape
//
//	{"RU": {"79216503431": {"network_id": "250062", "owner_id": "mTINKOFF"}}}
//
// and the legacy field names mccmnc and ownerID are accepted as well.
// Groups and numbers keep their document order. YAML keys are read as written,
// so unquoted subscriber numbers are fine.
package reference
