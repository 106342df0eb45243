package reference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"mnp-alarm/core/reconcile"
	"mnp-alarm/core/utils"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Accepted record keys. The legacy registry file uses the HLR provider's
// names, so both spellings are read.
var (
	networkKeys = []string{reconcile.FieldNetworkID, reconcile.DefaultNetworkField}
	ownerKeys   = []string{reconcile.FieldOwnerID, reconcile.DefaultOwnerField}
)

// errShape reports a document that is not group -> number -> fields.
var errShape = errors.New("expected a mapping of groups to mappings of numbers")

// Parse decodes a reference document of the shape group -> number -> fields.
// name selects the format by extension. Groups and numbers keep the order in
// which they appear in the document.
func Parse(data []byte, name string) (reconcile.ReferenceSet, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		set, err := parseYAML(data)
		if err != nil {
			return reconcile.ReferenceSet{}, fmt.Errorf("failed to parse yaml reference %s: %w", name, err)
		}
		return set, nil
	default:
		set, err := parseJSON(data)
		if err != nil {
			return reconcile.ReferenceSet{}, fmt.Errorf("failed to parse json reference %s: %w", name, err)
		}
		return set, nil
	}
}

func parseJSON(data []byte) (reconcile.ReferenceSet, error) {
	var set reconcile.ReferenceSet
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return set, err
	}
	for dec.More() {
		groupName, err := objectKey(dec)
		if err != nil {
			return set, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return set, fmt.Errorf("group %s: %w", groupName, err)
		}

		var group reconcile.Group
		for dec.More() {
			number, err := objectKey(dec)
			if err != nil {
				return set, err
			}
			var fields map[string]any
			if err := dec.Decode(&fields); err != nil {
				return set, fmt.Errorf("group %s number %s: %w", groupName, number, err)
			}
			if err := addRecord(&group, number, fields); err != nil {
				return set, fmt.Errorf("group %s: %w", groupName, err)
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return set, err
		}
		if err := set.Add(groupName, group); err != nil {
			return set, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return set, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return set, errors.New("unexpected data after the reference document")
	}
	return set, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: got %v", errShape, tok)
	}
	return nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: got %v", errShape, tok)
	}
	return key, nil
}

// parseYAML walks the syntax tree so that keys are taken as written. Decoding
// into Go maps would turn an unquoted 79216503431 into an integer, and a
// leading zero or plus sign would not survive.
func parseYAML(data []byte) (reconcile.ReferenceSet, error) {
	var set reconcile.ReferenceSet

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return set, err
	}
	if len(file.Docs) != 1 {
		return set, fmt.Errorf("expected one yaml document, got %d", len(file.Docs))
	}

	groups, err := mappingValues(file.Docs[0].Body)
	if err != nil {
		return set, err
	}
	for _, g := range groups {
		groupName, err := scalarKey(g)
		if err != nil {
			return set, err
		}
		numbers, err := mappingValues(g.Value)
		if err != nil {
			return set, fmt.Errorf("group %s: %w", groupName, err)
		}

		var group reconcile.Group
		for _, n := range numbers {
			number, err := scalarKey(n)
			if err != nil {
				return set, fmt.Errorf("group %s: %w", groupName, err)
			}
			var fields map[string]any
			if err := yaml.NodeToValue(n.Value, &fields); err != nil {
				return set, fmt.Errorf("group %s number %s: %w", groupName, number, err)
			}
			if err := addRecord(&group, number, fields); err != nil {
				return set, fmt.Errorf("group %s: %w", groupName, err)
			}
		}
		if err := set.Add(groupName, group); err != nil {
			return set, err
		}
	}
	return set, nil
}

// mappingValues returns the entries of a block or flow mapping.
func mappingValues(node ast.Node) ([]*ast.MappingValueNode, error) {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}, nil
	case nil, *ast.NullNode:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: got %s", errShape, n.Type())
	}
}

// scalarKey returns the key exactly as written, without quotes.
func scalarKey(entry *ast.MappingValueNode) (string, error) {
	if _, ok := entry.Key.(ast.ScalarNode); !ok || entry.Key.IsMergeKey() {
		return "", fmt.Errorf("unsupported key %s", entry.Key.String())
	}
	return entry.Key.GetToken().Value, nil
}

func addRecord(group *reconcile.Group, number string, fields map[string]any) error {
	rec, err := recordFromFields(fields)
	if err != nil {
		return fmt.Errorf("number %s: %w", number, err)
	}
	return group.Add(number, rec)
}

// recordFromFields rejects values that are neither strings nor null, since a
// silently dropped reference value would be reported as drift on every run.
func recordFromFields(fields map[string]any) (reconcile.Record, error) {
	for _, key := range append(append([]string{}, networkKeys...), ownerKeys...) {
		if v, ok := fields[key]; ok && v != nil && utils.StringPtr(v) == nil {
			return reconcile.Record{}, fmt.Errorf("field %s must be a string, got %T", key, v)
		}
	}
	return reconcile.Record{
		NetworkID: utils.FirstStringField(fields, networkKeys...),
		OwnerID:   utils.FirstStringField(fields, ownerKeys...),
	}, nil
}
