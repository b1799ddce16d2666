package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"tm-migrator/internal/common"
	"tm-migrator/internal/sentinel"
)

// FileReader is the part of a record source the metadata reader needs.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// FilePath is the location of an object's sharing-rule file under dir.
func FilePath(dir, object string) string {
	return path.Join(dir, "sharingRules", object+".sharingRules")
}

// DecodeSharingRules decodes every rule of an object's document, territory or not.
func DecodeSharingRules(object string, data []byte) ([]SharingRule, error) {
	var doc xmlDocument

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &sentinel.MetadataParseError{Object: object, Err: err}
	}

	var rules []SharingRule

	groups := []struct {
		variant Variant
		rules   []xmlRule
	}{
		{VariantCriteria, doc.CriteriaRules},
		{VariantOwner, doc.OwnerRules},
		{VariantTerritory, doc.TerritoryRules},
	}

	for _, g := range groups {
		for _, r := range g.rules {
			rule, err := r.toRule(object, g.variant)
			if err != nil {
				return nil, &sentinel.MetadataParseError{Object: object, Err: err}
			}

			rules = append(rules, rule)
		}
	}

	return rules, nil
}

// ParseSharingRules decodes an object's document and keeps only the rules
// that reference a territory group on either side.
func ParseSharingRules(object string, data []byte) ([]SharingRule, error) {
	rules, err := DecodeSharingRules(object, data)
	if err != nil {
		return nil, err
	}

	return common.Filter(rules, SharingRule.ReferencesTerritory), nil
}

// ObjectRules is the outcome of reading one object's sharing-rule file.
type ObjectRules struct {
	Object    string
	Present   bool
	Rules     []SharingRule
	Discarded int
}

// ReadObject reads one object's sharing-rule file and splits its rules
// into kept territory rules and a count of discarded ones. A missing file
// is not an error: the object simply has no rules.
func ReadObject(src FileReader, dir, object string) (ObjectRules, error) {
	out := ObjectRules{Object: object}

	data, err := src.ReadFile(FilePath(dir, object))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}

		return out, fmt.Errorf("read %s sharing rules: %w", object, err)
	}

	all, err := DecodeSharingRules(object, data)
	if err != nil {
		return out, err
	}

	out.Present = true
	out.Rules = common.Filter(all, SharingRule.ReferencesTerritory)
	out.Discarded = len(all) - len(out.Rules)

	return out, nil
}

// ReadObjectRules reads and filters the sharing rules of one object.
func ReadObjectRules(src FileReader, dir, object string) ([]SharingRule, error) {
	res, err := ReadObject(src, dir, object)
	if err != nil {
		return nil, err
	}

	return res.Rules, nil
}

// MarshalSharingRules renders rules as a sharing-rule document. Rules are
// grouped by variant in criteria, owner, territory order.
func MarshalSharingRules(rules []SharingRule) ([]byte, error) {
	doc := xmlDocument{Xmlns: Namespace}

	for _, r := range rules {
		switch r.Variant {
		case VariantCriteria:
			doc.CriteriaRules = append(doc.CriteriaRules, toXMLRule(r))
		case VariantOwner:
			doc.OwnerRules = append(doc.OwnerRules, toXMLRule(r))
		case VariantTerritory:
			doc.TerritoryRules = append(doc.TerritoryRules, toXMLRule(r))
		default:
			return nil, fmt.Errorf("rule %s has unknown variant %q: %w", r.FullName, r.Variant, sentinel.ErrType)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode sharing rules: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
