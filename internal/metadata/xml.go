package metadata

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type xmlDocument struct {
	XMLName        xml.Name  `xml:"SharingRules"`
	Xmlns          string    `xml:"xmlns,attr,omitempty"`
	CriteriaRules  []xmlRule `xml:"sharingCriteriaRules"`
	OwnerRules     []xmlRule `xml:"sharingOwnerRules"`
	TerritoryRules []xmlRule `xml:"sharingTerritoryRules"`
}

type xmlRule struct {
	FullName        string              `xml:"fullName"`
	AccessLevel     string              `xml:"accessLevel"`
	AccountSettings *xmlAccountSettings `xml:"accountSettings,omitempty"`
	Description     string              `xml:"description,omitempty"`
	Label           string              `xml:"label,omitempty"`
	SharedTo        xmlGroups           `xml:"sharedTo"`
	BooleanFilter   string              `xml:"booleanFilter,omitempty"`
	CriteriaItems   []xmlCriteriaItem   `xml:"criteriaItems"`
	SharedFrom      *xmlGroups          `xml:"sharedFrom,omitempty"`
}

type xmlAccountSettings struct {
	CaseAccessLevel        string `xml:"caseAccessLevel,omitempty"`
	ContactAccessLevel     string `xml:"contactAccessLevel,omitempty"`
	OpportunityAccessLevel string `xml:"opportunityAccessLevel,omitempty"`
}

type xmlCriteriaItem struct {
	Field     string `xml:"field"`
	Operation string `xml:"operation"`
	Value     string `xml:"value,omitempty"`
}

// xmlGroups holds every child of a sharedTo/sharedFrom element; the element
// name is the group type and the text is the member.
type xmlGroups struct {
	Groups []xmlGroup `xml:",any"`
}

type xmlGroup struct {
	XMLName xml.Name
	Member  string `xml:",chardata"`
}

func (g xmlGroups) single(side string) (SharingGroup, error) {
	switch len(g.Groups) {
	case 0:
		return SharingGroup{}, nil
	case 1:
		return SharingGroup{Type: g.Groups[0].XMLName.Local, Member: strings.TrimSpace(g.Groups[0].Member)}, nil
	default:
		return SharingGroup{}, fmt.Errorf("%s lists %d groups, expected one", side, len(g.Groups))
	}
}

func fromGroup(g SharingGroup) xmlGroups {
	if g.Type == "" {
		return xmlGroups{}
	}

	return xmlGroups{Groups: []xmlGroup{{XMLName: xml.Name{Local: g.Type}, Member: g.Member}}}
}

func (r xmlRule) toRule(object string, variant Variant) (SharingRule, error) {
	sharedTo, err := r.SharedTo.single("sharedTo")
	if err != nil {
		return SharingRule{}, fmt.Errorf("rule %s: %w", r.FullName, err)
	}

	rule := SharingRule{
		Object:        object,
		Variant:       variant,
		FullName:      r.FullName,
		Label:         r.Label,
		Description:   r.Description,
		AccessLevel:   r.AccessLevel,
		SharedTo:      sharedTo,
		BooleanFilter: r.BooleanFilter,
	}

	if r.SharedFrom != nil {
		from, err := r.SharedFrom.single("sharedFrom")
		if err != nil {
			return SharingRule{}, fmt.Errorf("rule %s: %w", r.FullName, err)
		}

		if from.Type != "" {
			rule.SharedFrom = &from
		}
	}

	if s := r.AccountSettings; s != nil {
		rule.AccountSettings = &AccountSettings{
			CaseAccessLevel:        s.CaseAccessLevel,
			ContactAccessLevel:     s.ContactAccessLevel,
			OpportunityAccessLevel: s.OpportunityAccessLevel,
		}
	}

	for _, item := range r.CriteriaItems {
		rule.CriteriaItems = append(rule.CriteriaItems, CriteriaItem(item))
	}

	return rule, nil
}

func toXMLRule(rule SharingRule) xmlRule {
	out := xmlRule{
		FullName:      rule.FullName,
		AccessLevel:   rule.AccessLevel,
		Description:   rule.Description,
		Label:         rule.Label,
		SharedTo:      fromGroup(rule.SharedTo),
		BooleanFilter: rule.BooleanFilter,
	}

	if rule.SharedFrom != nil {
		from := fromGroup(*rule.SharedFrom)
		out.SharedFrom = &from
	}

	if s := rule.AccountSettings; s != nil {
		out.AccountSettings = &xmlAccountSettings{
			CaseAccessLevel:        s.CaseAccessLevel,
			ContactAccessLevel:     s.ContactAccessLevel,
			OpportunityAccessLevel: s.OpportunityAccessLevel,
		}
	}

	for _, item := range rule.CriteriaItems {
		out.CriteriaItems = append(out.CriteriaItems, xmlCriteriaItem(item))
	}

	return out
}
