package source

import (
	"fmt"
	"sort"

	"tm-migrator/internal/common"
	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/metrics"
	"tm-migrator/internal/naming"
	"tm-migrator/internal/record"
)

// extract is everything a ready Context owns. The exported fields are the
// snapshot payload; the rest is rebuilt by index.
type extract struct {
	Territories  []record.Territory          `json:"territories"`
	Rules        []record.AssignmentRule     `json:"assignmentRules"`
	Items        []record.AssignmentRuleItem `json:"assignmentRuleItems"`
	Users        []record.UserAssignment     `json:"userAssignments"`
	Shares       []record.RecordShare        `json:"recordShares"`
	SharingRules []metadata.SharingRule      `json:"sharingRules"`

	// TerritoryNames and RuleNames map source IDs to DeveloperNames.
	TerritoryNames map[string]string `json:"territoryDeveloperNames"`
	RuleNames      map[string]string `json:"ruleDeveloperNames"`
	Renamed        int               `json:"renamed"`

	territoryByID    map[string]record.Territory
	territoryByName  map[string]record.Territory
	ruleByID         map[string]record.AssignmentRule
	rulesByTerritory map[string][]record.AssignmentRule
	itemsByRule      map[string][]record.AssignmentRuleItem

	diags diagnostic.Diagnostics
}

// tm1Name is the name sharing rules use to refer to a territory.
func tm1Name(t record.Territory) string {
	if t.DeveloperName != "" {
		return t.DeveloperName
	}

	return t.Name
}

func (e *extract) index() {
	e.territoryByID = common.IndexBy(e.Territories, func(t record.Territory) string { return t.Id })
	e.territoryByName = common.IndexBy(e.Territories, tm1Name)
	e.ruleByID = common.IndexBy(e.Rules, func(r record.AssignmentRule) string { return r.Id })
	e.rulesByTerritory = common.GroupBy(e.Rules, func(r record.AssignmentRule) string { return r.TerritoryId })
	e.itemsByRule = common.GroupBy(e.Items, func(i record.AssignmentRuleItem) string { return i.RuleId })

	for _, items := range e.itemsByRule {
		sort.SliceStable(items, func(a, b int) bool { return items[a].SortOrder < items[b].SortOrder })
	}
}

// assignNames gives every territory and rule a DeveloperName. Territories
// keep their TM1 DeveloperName when it is free; rules are named after
// their display name.
func (e *extract) assignNames(m *metrics.Metrics) {
	e.TerritoryNames = make(map[string]string, len(e.Territories))
	e.RuleNames = make(map[string]string, len(e.Rules))
	e.Renamed = 0

	territories := naming.NewAllocator()

	for _, t := range e.Territories {
		name, renamed := territories.Assign(tm1Name(t))
		e.TerritoryNames[t.Id] = name

		m.IncrementName(record.KindTerritory.String(), renamed)
		e.noteRename(record.KindTerritory, t.Id, tm1Name(t), name, renamed)
	}

	rules := naming.NewAllocator()

	for _, r := range e.Rules {
		name, renamed := rules.Assign(r.Name)
		e.RuleNames[r.Id] = name

		m.IncrementName(record.KindAssignmentRule.String(), renamed)
		e.noteRename(record.KindAssignmentRule, r.Id, r.Name, name, renamed)
	}

	e.Renamed = territories.Renamed() + rules.Renamed()
}

func (e *extract) noteRename(kind record.Kind, id, display, name string, renamed bool) {
	if !renamed {
		return
	}

	e.diags.AddInfo(
		"developer_name_suffixed",
		fmt.Sprintf("%q collides with an earlier record and is named %s", display, name),
		kind.String(),
		id,
	)
}

// check reports references that point outside the extract. They are kept
// as warnings; the transform stage skips what it cannot attach.
func (e *extract) check() {
	for _, t := range e.Territories {
		if t.ParentTerritoryId == "" {
			continue
		}

		if _, ok := e.territoryByID[t.ParentTerritoryId]; !ok {
			e.orphan(record.KindTerritory, t.Id, "parent territory", t.ParentTerritoryId)
		}
	}

	for _, r := range e.Rules {
		if _, ok := e.territoryByID[r.TerritoryId]; !ok {
			e.orphan(record.KindAssignmentRule, r.Id, "territory", r.TerritoryId)
		}
	}

	for _, i := range e.Items {
		if _, ok := e.ruleByID[i.RuleId]; !ok {
			e.orphan(record.KindAssignmentRuleItem, i.Id, "rule", i.RuleId)
		}
	}

	for _, u := range e.Users {
		if _, ok := e.territoryByID[u.TerritoryId]; !ok {
			e.orphan(record.KindUserAssignment, u.Id, "territory", u.TerritoryId)
		}
	}

	for _, s := range e.Shares {
		if s.TerritoryId == "" {
			continue
		}

		if _, ok := e.territoryByID[s.TerritoryId]; !ok {
			e.orphan(record.KindRecordShare, s.Id, "territory", s.TerritoryId)
		}
	}

	for _, r := range e.SharingRules {
		for _, g := range r.Groups() {
			if !g.IsTerritory() {
				continue
			}

			if _, ok := e.territoryByName[g.Member]; !ok {
				e.diags.AddWarning(
					"unknown_group_member",
					fmt.Sprintf("rule %s refers to territory %q, which is not in the extract", r.FullName, g.Member),
					"SharingRule",
					r.Object+"."+r.FullName,
				)
			}
		}
	}
}

func (e *extract) orphan(kind record.Kind, id, what, ref string) {
	e.diags.AddWarning(
		"orphan_reference",
		fmt.Sprintf("%s %s is not in the extract", what, ref),
		kind.String(),
		id,
	)
}
