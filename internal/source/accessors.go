package source

import (
	"slices"

	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/record"
	"tm-migrator/internal/report"
)

// Territories returns every Territory in extract order.
func (c *Context) Territories() ([]record.Territory, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.Territories), nil
}

// Territory looks up a Territory by source ID.
func (c *Context) Territory(id string) (record.Territory, bool, error) {
	if err := c.life.Guard(); err != nil {
		return record.Territory{}, false, err
	}

	t, ok := c.data.territoryByID[id]

	return t, ok, nil
}

// TerritoryForMember looks up the Territory a sharing-rule group member
// names. Members use the TM1 DeveloperName.
func (c *Context) TerritoryForMember(member string) (record.Territory, bool, error) {
	if err := c.life.Guard(); err != nil {
		return record.Territory{}, false, err
	}

	t, ok := c.data.territoryByName[member]

	return t, ok, nil
}

// AssignmentRules returns every AssignmentRule in extract order.
func (c *Context) AssignmentRules() ([]record.AssignmentRule, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.Rules), nil
}

// Rule looks up an AssignmentRule by source ID.
func (c *Context) Rule(id string) (record.AssignmentRule, bool, error) {
	if err := c.life.Guard(); err != nil {
		return record.AssignmentRule{}, false, err
	}

	r, ok := c.data.ruleByID[id]

	return r, ok, nil
}

// RulesForTerritory returns the rules owned by a territory.
func (c *Context) RulesForTerritory(territoryID string) ([]record.AssignmentRule, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.rulesByTerritory[territoryID]), nil
}

// ItemsForRule returns a rule's criteria items ordered by SortOrder.
func (c *Context) ItemsForRule(ruleID string) ([]record.AssignmentRuleItem, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.itemsByRule[ruleID]), nil
}

// UserAssignments returns every UserAssignment in extract order.
func (c *Context) UserAssignments() ([]record.UserAssignment, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.Users), nil
}

// RecordShares returns every RecordShare in extract order.
func (c *Context) RecordShares() ([]record.RecordShare, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.Shares), nil
}

// SharingRules returns the territory sharing rules of every object.
func (c *Context) SharingRules() ([]metadata.SharingRule, error) {
	if err := c.life.Guard(); err != nil {
		return nil, err
	}

	return slices.Clone(c.data.SharingRules), nil
}

// TerritoryDeveloperName returns the DeveloperName assigned to a territory.
func (c *Context) TerritoryDeveloperName(id string) (string, bool, error) {
	if err := c.life.Guard(); err != nil {
		return "", false, err
	}

	name, ok := c.data.TerritoryNames[id]

	return name, ok, nil
}

// RuleDeveloperName returns the DeveloperName assigned to an AssignmentRule.
func (c *Context) RuleDeveloperName(id string) (string, bool, error) {
	if err := c.life.Guard(); err != nil {
		return "", false, err
	}

	name, ok := c.data.RuleNames[id]

	return name, ok, nil
}

// Renamed returns how many DeveloperNames needed a collision suffix.
func (c *Context) Renamed() (int, error) {
	if err := c.life.Guard(); err != nil {
		return 0, err
	}

	return c.data.Renamed, nil
}

// Counts returns the number of records of each kind.
func (c *Context) Counts() (report.Counts, error) {
	if err := c.life.Guard(); err != nil {
		return report.Counts{}, err
	}

	return c.data.counts(), nil
}

// Diagnostics returns the findings recorded while building.
func (c *Context) Diagnostics() (diagnostic.Diagnostics, error) {
	if err := c.life.Guard(); err != nil {
		return diagnostic.Diagnostics{}, err
	}

	return c.data.diags, nil
}

func (e *extract) counts() report.Counts {
	return report.Counts{
		Territory:          len(e.Territories),
		AssignmentRule:     len(e.Rules),
		AssignmentRuleItem: len(e.Items),
		UserAssignment:     len(e.Users),
		RecordShare:        len(e.Shares),
		SharingRules:       len(e.SharingRules),
	}
}
