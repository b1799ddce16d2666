package transform

import (
	"fmt"
	"log/slog"
	"slices"

	"tm-migrator/internal/destination"
	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/mapping"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/record"
	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/source"
)

// Options name the TM2 model and type every territory is created in.
type Options struct {
	ModelDeveloperName string
	TypeDeveloperName  string
	// ObjectType of the assignment rules. Empty means Account.
	ObjectType string
}

// Artifacts is everything one transform run produces, before it is written.
type Artifacts struct {
	Territories        []Territory2Row
	Rules              []RuleRow
	RuleItems          []RuleItemRow
	RuleAssociations   []RuleAssociationRow
	UserAssociations   []UserAssociationRow
	ObjectAssociations []ObjectAssociationRow

	// SharingRules are the rewritten rules of each object in Objects.
	Objects      []string
	SharingRules map[string][]metadata.SharingRule

	Mappings    []mapping.Row
	Diagnostics diagnostic.Diagnostics
}

// Transformer builds artifacts from a source context.
type Transformer struct {
	logger *slog.Logger
}

// New creates a Transformer. A nil logger discards output.
func New(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Transformer{logger: logger}
}

// Build derives every artifact from src, which must be ready. Records
// that refer to something outside the extract are skipped with a warning.
func (t *Transformer) Build(src *source.Context, opts Options) (*Artifacts, error) {
	if src == nil {
		return nil, fmt.Errorf("transform: source context is nil: %w", sentinel.ErrType)
	}

	if opts.ModelDeveloperName == "" || opts.TypeDeveloperName == "" {
		return nil, fmt.Errorf("transform: model and type developer names are required: %w", sentinel.ErrType)
	}

	if opts.ObjectType == "" {
		opts.ObjectType = "Account"
	}

	b := &builder{src: src, opts: opts, out: &Artifacts{SharingRules: map[string][]metadata.SharingRule{}}}

	steps := []func() error{
		b.territories,
		b.rules,
		b.users,
		b.shares,
		b.sharingRules,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	t.logger.Info("transform built",
		"territories", len(b.out.Territories),
		"rules", len(b.out.Rules),
		"rule_items", len(b.out.RuleItems),
		"user_associations", len(b.out.UserAssociations),
		"object_associations", len(b.out.ObjectAssociations),
		"warnings", len(b.out.Diagnostics.Warnings),
	)

	return b.out, nil
}

type builder struct {
	src  *source.Context
	opts Options
	out  *Artifacts
}

func (b *builder) territories() error {
	all, err := b.src.Territories()
	if err != nil {
		return err
	}

	ordered, cyclic := parentsFirst(all)
	for _, id := range cyclic {
		b.warn("territory_cycle", "territory is on or below a parent cycle and is deployed without a parent", record.KindTerritory, id)
	}

	for _, t := range ordered {
		name, err := b.territoryName(t.Id)
		if err != nil {
			return err
		}

		parent := ""

		if t.ParentTerritoryId != "" && !slices.Contains(cyclic, t.Id) {
			p, ok, err := b.src.TerritoryDeveloperName(t.ParentTerritoryId)
			if err != nil {
				return err
			}

			if ok {
				parent = p
			}
		}

		b.out.Territories = append(b.out.Territories, Territory2Row{
			DeveloperName:          name,
			Name:                   t.Name,
			Description:            t.Description,
			ParentDeveloperName:    parent,
			ModelDeveloperName:     b.opts.ModelDeveloperName,
			TypeDeveloperName:      b.opts.TypeDeveloperName,
			AccountAccessLevel:     t.AccountAccessLevel,
			OpportunityAccessLevel: t.OpportunityAccessLevel,
			CaseAccessLevel:        t.CaseAccessLevel,
			ContactAccessLevel:     t.ContactAccessLevel,
		})

		b.out.Mappings = append(b.out.Mappings, mapping.Row{
			SourceID:            t.Id,
			DeveloperName:       name,
			ParentDeveloperName: parent,
		})
	}

	return nil
}

func (b *builder) rules() error {
	all, err := b.src.AssignmentRules()
	if err != nil {
		return err
	}

	for _, r := range all {
		territory, ok, err := b.src.TerritoryDeveloperName(r.TerritoryId)
		if err != nil {
			return err
		}

		if !ok {
			b.warn("rule_skipped", fmt.Sprintf("territory %s is not in the extract", r.TerritoryId), record.KindAssignmentRule, r.Id)
			continue
		}

		name, _, err := b.src.RuleDeveloperName(r.Id)
		if err != nil {
			return err
		}

		b.out.Rules = append(b.out.Rules, RuleRow{
			DeveloperName:      name,
			MasterLabel:        r.Name,
			ObjectType:         b.opts.ObjectType,
			BooleanFilter:      r.BooleanFilter,
			IsActive:           r.IsActive,
			ModelDeveloperName: b.opts.ModelDeveloperName,
		})

		b.out.RuleAssociations = append(b.out.RuleAssociations, RuleAssociationRow{
			RuleDeveloperName:      name,
			TerritoryDeveloperName: territory,
			IsInherited:            r.IsInherited,
		})

		items, err := b.src.ItemsForRule(r.Id)
		if err != nil {
			return err
		}

		for _, item := range items {
			b.out.RuleItems = append(b.out.RuleItems, RuleItemRow{
				RuleDeveloperName: name,
				SortOrder:         item.SortOrder,
				Field:             item.Field,
				Operation:         item.Operation,
				Value:             item.Value,
			})
		}
	}

	return nil
}

func (b *builder) users() error {
	all, err := b.src.UserAssignments()
	if err != nil {
		return err
	}

	for _, u := range all {
		if !u.IsActive {
			b.out.Diagnostics.AddInfo("inactive_user_skipped", "user assignment is inactive", record.KindUserAssignment.String(), u.Id)
			continue
		}

		name, ok, err := b.src.TerritoryDeveloperName(u.TerritoryId)
		if err != nil {
			return err
		}

		if !ok {
			b.warn("user_assignment_skipped", fmt.Sprintf("territory %s is not in the extract", u.TerritoryId), record.KindUserAssignment, u.Id)
			continue
		}

		b.out.UserAssociations = append(b.out.UserAssociations, UserAssociationRow{
			UserId:       u.UserId,
			Territory2Id: destination.Placeholder(name),
		})
	}

	return nil
}

// shares keeps manual shares only; rule-driven access is recreated by the
// assignment rules themselves.
func (b *builder) shares() error {
	all, err := b.src.RecordShares()
	if err != nil {
		return err
	}

	for _, s := range all {
		if !s.IsManual() {
			continue
		}

		name, ok, err := b.src.TerritoryDeveloperName(s.TerritoryId)
		if err != nil {
			return err
		}

		if !ok {
			b.warn("record_share_skipped", fmt.Sprintf("territory %q is not in the extract", s.TerritoryId), record.KindRecordShare, s.Id)
			continue
		}

		b.out.ObjectAssociations = append(b.out.ObjectAssociations, ObjectAssociationRow{
			ObjectId:         s.AccountId,
			Territory2Id:     destination.Placeholder(name),
			AssociationCause: AssociationCauseManual,
		})
	}

	return nil
}

// sharingRules rewrites territory group members to TM2 DeveloperNames.
func (b *builder) sharingRules() error {
	all, err := b.src.SharingRules()
	if err != nil {
		return err
	}

	for _, r := range all {
		rewritten, ok, err := b.rewriteRule(r)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		if _, seen := b.out.SharingRules[r.Object]; !seen {
			b.out.Objects = append(b.out.Objects, r.Object)
		}

		b.out.SharingRules[r.Object] = append(b.out.SharingRules[r.Object], rewritten)
	}

	return nil
}

func (b *builder) rewriteRule(r metadata.SharingRule) (metadata.SharingRule, bool, error) {
	to, ok, err := b.rewriteGroup(r, r.SharedTo)
	if err != nil || !ok {
		return r, false, err
	}

	r.SharedTo = to

	if r.SharedFrom != nil {
		from, ok, err := b.rewriteGroup(r, *r.SharedFrom)
		if err != nil || !ok {
			return r, false, err
		}

		r.SharedFrom = &from
	}

	r.CriteriaItems = append([]metadata.CriteriaItem(nil), r.CriteriaItems...)

	return r, true, nil
}

func (b *builder) rewriteGroup(r metadata.SharingRule, g metadata.SharingGroup) (metadata.SharingGroup, bool, error) {
	if !g.IsTerritory() {
		return g, true, nil
	}

	t, ok, err := b.src.TerritoryForMember(g.Member)
	if err != nil {
		return g, false, err
	}

	if !ok {
		b.out.Diagnostics.AddWarning(
			"sharing_rule_skipped",
			fmt.Sprintf("territory %q is not in the extract", g.Member),
			"SharingRule",
			r.Object+"."+r.FullName,
		)

		return g, false, nil
	}

	name, err := b.territoryName(t.Id)
	if err != nil {
		return g, false, err
	}

	g.Member = name

	return g, true, nil
}

func (b *builder) territoryName(id string) (string, error) {
	name, ok, err := b.src.TerritoryDeveloperName(id)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", fmt.Errorf("territory %s has no developer name: %w", id, sentinel.ErrDeveloperNameNotFound)
	}

	return name, nil
}

func (b *builder) warn(code, message string, kind record.Kind, subject string) {
	b.out.Diagnostics.AddWarning(code, message, kind.String(), subject)
}
