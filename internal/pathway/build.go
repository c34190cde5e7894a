package pathway

// Build validates id uniqueness and reference closure and returns an
// immutable Pathway, or a *BuildError on the first violation found. Checks
// run in a fixed order so errors are deterministic: duplicate metabolite
// ids, duplicate enzyme ids, then each reaction in declaration order is
// checked for a duplicate reaction id, an unknown enzyme reference, and
// unknown metabolite references (substrates, products, inhibitors,
// activators) before the next reaction is looked at.
func Build(id, name, description string, metabolites []Metabolite, enzymes []Enzyme, reactions []Reaction) (Pathway, error) {
	metaboliteIndex := make(map[string]int, len(metabolites))
	for i, m := range metabolites {
		if _, dup := metaboliteIndex[m.ID]; dup {
			return Pathway{}, &BuildError{Kind: DuplicateID, ElementID: m.ID, Detail: "metabolite"}
		}
		metaboliteIndex[m.ID] = i
	}

	enzymeIndex := make(map[string]int, len(enzymes))
	for i, e := range enzymes {
		if _, dup := enzymeIndex[e.ID]; dup {
			return Pathway{}, &BuildError{Kind: DuplicateID, ElementID: e.ID, Detail: "enzyme"}
		}
		enzymeIndex[e.ID] = i
	}

	reactionIDs := make(map[string]bool, len(reactions))
	for _, r := range reactions {
		if reactionIDs[r.ID] {
			return Pathway{}, &BuildError{Kind: DuplicateID, ElementID: r.ID, Detail: "reaction"}
		}
		reactionIDs[r.ID] = true

		if _, ok := enzymeIndex[r.EnzymeID]; !ok {
			return Pathway{}, &BuildError{Kind: MissingEnzyme, ElementID: r.EnzymeID, Detail: "reaction " + r.ID}
		}

		for _, s := range r.Substrates {
			if _, ok := metaboliteIndex[s.MetaboliteID]; !ok {
				return Pathway{}, &BuildError{Kind: UnknownReference, ElementID: s.MetaboliteID, Detail: "substrate of " + r.ID}
			}
		}
		for _, p := range r.Products {
			if _, ok := metaboliteIndex[p.MetaboliteID]; !ok {
				return Pathway{}, &BuildError{Kind: UnknownReference, ElementID: p.MetaboliteID, Detail: "product of " + r.ID}
			}
		}
		for _, id := range r.InhibitorIDs {
			if _, ok := metaboliteIndex[id]; !ok {
				return Pathway{}, &BuildError{Kind: UnknownReference, ElementID: id, Detail: "inhibitor of " + r.ID}
			}
		}
		for _, id := range r.ActivatorIDs {
			if _, ok := metaboliteIndex[id]; !ok {
				return Pathway{}, &BuildError{Kind: UnknownReference, ElementID: id, Detail: "activator of " + r.ID}
			}
		}
	}

	return Pathway{
		ID:              id,
		Name:            name,
		Description:     description,
		Metabolites:     metabolites,
		Enzymes:         enzymes,
		Reactions:       reactions,
		metaboliteIndex: metaboliteIndex,
		enzymeIndex:     enzymeIndex,
	}, nil
}
