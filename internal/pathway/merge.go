package pathway

// Merge unions two or more pathways into one "whole-body" pathway.
// Metabolites and enzymes are unioned by id with first-definition-wins on
// conflict; reactions are concatenated in argument order. The result is
// re-validated through Build, so a reaction in one sub-pathway referencing
// a metabolite only defined in another resolves correctly.
func Merge(id, name, description string, pathways ...Pathway) (Pathway, error) {
	var metabolites []Metabolite
	seenMetabolite := make(map[string]bool)

	var enzymes []Enzyme
	seenEnzyme := make(map[string]bool)

	var reactions []Reaction

	for _, p := range pathways {
		for _, m := range p.Metabolites {
			if seenMetabolite[m.ID] {
				continue
			}
			seenMetabolite[m.ID] = true
			metabolites = append(metabolites, m)
		}
		for _, e := range p.Enzymes {
			if seenEnzyme[e.ID] {
				continue
			}
			seenEnzyme[e.ID] = true
			enzymes = append(enzymes, e)
		}
		reactions = append(reactions, p.Reactions...)
	}

	return Build(id, name, description, metabolites, enzymes, reactions)
}
