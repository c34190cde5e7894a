// Package config loads the on-disk configuration artifacts the driver
// needs: a pathway/enzyme/reaction definition (JSON, spec §6.2), a run
// configuration (TOML, spec §6.6a) describing how long to simulate and
// which personalization inputs to apply, and the user-profile and
// supplement-stack JSON documents (personalizeconfig.go). Package schedule owns the
// separate daily-schedule JSON format (spec §6.3).
package config

import (
	"encoding/json"
	"fmt"

	"github.com/GoCodeAlone/pathwaysim/internal/kinetics"
	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
)

type wireGeneticModifier struct {
	RSID               string  `json:"rsid"`
	Gene               string  `json:"gene"`
	RiskAllele         string  `json:"riskAllele"`
	Orientation        string  `json:"orientation"`
	HomozygousEffect   float64 `json:"homozygousEffect"`
	HeterozygousEffect float64 `json:"heterozygousEffect"`
	Description        string  `json:"description"`
}

type wireEnzyme struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	ECNumber         string                `json:"ecNumber"`
	Vmax             float64               `json:"vmax"`
	Km               float64               `json:"km"`
	Cofactors        []string              `json:"cofactors"`
	GeneticModifiers []wireGeneticModifier `json:"geneticModifiers"`
}

type wireMetabolite struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	InitialConcentration float64 `json:"initialConcentration"`
	Compartment          string  `json:"compartment"`
}

type wireParticipant struct {
	MetaboliteID string `json:"metaboliteId"`
	Coefficient  int    `json:"coefficient"`
}

type wireReaction struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	EnzymeID        string            `json:"enzymeId"`
	Substrates      []wireParticipant `json:"substrates"`
	Products        []wireParticipant `json:"products"`
	Kinetics        string            `json:"kinetics"`
	InhibitorIDs    []string          `json:"inhibitorIds"`
	Ki              float64           `json:"ki"`
	ActivatorIDs    []string          `json:"activatorIds"`
	Ka              float64           `json:"ka"`
	HillCoefficient float64           `json:"hillCoefficient"`
}

type wirePathway struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Metabolites []wireMetabolite `json:"metabolites"`
	Enzymes     []wireEnzyme     `json:"enzymes"`
	Reactions   []wireReaction   `json:"reactions"`
}

// LoadPathwayJSON parses the §6.2 pathway wire format and builds a
// validated pathway.Pathway. Unlike schedule parsing, pathway configuration
// errors are fatal (spec §4.5): a malformed document or an unresolvable
// reference is reported, never silently dropped, since a pathway with
// missing reactions would silently simulate the wrong biology.
func LoadPathwayJSON(data []byte) (pathway.Pathway, error) {
	var wire wirePathway
	if err := json.Unmarshal(data, &wire); err != nil {
		return pathway.Pathway{}, fmt.Errorf("config: decode pathway JSON: %w", err)
	}

	metabolites := make([]pathway.Metabolite, len(wire.Metabolites))
	for i, m := range wire.Metabolites {
		metabolites[i] = pathway.Metabolite{
			ID:                   m.ID,
			Name:                 m.Name,
			InitialConcentration: m.InitialConcentration,
			Compartment:          m.Compartment,
		}
	}

	enzymes := make([]pathway.Enzyme, len(wire.Enzymes))
	for i, e := range wire.Enzymes {
		modifiers := make([]pathway.GeneticModifier, len(e.GeneticModifiers))
		for j, gm := range e.GeneticModifiers {
			orientation, ok := pathway.ParseOrientation(gm.Orientation)
			if !ok {
				return pathway.Pathway{}, fmt.Errorf("config: enzyme %q genetic modifier %q: unrecognized orientation %q", e.ID, gm.RSID, gm.Orientation)
			}
			modifiers[j] = pathway.GeneticModifier{
				RSID:               gm.RSID,
				Gene:               gm.Gene,
				RiskAllele:         gm.RiskAllele,
				Orientation:        orientation,
				HomozygousEffect:   gm.HomozygousEffect,
				HeterozygousEffect: gm.HeterozygousEffect,
				Description:        gm.Description,
			}
		}
		enzymes[i] = pathway.Enzyme{
			ID:               e.ID,
			Name:             e.Name,
			ECNumber:         e.ECNumber,
			Vmax:             e.Vmax,
			Km:               e.Km,
			Cofactors:        e.Cofactors,
			GeneticModifiers: modifiers,
		}
	}

	reactions := make([]pathway.Reaction, len(wire.Reactions))
	for i, r := range wire.Reactions {
		kind, ok := kinetics.ParseKind(r.Kinetics)
		if !ok {
			return pathway.Pathway{}, &pathway.BuildError{Kind: pathway.InvalidKineticsKind, ElementID: r.ID, Detail: r.Kinetics}
		}
		reactions[i] = pathway.Reaction{
			ID:              r.ID,
			Name:            r.Name,
			EnzymeID:        r.EnzymeID,
			Substrates:      toParticipants(r.Substrates),
			Products:        toParticipants(r.Products),
			Kinetics:        kind,
			InhibitorIDs:    r.InhibitorIDs,
			Ki:              r.Ki,
			ActivatorIDs:    r.ActivatorIDs,
			Ka:              r.Ka,
			HillCoefficient: r.HillCoefficient,
		}
	}

	return pathway.Build(wire.ID, wire.Name, wire.Description, metabolites, enzymes, reactions)
}

func toParticipants(wire []wireParticipant) []pathway.ReactionParticipant {
	out := make([]pathway.ReactionParticipant, len(wire))
	for i, w := range wire {
		out[i] = pathway.ReactionParticipant{MetaboliteID: w.MetaboliteID, Coefficient: w.Coefficient}
	}
	return out
}
