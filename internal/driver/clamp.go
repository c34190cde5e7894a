package driver

import "math"

// ClampRule is one entry in the homeostatic clamp's rule table (spec
// §4.4.4/§9: "a data-driven list of rules (predicate, action) so it can be
// tested and toggled"). Each rule reads and writes the driver's state
// vector and homeostatic reservoirs directly; Enabled lets a caller (tests,
// or a "pure network" mode) disable individual rules without touching the
// others.
type ClampRule struct {
	Name    string
	Enabled bool
	Apply   func(d *Driver, dt float64)
}

// DefaultClampRules returns the full table from spec §4.4.4, in the order
// listed there. The glucose floor/gluconeogenesis, adenine pool, ATP
// ceiling, NAD floor, cortisol bounds and accumulation caps settle onto
// their boundary and are idempotent fixed-point corrections (see DESIGN.md
// decision 5). The always-on decay/resupply rules (O2 resupply, insulin
// decay, ROS clearance) and the fixed-increment raises (acetyl-CoA, PRPP
// and CoA floors, amino-pool release) are continuous forcing terms that
// are NOT idempotent under repeated nonzero-dt application — they model
// ongoing physiology the network doesn't explicitly represent, not a
// correction to be settled once. Glucose storage moves only
// min(1, insulin/3) of the excess per call, so it reaches its boundary in
// one call only when insulin >= 3; the ATP floor repeats its glucose
// charge while ADP is too low to cover the deficit.
func DefaultClampRules() []ClampRule {
	return []ClampRule{
		{Name: "glucose_floor", Enabled: true, Apply: clampGlucoseFloor},
		{Name: "gluconeogenesis", Enabled: true, Apply: clampGluconeogenesis},
		{Name: "glucose_storage", Enabled: true, Apply: clampGlucoseStorage},
		{Name: "atp_floor", Enabled: true, Apply: clampATPFloor},
		{Name: "adenine_pool", Enabled: true, Apply: clampAdeninePool},
		{Name: "atp_ceiling", Enabled: true, Apply: clampATPCeiling},
		{Name: "o2_resupply", Enabled: true, Apply: clampO2Resupply},
		{Name: "nad_floor", Enabled: true, Apply: clampNADFloor},
		{Name: "amino_pool", Enabled: true, Apply: clampAminoPool},
		{Name: "insulin_decay", Enabled: true, Apply: clampInsulinDecay},
		{Name: "cortisol_bounds", Enabled: true, Apply: clampCortisolBounds},
		{Name: "ros_clearance", Enabled: true, Apply: clampROSClearance},
		{Name: "acetyl_coa_floor", Enabled: true, Apply: clampAcetylCoAFloor},
		{Name: "prpp_coa_floors", Enabled: true, Apply: clampPRPPCoAFloors},
		{Name: "accumulation_caps", Enabled: true, Apply: clampAccumulationCaps},
	}
}

// applyClamp runs every enabled rule once, in table order, over the
// driver's current state.
func (d *Driver) applyClamp(dt float64) {
	for _, rule := range d.rules {
		if rule.Enabled {
			rule.Apply(d, dt)
		}
	}
}

func clampGlucoseFloor(d *Driver, dt float64) {
	glucose := d.get(idGlucoseBlood)
	if glucose >= 4.5 || d.glycogenG <= 0 {
		return
	}
	needed := 4.5 - glucose
	maxFromStore := d.glycogenG / 5.0
	raise := math.Min(needed, maxFromStore)
	if raise <= 0 {
		return
	}
	d.glycogenG -= raise * 5.0
	d.add(idGlucoseBlood, raise)
}

func clampGluconeogenesis(d *Driver, dt float64) {
	glucose := d.get(idGlucoseBlood)
	if glucose >= 4.5 || d.glycogenG > 0 {
		return
	}
	needed := 4.5 - glucose
	maxFromAdipose := d.adiposeG / 20.0
	raise := math.Min(needed, maxFromAdipose)
	if raise <= 0 {
		return
	}
	d.adiposeG -= raise * 20.0
	d.add(idGlucoseBlood, raise)
	d.add(idFattyAcidsBlood, raise*0.5)
}

func clampGlucoseStorage(d *Driver, dt float64) {
	glucose := d.get(idGlucoseBlood)
	if glucose <= 5.3 || d.glycogenG >= 100 {
		return
	}
	excess := glucose - 5.3
	fraction := math.Min(1.0, d.get(idInsulin)/3.0)
	stored := excess * fraction
	if stored <= 0 {
		return
	}
	room := (100 - d.glycogenG) / 5.0
	if stored > room {
		stored = room
	}
	d.add(idGlucoseBlood, -stored)
	d.glycogenG += stored * 5.0
	if d.glycogenG > 100 {
		d.glycogenG = 100
	}
}

func clampATPFloor(d *Driver, dt float64) {
	atp := d.get(idATP)
	if atp >= 4.0 {
		return
	}
	deficit := 4.0 - atp
	adp := d.get(idADP)
	conv := math.Min(deficit, 0.8*adp)
	if conv > 0 {
		d.add(idATP, conv)
		d.add(idADP, -conv)
	}
	d.add(idGlucoseBlood, -0.1*deficit)
}

func clampAdeninePool(d *Driver, dt float64) {
	atp := d.get(idATP)
	adp := d.get(idADP)
	total := atp + adp
	if total >= 5.0 {
		return
	}
	add := 5.5 - total
	d.add(idATP, add*0.8)
	d.add(idADP, add*0.2)
}

func clampATPCeiling(d *Driver, dt float64) {
	atp := d.get(idATP)
	if atp <= 6.0 {
		return
	}
	excess := atp - 6.0
	d.set(idATP, 6.0)
	d.add(idADP, excess)
}

func clampO2Resupply(d *Driver, dt float64) {
	o2 := d.get(idO2)
	d.add(idO2, (0.13-o2)*0.5*dt)
}

func clampNADFloor(d *Driver, dt float64) {
	nad := d.get(idNADPlus)
	nadh := d.get(idNADH)
	if nad+nadh >= 1.0 {
		return
	}
	if nad < 0.5 {
		d.set(idNADPlus, 0.5)
	}
	if nadh < 0.3 {
		d.set(idNADH, 0.3)
	}
}

func clampAminoPool(d *Driver, dt float64) {
	met := d.get(idMethionine)
	if met >= 0.01 || d.aminoPoolG <= 0 {
		return
	}
	releaseG := 0.001 * (dt / 60.0)
	if releaseG > d.aminoPoolG {
		releaseG = d.aminoPoolG
	}
	d.aminoPoolG -= releaseG
	d.add(idMethionine, releaseG*0.1)
}

func clampInsulinDecay(d *Driver, dt float64) {
	insulin := d.get(idInsulin)
	base := d.insulinBaseline
	d.set(idInsulin, base+(insulin-base)*math.Exp(-0.05*dt))
}

func clampCortisolBounds(d *Driver, dt float64) {
	cortisol := d.get(idCortisol)
	if cortisol < 0.05 {
		d.set(idCortisol, 0.05)
	} else if cortisol > 1.5 {
		d.set(idCortisol, 1.5)
	}
}

func clampROSClearance(d *Driver, dt float64) {
	ros := d.get(idROS)
	if ros <= 0.001 {
		return
	}
	d.set(idROS, math.Max(0, ros-0.01*dt))
}

func clampAcetylCoAFloor(d *Driver, dt float64) {
	acetylCoA := d.get(idAcetylCoA)
	if acetylCoA >= 0.05 {
		return
	}
	d.add(idAcetylCoA, 0.01*dt)
	d.adiposeG -= 0.5 * dt
	if d.adiposeG < 0 {
		d.adiposeG = 0
	}
}

func clampPRPPCoAFloors(d *Driver, dt float64) {
	if d.get(idPRPP) < 0.05 {
		d.add(idPRPP, 0.02*dt)
	}
	if d.get(idCoA) < 0.2 {
		d.add(idCoA, 0.02*dt)
	}
}

func clampAccumulationCaps(d *Driver, dt float64) {
	capAt(d, idCitrate, 2.0)
	capAt(d, idSuccinate, 2.0)
	capAt(d, idMalate, 2.0)
	capAt(d, idPyruvate, 1.0)
}

func capAt(d *Driver, id string, max float64) {
	if d.get(id) > max {
		d.set(id, max)
	}
}
