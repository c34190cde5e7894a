package driver

// Named metabolite and enzyme ids the circadian overlay and homeostatic
// clamp look for. A pathway that doesn't define one of these simply never
// triggers the corresponding rule — every lookup in this package is a
// soft, non-fatal "does the pathway have this species" check.
const (
	idCortisol       = "cortisol"
	idMelatonin      = "melatonin"
	idAdenosine      = "adenosine"
	idGlucoseBlood   = "glucose_blood"
	idInsulin        = "insulin"
	idATP            = "atp"
	idADP            = "adp"
	idAMP            = "amp"
	idNADPlus        = "nad+"
	idNADH           = "nadh"
	idROS            = "ros"
	idAMPK           = "ampk"
	idMTOR           = "mtor"
	idFattyAcidsBlood = "fatty_acids_blood"
	idMethionine     = "methionine"
	idGSH            = "gsh"
	idO2             = "o2"
	idAcetylCoA      = "acetyl_coa"
	idPRPP           = "prpp"
	idCoA            = "coa"
	idCitrate        = "citrate"
	idSuccinate      = "succinate"
	idMalate         = "malate"
	idPyruvate       = "pyruvate"

	enzymeNampt = "nampt"
)
