package constants

// DISC factors as persisted in caracteristicas_disc.fator
const (
	FactorDominance  = "Dominância"
	FactorInfluence  = "Influência"
	FactorStability  = "Estabilidade"
	FactorConformity = "Conformidade"
)

var DiscFactors = []string{
	FactorDominance,
	FactorInfluence,
	FactorStability,
	FactorConformity,
}

func IsDiscFactor(s string) bool {
	for _, f := range DiscFactors {
		if f == s {
			return true
		}
	}
	return false
}
