package allocation

import (
	"electoral/internal/config"
	"electoral/reconcile"
)

// ModoNormal modo sin simulación: la fusión es la identidad
const ModoNormal = "normal"

// Fusionar reetiqueta el pacto de los candidatos cuyo pacto original cae
// dentro del grupo de fusión, sin tocar los votos. Es un mapeo puro que
// preserva el orden de la entrada; los candidatos fuera del grupo quedan
// intactos.
func Fusionar(candidatos []reconcile.Candidato, fusion config.FusionPactos) []reconcile.Candidato {
	miembros := make(map[string]bool, len(fusion.Letras))
	for _, letra := range fusion.Letras {
		miembros[letra] = true
	}

	fusionados := make([]reconcile.Candidato, len(candidatos))
	for i, c := range candidatos {
		if miembros[c.PactoLetra] {
			c.PactoLetra = fusion.Letra
			c.PactoNombre = fusion.Nombre
		}
		fusionados[i] = c
	}

	return fusionados
}

// FusionarModo aplica la fusión del modo de simulación indicado. El modo
// "normal" o un modo sin fusión configurada devuelven la lista sin cambios.
func FusionarModo(candidatos []reconcile.Candidato, mode string, fusiones map[string]config.FusionPactos) []reconcile.Candidato {
	if mode == ModoNormal {
		return candidatos
	}
	fusion, ok := fusiones[mode]
	if !ok {
		return candidatos
	}
	return Fusionar(candidatos, fusion)
}
