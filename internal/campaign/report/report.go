// Package report renders the Spanish diagnostic report. It only reads the
// dataset; all numbers come from the service layer.
package report

import (
	"fmt"
	"io"
	"strings"

	"campaign-analyst/internal/campaign/model"
	"campaign-analyst/internal/campaign/service"
)

var issueNotes = map[service.Issue]string{
	service.IssueLowCTR:   "CTR muy bajo → poca atracción en el listado (título/beneficios mejorables).",
	service.IssueLowCVR:   "CVR bajo → muchos clics pero pocas candidaturas (oferta poco atractiva o requisitos mal planteados).",
	service.IssueHighCPA:  "CPA muy alto → coste por candidatura poco eficiente, revisar inversión o segmentación.",
	service.IssueBalanced: "Rendimiento equilibrado o por encima de la media.",
}

var issueActions = map[service.Issue][]string{
	service.IssueLowCTR: {
		"Probar nuevo título más concreto y con beneficio clave.",
		"Añadir salario y beneficios claros en las primeras líneas.",
	},
	service.IssueLowCVR: {
		"Revisar requisitos (separar imprescindibles de deseables).",
		"Asegurarse de que la oferta es coherente con el salario/beneficios.",
	},
	service.IssueHighCPA: {
		"Reducir presupuesto temporalmente y optimizar antes de escalar.",
		"Considerar pausar si tras ajustes sigue con CPA muy superior a la media.",
	},
	service.IssueBalanced: {
		"Candidata para escalar presupuesto o replicar estructura en otras campañas.",
	},
}

var abTestIdeas = []string{
	"Versión A: título racional (salario/contrato). Versión B: título emocional (proyecto/equipo).",
	"Destacar beneficios arriba vs. abajo en la descripción.",
	"Ajustar tono del copy: más directo vs. más descriptivo.",
}

// Reporter writes the report sections to w.
type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter { return &Reporter{w: w} }

// Summary prints the overall means plus fixed reference ranges. The cpa
// line is omitted when no campaign has a defined cpa.
func (p *Reporter) Summary(m model.Means) {
	fmt.Fprintln(p.w, "\n===== RESUMEN GENERAL =====")
	fmt.Fprintf(p.w, "CTR medio: %.4f%%\n", m.CTR*100)
	fmt.Fprintf(p.w, "CVR medio: %.2f%%\n", m.CVR*100)
	if m.CPA != nil {
		fmt.Fprintf(p.w, "CPA medio: %.2f €\n", *m.CPA)
	}

	fmt.Fprintln(p.w, "\nRangos de referencia orientativos:")
	fmt.Fprintln(p.w, "- CTR bueno: > 1%")
	fmt.Fprintln(p.w, "- CVR bueno: 10% – 20%")
	fmt.Fprintln(p.w, "- CPA bueno: < 10–15 € (depende del perfil)")
}

// TopBottom prints the n best and worst campaigns for one metric. An
// unknown metric is reported as a message, not an error.
func (p *Reporter) TopBottom(ds *model.Dataset, metric string, n int) {
	fmt.Fprintf(p.w, "\n===== TOP y BOTTOM por %s =====\n", strings.ToUpper(metric))
	rk, ok := service.Rank(ds, metric, n)
	if !ok {
		fmt.Fprintf(p.w, "No se encuentra la métrica '%s' en la tabla.\n", metric)
		return
	}

	fmt.Fprintln(p.w, "\nMejores campañas:")
	for _, r := range rk.Best {
		p.rankLine(&r, metric)
	}
	fmt.Fprintln(p.w, "\nPeores campañas:")
	for _, r := range rk.Worst {
		p.rankLine(&r, metric)
	}
}

func (p *Reporter) rankLine(r *model.Row, metric string) {
	if v, ok := r.Metric(metric); ok {
		fmt.Fprintf(p.w, "- %s | %s: %.4f\n", r.Campaign, strings.ToUpper(metric), v)
	} else {
		fmt.Fprintf(p.w, "- %s | %s: N/A\n", r.Campaign, strings.ToUpper(metric))
	}
}

// Recommendations prints the per-campaign diagnosis: metrics line, issue
// bullets, the action block for each issue, and the fixed A/B-test ideas.
func (p *Reporter) Recommendations(ds *model.Dataset, m model.Means) {
	fmt.Fprintln(p.w, "\n===== DIAGNÓSTICO Y RECOMENDACIONES =====")

	for i := range ds.Rows {
		r := &ds.Rows[i]
		fmt.Fprintln(p.w, "\n---")
		fmt.Fprintf(p.w, "Campaña: %s\n", r.Campaign)
		cpa := "N/A"
		if r.CPA != nil {
			cpa = fmt.Sprintf("%.2f", *r.CPA)
		}
		fmt.Fprintf(p.w, "CTR: %.4f%% | CVR: %.2f%% | CPA: %s €\n", r.CTR*100, r.CVR*100, cpa)

		issues := service.Diagnose(r, m)
		for _, is := range issues {
			fmt.Fprintf(p.w, "• %s\n", issueNotes[is])
		}

		fmt.Fprintln(p.w, "Acciones sugeridas:")
		for _, is := range issues {
			for _, a := range issueActions[is] {
				fmt.Fprintf(p.w, "  - %s\n", a)
			}
		}

		fmt.Fprintln(p.w, "Ideas de test A/B:")
		for _, idea := range abTestIdeas {
			fmt.Fprintf(p.w, "  - %s\n", idea)
		}
	}
}
