package engine

import "fmt"

// Recommendation is a textual advice with a severity matching the
// status bands.
type Recommendation struct {
	Message string `json:"message"`
	Level   Status `json:"type"`
}

// Recommend builds the advice for the current situation. Tiers are
// evaluated in strict priority order, first match wins:
// ceiling reached, above 90%, above 70% (with an overrun-risk
// sub-branch when the current pace exceeds the monthly cap), normal
// year with margin, then the end-of-year fallback.
func Recommend(totalEngaged, monthlyLimit, averageMonthlyRate float64, monthsRemaining int) Recommendation {
	percentage := ProgressPercentage(totalEngaged)
	remaining := RemainingCA(totalEngaged, 0)

	if totalEngaged >= Threshold {
		return Recommendation{
			Message: "Attention : vous avez atteint ou dépassé le plafond micro-entreprise. " +
				"Consultez un expert-comptable pour évaluer vos options.",
			Level: StatusDanger,
		}
	}

	if percentage >= 90 {
		return Recommendation{
			Message: fmt.Sprintf("Il vous reste %s de marge. Ralentissez significativement "+
				"votre activité ou préparez-vous à changer de statut.", FormatEuro(remaining)),
			Level: StatusDanger,
		}
	}

	if percentage >= 70 {
		if averageMonthlyRate > monthlyLimit && monthsRemaining > 0 {
			return Recommendation{
				Message: fmt.Sprintf("À votre rythme actuel, vous risquez de dépasser le plafond. "+
					"Limitez-vous à %s/mois maximum.", FormatEuro(monthlyLimit)),
				Level: StatusCaution,
			}
		}
		return Recommendation{
			Message: fmt.Sprintf("Vous approchez du plafond. Vous pouvez encore facturer "+
				"%s/mois sur les %d mois restants.", FormatEuro(monthlyLimit), monthsRemaining),
			Level: StatusCaution,
		}
	}

	if monthsRemaining > 0 {
		return Recommendation{
			Message: fmt.Sprintf("Bonne marge de manœuvre ! Vous pouvez facturer jusqu'à "+
				"%s/mois pour rester sous le plafond.", FormatEuro(monthlyLimit)),
			Level: StatusSafe,
		}
	}

	level := StatusSafe
	if percentage >= 70 {
		level = StatusCaution
	}
	return Recommendation{
		Message: fmt.Sprintf("Il vous reste %s de CA disponible cette année.", FormatEuro(remaining)),
		Level:   level,
	}
}
