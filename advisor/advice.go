package advisor

import (
	"fmt"
	"strings"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

const (
	minSavingsRate = 10.0 // percent of monthly income
	seniorAge      = 60
)

// facts is the immutable input every advice rule reads.
type facts struct {
	profile         finance.Profile
	metrics         finance.Metrics
	risk            RiskProfile
	emergencyFund   finance.Money
	emergencyMonths int
	allocation      Allocation
}

func (f facts) bufferShort() bool {
	return f.metrics.TotalBalance.LessThan(f.emergencyFund)
}

// rule is one independent advice rule. Every rule whose predicate holds
// contributes exactly one line.
type rule struct {
	code string
	when func(facts) bool
	say  func(facts) string
}

// adviceRules is evaluated in order: safety and liquidity first, growth
// last. Rules never look at each other's outcome.
var adviceRules = []rule{
	{
		code: "overspending",
		when: func(f facts) bool { return f.metrics.MonthlySavings.IsNegative() },
		say: func(f facts) string {
			return fmt.Sprintf("Vos dépenses mensuelles dépassent vos revenus de %s. Réduisez vos dépenses avant d'investir.",
				f.metrics.MonthlySavings.Neg().Short())
		},
	},
	{
		code: "no_income",
		when: func(f facts) bool { return !f.metrics.MonthlyIncome.IsPositive() },
		say: func(f facts) string {
			return "Aucun revenu mensuel n'est renseigné : ajoutez vos revenus pour affiner ces conseils."
		},
	},
	{
		code: "build_buffer",
		when: facts.bufferShort,
		say: func(f facts) string {
			missing := f.emergencyFund.Sub(f.metrics.TotalBalance)
			return fmt.Sprintf("Constituez d'abord une épargne de sécurité de %s (%d mois de dépenses) sur un support disponible comme le Livret A. Il vous manque %s.",
				f.emergencyFund.Short(), f.emergencyMonths, missing.Short())
		},
	},
	{
		code: "direct_savings",
		when: func(f facts) bool { return f.metrics.MonthlySavings.IsPositive() },
		say: func(f facts) string {
			if f.bufferShort() {
				return fmt.Sprintf("Affectez en priorité vos %s d'épargne mensuelle à votre épargne de sécurité.",
					f.metrics.MonthlySavings.Short())
			}
			return fmt.Sprintf("Investissez chaque mois vos %s d'épargne selon l'allocation recommandée : %s.",
				f.metrics.MonthlySavings.Short(), describe(f.allocation))
		},
	},
	{
		code: "low_savings_rate",
		when: func(f facts) bool {
			rate := f.metrics.SavingsRate()
			return rate > 0 && rate < minSavingsRate
		},
		say: func(f facts) string {
			return fmt.Sprintf("Votre taux d'épargne est de %.1f %% : visez au moins %.0f %% de vos revenus.",
				f.metrics.SavingsRate(), minSavingsRate)
		},
	},
	{
		code: "horizon_caveat",
		when: func(f facts) bool {
			return f.profile.Age <= 0 || (f.profile.Age >= seniorAge && f.profile.InvestmentHorizon == finance.Long)
		},
		say: func(f facts) string {
			if f.profile.Age <= 0 {
				return "Renseignez votre âge pour vérifier que votre horizon de placement est cohérent."
			}
			return fmt.Sprintf("À %d ans, un horizon long terme suppose de pouvoir immobiliser ces sommes : conservez une part sécurisée suffisante.",
				f.profile.Age)
		},
	},
	{
		code: "profile_tip",
		when: func(facts) bool { return true },
		say:  func(f facts) string { return profileTips[f.risk] },
	},
}

var profileTips = [numRiskProfiles]string{
	ConservativeProfile: "Privilégiez les supports garantis (fonds euros, livrets) et n'exposez aux actions qu'une petite part de votre patrimoine.",
	BalancedProfile:     "Diversifiez entre fonds euros et ETF actions, et rééquilibrez votre allocation une fois par an.",
	GrowthProfile:       "Investissez régulièrement en ETF actions via un PEA pour lisser les points d'entrée et profiter de la fiscalité.",
	AggressiveProfile:   "Gardez les actifs les plus spéculatifs (crypto, small caps) sous 10 % du portefeuille et acceptez une forte volatilité.",
}

// note is a fired rule.
type note struct {
	Code string
	Text string
}

func evaluate(f facts) []note {
	var out []note
	for _, r := range adviceRules {
		if r.when(f) {
			out = append(out, note{Code: r.code, Text: r.say(f)})
		}
	}
	return out
}

func describe(a Allocation) string {
	parts := make([]string, 0, len(a))
	for _, s := range a {
		parts = append(parts, fmt.Sprintf("%d %% %s", s.Percent, s.Class.Label()))
	}
	return strings.Join(parts, ", ")
}
