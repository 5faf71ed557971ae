package models

// Каталог тарифов. Список фиксирован и объявлен в одном месте,
// чтобы формы и валидация не дублировали его.
const (
	PlanBasico   = "basico"
	PlanEstandar = "estandar"
	PlanPremium  = "premium"
	PlanFamiliar = "familiar"
)

// Plans возвращает полный каталог тарифов в порядке показа.
func Plans() []string {
	return []string{PlanBasico, PlanEstandar, PlanPremium, PlanFamiliar}
}

// IsValidPlan сообщает, входит ли тариф в каталог.
func IsValidPlan(plan string) bool {
	switch plan {
	case PlanBasico, PlanEstandar, PlanPremium, PlanFamiliar:
		return true
	}
	return false
}
