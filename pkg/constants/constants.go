// pkg/constants/constants.go
package constants

//============== ПРИОРИТЕТЫ ==============

const (
	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

var PriorityLabels = map[string]string{
	PriorityLow:    "Baixa",
	PriorityNormal: "Normal",
	PriorityHigh:   "Alta",
	PriorityUrgent: "Urgente",
}

func IsValidPriority(code string) bool {
	_, ok := PriorityLabels[code]
	return ok
}

func PriorityLabel(code string) string {
	if label, ok := PriorityLabels[code]; ok {
		return label
	}
	return code
}

//============== КАТЕГОРИИ УСЛУГ ==============

const (
	CategoryInstallation = "Installation"
	CategoryRepair       = "Repair"
	CategoryMaintenance  = "Maintenance"
	CategoryUpgrade      = "Upgrade"
	CategoryDiagnostic   = "Diagnostic"
	CategoryRelocation   = "Relocation"
	CategoryCancellation = "Cancellation"

	// CategoryOther - корзина для ордеров, чья услуга не найдена.
	CategoryOther = "Other"
)

var ServiceCategories = []string{
	CategoryInstallation,
	CategoryRepair,
	CategoryMaintenance,
	CategoryUpgrade,
	CategoryDiagnostic,
	CategoryRelocation,
	CategoryCancellation,
}

// DefaultPriorityFor - ремонт по умолчанию срочнее остального.
func DefaultPriorityFor(category string) string {
	if category == CategoryRepair {
		return PriorityHigh
	}
	return PriorityNormal
}

//============== ТЕХНИКИ ==============

const (
	LevelJunior = "Junior"
	LevelMid    = "Mid"
	LevelSenior = "Senior"
)

var TechnicianLevels = []string{LevelJunior, LevelMid, LevelSenior}

var Regions = []string{"Centro", "Zona Sul", "Zona Norte", "Zona Oeste", "Zona Leste"}

// NotAvailable подставляется вместо имени, когда ссылка не найдена.
const NotAvailable = "N/A"

func IsServiceCategory(v string) bool { return contains(ServiceCategories, v) }
func IsTechnicianLevel(v string) bool { return contains(TechnicianLevels, v) }
func IsRegion(v string) bool          { return contains(Regions, v) }

//============== SLA (симуляция) ==============

// Значения SLA на дашборде не вычисляются из данных.
const (
	SimulatedSLACompliance        = 94.5
	SimulatedAvgResolutionHours   = 4.2
	SimulatedFirstVisitResolution = 87.3
)
