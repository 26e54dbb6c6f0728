package constants

import "sort"

// --- СТАТУСЫ ОРДЕРОВ (совпадает с кодами в БД) ---
const (
	StatusScheduled     = "SCHEDULED"
	StatusInField       = "IN_FIELD"
	StatusAwaitingParts = "AWAITING_PARTS"
	StatusCompleted     = "COMPLETED"
	StatusCancelled     = "CANCELLED"
)

// OrderStatuses - в порядке отображения.
var OrderStatuses = []string{
	StatusScheduled,
	StatusInField,
	StatusAwaitingParts,
	StatusCompleted,
	StatusCancelled,
}

var StatusLabels = map[string]string{
	StatusScheduled:     "Agendado",
	StatusInField:       "Em Campo",
	StatusAwaitingParts: "Aguardando Peças",
	StatusCompleted:     "Concluído",
	StatusCancelled:     "Cancelado",
}

// Финальные статусы (на практике; машина состояний их не запирает)
var FinalStatuses = []string{
	StatusCompleted,
	StatusCancelled,
}

// PendingStatuses считаются "в работе" в отчётах.
var PendingStatuses = []string{
	StatusScheduled,
	StatusInField,
}

// StatusTransitions - разрешённые переходы. Сейчас разрешено всё, включая
// переход в тот же статус и "воскрешение" завершённых ордеров.
// Чтобы запретить переход, достаточно убрать его из списка.
var StatusTransitions = map[string][]string{
	StatusScheduled:     OrderStatuses,
	StatusInField:       OrderStatuses,
	StatusAwaitingParts: OrderStatuses,
	StatusCompleted:     OrderStatuses,
	StatusCancelled:     OrderStatuses,
}

func IsValidStatus(code string) bool {
	_, ok := StatusLabels[code]
	return ok
}

func IsFinalStatus(code string) bool {
	return contains(FinalStatuses, code)
}

func IsPendingStatus(code string) bool {
	return contains(PendingStatuses, code)
}

// CanTransition проверяет переход по таблице StatusTransitions.
func CanTransition(from, to string) bool {
	return contains(StatusTransitions[from], to)
}

// AllowedTransitions возвращает копию таблицы с отсортированными целями.
func AllowedTransitions() map[string][]string {
	out := make(map[string][]string, len(StatusTransitions))
	for from, targets := range StatusTransitions {
		cp := append([]string(nil), targets...)
		sort.Strings(cp)
		out[from] = cp
	}
	return out
}

func StatusLabel(code string) string {
	if label, ok := StatusLabels[code]; ok {
		return label
	}
	return code
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
