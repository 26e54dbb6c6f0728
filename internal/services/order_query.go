package services

import (
	"strings"

	"fiber-service/internal/dto"
	"fiber-service/internal/entities"
)

// Query - единственный способ поиска ордеров: список и предикат.
// Порядок входного списка сохраняется.
func Query[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

// MatchID - выбор ордера из выпадающего списка.
func MatchID(id uint64) func(entities.OrderRow) bool {
	return func(r entities.OrderRow) bool { return r.ID == id }
}

// MatchText - поиск без учёта регистра по номеру, имени клиента и CTO.
// Пустой запрос совпадает со всем.
func MatchText(term string) func(entities.OrderRow) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	return func(r entities.OrderRow) bool {
		if needle == "" {
			return true
		}
		for _, hay := range []string{r.OrderNumber, r.ClientName, r.CTOReference} {
			if strings.Contains(strings.ToLower(hay), needle) {
				return true
			}
		}
		return false
	}
}

// MatchNumber - точное совпадение номера после Trim и перевода в верхний регистр.
func MatchNumber(number string) func(entities.OrderRow) bool {
	want := strings.ToUpper(strings.TrimSpace(number))
	return func(r entities.OrderRow) bool { return r.OrderNumber == want }
}

// FilterOrders: поля объединяются по И, значения внутри поля - по ИЛИ.
// Пустое поле фильтра не ограничивает выборку.
func FilterOrders(rows []entities.OrderRow, f dto.OrderFilterDTO) []entities.OrderRow {
	text := MatchText(f.Search)
	return Query(rows, func(r entities.OrderRow) bool {
		return anyOf(f.Statuses, r.Status) &&
			anyOf(f.Priorities, r.Priority) &&
			anyOf(f.ServiceTypes, r.ServiceCategory) &&
			anyOf(f.Regions, r.TechnicianRegion) &&
			text(r)
	})
}

func anyOf(allowed []string, v string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
