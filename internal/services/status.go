package services

import (
	"fiber-service/internal/dto"
	"fiber-service/pkg/constants"
)

type StatusServiceInterface interface {
	GetStatuses() dto.StatusListDTO
}

type StatusService struct{}

func NewStatusService() StatusServiceInterface {
	return &StatusService{}
}

// GetStatuses отдаёт словарь статусов с подписями и таблицу переходов.
func (s *StatusService) GetStatuses() dto.StatusListDTO {
	transitions := constants.AllowedTransitions()

	out := dto.StatusListDTO{
		Statuses:   make([]dto.StatusDTO, 0, len(constants.OrderStatuses)),
		Priorities: make([]dto.PriorityDTO, 0, len(constants.Priorities)),
	}
	for _, code := range constants.OrderStatuses {
		out.Statuses = append(out.Statuses, dto.StatusDTO{
			Code:        code,
			Label:       constants.StatusLabel(code),
			IsFinal:     constants.IsFinalStatus(code),
			Transitions: transitions[code],
		})
	}
	for _, code := range constants.Priorities {
		out.Priorities = append(out.Priorities, dto.PriorityDTO{Code: code, Label: constants.PriorityLabel(code)})
	}
	return out
}
