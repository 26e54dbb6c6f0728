package events

import "fiber-service/internal/entities"

const OrderCreatedEventName = "order.created"

// OrderCreatedEvent публикуется после сохранения нового ордера.
// Несёт справочные сущности, чтобы обработчикам не ходить в хранилище.
type OrderCreatedEvent struct {
	Order      entities.ServiceOrder
	Client     entities.Client
	Service    entities.Service
	Technician entities.Technician
}

// Name - реализуем интерфейс eventbus.Event
func (e OrderCreatedEvent) Name() string {
	return OrderCreatedEventName
}
