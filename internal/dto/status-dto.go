package dto

type StatusDTO struct {
	Code        string   `json:"code"`
	Label       string   `json:"label"`
	IsFinal     bool     `json:"is_final"`
	Transitions []string `json:"transitions"`
}

type PriorityDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type StatusListDTO struct {
	Statuses   []StatusDTO   `json:"statuses"`
	Priorities []PriorityDTO `json:"priorities"`
}
