package dto

import "pick-time-service/internal/domain"

type ParamsResponse struct {
	Revision   int            `json:"revision"`
	SummerMode bool           `json:"summer_mode"`
	Params     *domain.Params `json:"params"`
}

type SaveParamsResponse struct {
	Revision int `json:"revision"`
}
