package response

import "maisonpro_dispatch/internal/usecase"

type DispatchResponse struct {
	AssignedCount int                  `json:"assigned_count"`
	Roster        []TechnicianResponse `json:"roster"`
}

func FromDispatchResult(res usecase.DispatchResult) DispatchResponse {
	return DispatchResponse{
		AssignedCount: res.AssignedCount,
		Roster:        FromTechnicians(res.Roster),
	}
}
