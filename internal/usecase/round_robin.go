package usecase

import (
	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// RoundRobinStrategy pairs the i-th pending job with technician i mod N.
//
// The wraparound is intentional: a technician may receive several jobs in
// one pass. This is the baseline load-spreading heuristic, with no skill,
// workload or geography awareness.

type RoundRobinStrategy struct{}

var _ interfaces.IAssignmentStrategy = (*RoundRobinStrategy)(nil)

func NewRoundRobinStrategy() *RoundRobinStrategy {
	return &RoundRobinStrategy{}
}

func (s *RoundRobinStrategy) Pair(jobs []entities.Job, technicians []entities.Technician) []interfaces.Pairing {
	if len(technicians) == 0 {
		return nil
	}
	pairings := make([]interfaces.Pairing, 0, len(jobs))
	for i, j := range jobs {
		pairings = append(pairings, interfaces.Pairing{
			Job:        j,
			Technician: technicians[i%len(technicians)],
		})
	}
	return pairings
}
