package interfaces

import "maisonpro_dispatch/internal/domain/entities"

// Pairing is one job/technician match produced by an assignment strategy.
type Pairing struct {
	Job        entities.Job
	Technician entities.Technician
}

// IAssignmentStrategy decides which technician takes which pending job.
//
// The baseline implementation is a round-robin with wraparound and no
// skill, load or geography awareness. The interface exists so a smarter
// strategy can replace it without touching the lifecycle or the store.
// Pair is pure: it never mutates its inputs and is only called with a
// non-empty technician list.
type IAssignmentStrategy interface {
	Pair(jobs []entities.Job, technicians []entities.Technician) []Pairing
}
