package entities

import "testing"

func TestJobStatusCanTransitionTo(t *testing.T) {
	board := []JobStatus{
		JobStatusPending, JobStatusAssigned, JobStatusEnRoute,
		JobStatusInProgress, JobStatusCompleted,
	}

	t.Run("terminal statuses reject everything", func(t *testing.T) {
		for _, from := range []JobStatus{JobStatusCompleted, JobStatusCancelled} {
			for _, to := range []JobStatus{
				JobStatusPending, JobStatusAssigned, JobStatusEnRoute,
				JobStatusInProgress, JobStatusCompleted, JobStatusCancelled, JobStatusOnHold,
			} {
				if from.CanTransitionTo(to) {
					t.Fatalf("%s -> %s should be rejected", from, to)
				}
			}
		}
	})

	t.Run("board drags are legal from any non-terminal status", func(t *testing.T) {
		for _, from := range []JobStatus{JobStatusPending, JobStatusAssigned, JobStatusEnRoute, JobStatusInProgress, JobStatusOnHold} {
			for _, to := range board {
				if !from.CanTransitionTo(to) {
					t.Fatalf("%s -> %s should be legal", from, to)
				}
			}
		}
	})

	t.Run("non-terminal statuses may cancel or hold", func(t *testing.T) {
		for _, from := range []JobStatus{JobStatusPending, JobStatusAssigned, JobStatusEnRoute, JobStatusInProgress, JobStatusOnHold} {
			if !from.CanTransitionTo(JobStatusCancelled) {
				t.Fatalf("%s -> cancelled should be legal", from)
			}
			if !from.CanTransitionTo(JobStatusOnHold) {
				t.Fatalf("%s -> on-hold should be legal", from)
			}
		}
	})

	t.Run("unknown statuses are rejected", func(t *testing.T) {
		if JobStatus("archived").CanTransitionTo(JobStatusPending) {
			t.Fatal("unknown source status should be rejected")
		}
		if JobStatusPending.CanTransitionTo(JobStatus("archived")) {
			t.Fatal("unknown target status should be rejected")
		}
	})
}

func TestQuoteStatusCanTransitionTo(t *testing.T) {
	legal := map[QuoteStatus][]QuoteStatus{
		QuoteStatusNew:       {QuoteStatusContacted},
		QuoteStatusContacted: {QuoteStatusQuoted},
		QuoteStatusQuoted:    {QuoteStatusAccepted, QuoteStatusRejected},
		QuoteStatusAccepted:  {QuoteStatusCompleted},
		QuoteStatusRejected:  {QuoteStatusCompleted},
		QuoteStatusCompleted: {},
	}

	all := []QuoteStatus{
		QuoteStatusNew, QuoteStatusContacted, QuoteStatusQuoted,
		QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusCompleted,
	}

	for from, tos := range legal {
		allowed := map[QuoteStatus]bool{}
		for _, to := range tos {
			allowed[to] = true
		}
		for _, to := range all {
			if got := from.CanTransitionTo(to); got != allowed[to] {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, allowed[to], got)
			}
		}
	}
}
