package entities

// Division scopes jobs, technicians, clients and invoices to one of the
// company's service lines. An empty Division on a query means "no active
// division": listings fall open to the full collection so cross-division
// admin views keep working.

type Division string

const (
	DivisionPlomberie Division = "plomberie"
	DivisionToitures  Division = "toitures"
	DivisionIsolation Division = "isolation"
)

func (d Division) Valid() bool {
	switch d {
	case DivisionPlomberie, DivisionToitures, DivisionIsolation:
		return true
	}
	return false
}
