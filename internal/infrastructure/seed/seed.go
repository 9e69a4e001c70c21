package seed

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase"
)

// Demo returns the fixed dataset loaded at startup. IDs are stable so the
// dashboard and the API docs can reference the same records across restarts.
func Demo() usecase.SeedData {
	now := time.Now().UTC()
	morning := time.Date(now.Year(), now.Month(), now.Day(), 13, 0, 0, 0, time.UTC)

	clients := []entities.Client{
		{
			ID: "cli-tremblay", Division: entities.DivisionPlomberie,
			Type: entities.ClientTypeResidential, Name: "Marie Tremblay",
			Phone: "514-555-0131", Email: "m.tremblay@example.com",
			Address:   "4211 rue Saint-Denis, Montréal",
			Equipment: []string{"chauffe-eau Giant 60gal"},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "cli-bergeron", Division: entities.DivisionToitures,
			Type: entities.ClientTypeCommercial, Name: "Gestion Bergeron inc.",
			Phone: "450-555-0177", Email: "info@bergeron.example.com",
			Address:   "88 boul. Curé-Labelle, Laval",
			Equipment: []string{"membrane élastomère 2019"},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "cli-nguyen", Division: entities.DivisionIsolation,
			Type: entities.ClientTypeResidential, Name: "Thi Nguyen",
			Phone: "514-555-0162",
			Address:   "930 av. du Parc, Montréal",
			CreatedAt: now, UpdatedAt: now,
		},
	}

	technicians := []entities.Technician{
		{
			ID: "tech-lavoie", Division: entities.DivisionPlomberie,
			Name: "Luc Lavoie", Phone: "514-555-0201",
			Status: entities.TechnicianStatusAvailable,
			Skills: []string{"drain", "chauffe-eau", "urgence"},
			Rating: 4.8, Latitude: 45.5231, Longitude: -73.5817,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "tech-roy", Division: entities.DivisionPlomberie,
			Name: "Maya Roy", Phone: "514-555-0202",
			Status: entities.TechnicianStatusAvailable,
			Skills: []string{"robinetterie", "installation"},
			Rating: 4.6, Latitude: 45.5412, Longitude: -73.6102,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "tech-girard", Division: entities.DivisionToitures,
			Name: "Antoine Girard", Phone: "450-555-0203",
			Status: entities.TechnicianStatusAvailable,
			Skills: []string{"bardeaux", "membrane"},
			Rating: 4.9, Latitude: 45.6066, Longitude: -73.7124,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "tech-pelletier", Division: entities.DivisionIsolation,
			Name: "Sophie Pelletier", Phone: "514-555-0204",
			Status: entities.TechnicianStatusOffDuty,
			Skills: []string{"cellulose", "uréthane"},
			Rating: 4.7, Latitude: 45.5017, Longitude: -73.5673,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	jobs := []entities.Job{
		{
			ID: "job-drain-stdenis", Division: entities.DivisionPlomberie,
			Status: entities.JobStatusPending, Priority: entities.JobPriorityUrgent,
			ServiceType: "débouchage de drain",
			Description: "Refoulement au sous-sol, drain principal",
			ClientID:    "cli-tremblay",
			Client:      entities.ClientSnapshot{Name: "Marie Tremblay", Address: "4211 rue Saint-Denis, Montréal", Phone: "514-555-0131"},
			ScheduledAt: morning, DurationMinutes: 90,
			Latitude: 45.5269, Longitude: -73.5825,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "job-toiture-laval", Division: entities.DivisionToitures,
			Status: entities.JobStatusPending, Priority: entities.JobPriorityHigh,
			ServiceType: "réparation de membrane",
			Description: "Infiltration rapportée coin nord-est du toit plat",
			ClientID:    "cli-bergeron",
			Client:      entities.ClientSnapshot{Name: "Gestion Bergeron inc.", Address: "88 boul. Curé-Labelle, Laval", Phone: "450-555-0177"},
			ScheduledAt: morning.Add(2 * time.Hour), DurationMinutes: 240,
			Latitude: 45.6089, Longitude: -73.7211,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "job-isolation-parc", Division: entities.DivisionIsolation,
			Status: entities.JobStatusPending, Priority: entities.JobPriorityNormal,
			ServiceType: "isolation de l'entretoit",
			Description: "Soufflage de cellulose, entretoit 900 pi2",
			ClientID:    "cli-nguyen",
			Client:      entities.ClientSnapshot{Name: "Thi Nguyen", Address: "930 av. du Parc, Montréal", Phone: "514-555-0162"},
			ScheduledAt: morning.Add(24 * time.Hour), DurationMinutes: 180,
			Latitude: 45.5092, Longitude: -73.5873,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	quotes := []entities.QuoteSubmission{
		{
			ID: "quote-gagnon", Name: "Paul Gagnon", Phone: "438-555-0144",
			Email:       "p.gagnon@example.com",
			ServiceType: "toiture", ClientType: entities.ClientTypeResidential,
			Description: "Bardeaux soulevés après la tempête, soumission demandée",
			Status:      entities.QuoteStatusNew,
			CreatedAt:   now, UpdatedAt: now,
		},
	}

	return usecase.SeedData{
		Clients:     clients,
		Technicians: technicians,
		Jobs:        jobs,
		Quotes:      quotes,
	}
}
