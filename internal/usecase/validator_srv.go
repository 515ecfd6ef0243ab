package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ValidatorService audits cross-table consistency that the store cannot
// enforce on its own: the tickets table has no foreign keys and booked_seats
// is a cached aggregate, so drift is possible and has to be detected.
type ValidatorService interface {
	CheckDatabaseHealth(ctx context.Context) *response.DatabaseHealthResponse
}

type validatorService struct {
	auditRepo repository.AuditRepository
	log       *zap.Logger
}

func NewValidatorService(auditRepo repository.AuditRepository, log *zap.Logger) ValidatorService {
	return &validatorService{
		auditRepo: auditRepo,
		log:       log.With(zap.String("service", "validator")),
	}
}

// CheckDatabaseHealth runs the five audit queries concurrently and folds the
// findings into one verdict. A query failure is reported as ERROR; findings
// as ISSUES_FOUND with a human-readable summary line per failing check.
func (s *validatorService) CheckDatabaseHealth(ctx context.Context) *response.DatabaseHealthResponse {
	var (
		orphans    []repository.OrphanedPassenger
		incomplete []repository.IncompleteUser
		drift      []repository.BookingDrift
		duplicates []repository.DuplicateSeat
		broken     []repository.BrokenReference
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orphans, err = s.auditRepo.OrphanedPassengers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		incomplete, err = s.auditRepo.IncompleteUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		drift, err = s.auditRepo.FlightBookingDrift(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		duplicates, err = s.auditRepo.DuplicateSeats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		broken, err = s.auditRepo.BrokenReferences(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Database health check failed", zap.Error(err))
		return &response.DatabaseHealthResponse{
			Status:    response.HealthStatusError,
			Timestamp: time.Now(),
			Error:     err.Error(),
		}
	}

	var summary []string
	if n := len(orphans); n > 0 {
		summary = append(summary, fmt.Sprintf("%d orphaned passenger(s)", n))
	}
	if n := len(incomplete); n > 0 {
		summary = append(summary, fmt.Sprintf("%d incomplete user(s)", n))
	}
	if n := len(drift); n > 0 {
		summary = append(summary, fmt.Sprintf("%d flight booking inconsistencies", n))
	}
	if n := len(duplicates); n > 0 {
		summary = append(summary, fmt.Sprintf("%d duplicate seat assignments", n))
	}
	if n := len(broken); n > 0 {
		summary = append(summary, fmt.Sprintf("%d broken reference(s)", n))
	}

	status := response.HealthStatusHealthy
	if len(summary) > 0 {
		status = response.HealthStatusIssues
		s.log.Warn("Database consistency issues found", zap.Strings("summary", summary))
	} else {
		summary = []string{"Database is consistent"}
	}

	return &response.DatabaseHealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Summary:   summary,
		Details:   buildConsistencyChecks(orphans, incomplete, drift, duplicates, broken),
	}
}

func buildConsistencyChecks(
	orphans []repository.OrphanedPassenger,
	incomplete []repository.IncompleteUser,
	drift []repository.BookingDrift,
	duplicates []repository.DuplicateSeat,
	broken []repository.BrokenReference,
) *response.ConsistencyChecks {
	checks := &response.ConsistencyChecks{
		OrphanedPassengers: make([]response.OrphanedPassengerDetail, len(orphans)),
		IncompleteUsers:    make([]response.IncompleteUserDetail, len(incomplete)),
		BookingDrift:       make([]response.BookingDriftDetail, len(drift)),
		DuplicateSeats:     make([]response.DuplicateSeatDetail, len(duplicates)),
		BrokenReferences:   make([]response.BrokenReferenceDetail, len(broken)),
	}

	for i, o := range orphans {
		checks.OrphanedPassengers[i] = response.OrphanedPassengerDetail{
			ID:       o.ID,
			FullName: o.FullName,
			Email:    o.Email,
		}
	}
	for i, u := range incomplete {
		checks.IncompleteUsers[i] = response.IncompleteUserDetail{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		}
	}
	for i, d := range drift {
		checks.BookingDrift[i] = response.BookingDriftDetail{
			FlightID:      d.FlightID,
			Route:         d.Origin + " -> " + d.Destination,
			ActualTickets: d.ActualTickets,
			RecordedSeats: d.RecordedSeats,
			Difference:    d.Difference,
		}
	}
	for i, d := range duplicates {
		checks.DuplicateSeats[i] = response.DuplicateSeatDetail{
			FlightID:    d.FlightID,
			SeatNumber:  d.SeatNumber,
			TicketCount: d.TicketCount,
			TicketIDs:   d.TicketIDs,
		}
	}
	for i, b := range broken {
		checks.BrokenReferences[i] = response.BrokenReferenceDetail{
			TicketID: b.TicketID,
			Kind:     b.Kind,
		}
	}

	return checks
}
