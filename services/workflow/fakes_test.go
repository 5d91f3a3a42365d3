package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	driverRepo "taxibot/database/repository/driver"
	fareRepo "taxibot/database/repository/fare"
	tripRepo "taxibot/database/repository/trip"
	"taxibot/models"
)

// In-memory collaborators honoring the same contracts as the Mongo
// repositories: sentinel errors, atomic driver claim, forward-only trip
// transitions.

type fakeFareRepo struct {
	entries map[string]models.FareEntry
}

func newFakeFareRepo() *fakeFareRepo {
	return &fakeFareRepo{entries: make(map[string]models.FareEntry)}
}

func fareKey(origin, destination string, class models.VehicleClass) string {
	return strings.ToLower(origin) + "|" + strings.ToLower(destination) + "|" + string(class)
}

func (f *fakeFareRepo) add(origin, destination string, class models.VehicleClass, price float64) {
	f.entries[fareKey(origin, destination, class)] = models.FareEntry{
		Origin:      origin,
		Destination: destination,
		Price:       price,
	}
}

func (f *fakeFareRepo) FindFare(ctx context.Context, origin, destination string, class models.VehicleClass) (*models.FareEntry, error) {
	entry, ok := f.entries[fareKey(origin, destination, class)]
	if !ok {
		return nil, fareRepo.ErrFareNotFound
	}
	return &entry, nil
}

type fakeTripRepo struct {
	mu    sync.Mutex
	trips map[string]*models.Trip
	seq   int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*models.Trip)}
}

func (f *fakeTripRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("trip-%d", f.seq)
}

func (f *fakeTripRepo) CreateQuoted(ctx context.Context, trip models.Trip) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip.ID = f.nextID()
	trip.Status = models.TripQuoted
	trip.PaymentStatus = models.PaymentPending
	trip.CreatedAt = time.Now()
	f.trips[trip.ID] = &trip
	return trip.ID, nil
}

func (f *fakeTripRepo) CreateUnquotable(ctx context.Context, trip models.Trip, reason string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip.ID = f.nextID()
	trip.Status = models.TripRouteNotFound
	trip.PaymentStatus = models.PaymentPending
	trip.PriceLocal = 0
	trip.PriceUSD = 0
	trip.QuoteError = reason
	trip.CreatedAt = time.Now()
	f.trips[trip.ID] = &trip
	return trip.ID, nil
}

func (f *fakeTripRepo) MarkAssigned(ctx context.Context, tripID string, driver models.Driver, paymentRef string) (*models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip, ok := f.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", tripID, tripRepo.ErrTripNotFound)
	}
	trip.Status = models.TripAssigned
	trip.PaymentStatus = models.PaymentVerified
	trip.DriverID = driver.ID
	trip.PaymentReference = paymentRef
	copied := *trip
	return &copied, nil
}

func (f *fakeTripRepo) MarkNoDriverAvailable(ctx context.Context, tripID, paymentRef string) (*models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip, ok := f.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", tripID, tripRepo.ErrTripNotFound)
	}
	trip.Status = models.TripNoDriverAvailable
	trip.PaymentStatus = models.PaymentVerified
	trip.PaymentReference = paymentRef
	copied := *trip
	return &copied, nil
}

func (f *fakeTripRepo) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip, ok := f.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", id, tripRepo.ErrTripNotFound)
	}
	copied := *trip
	return &copied, nil
}

func getTrip(t *testing.T, trips *fakeTripRepo, id string) models.Trip {
	t.Helper()
	trip, err := trips.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to fetch trip %s: %v", id, err)
	}
	return *trip
}

type fakeDriverRepo struct {
	mu      sync.Mutex
	drivers []*models.Driver
}

func newFakeDriverRepo(drivers ...models.Driver) *fakeDriverRepo {
	repo := &fakeDriverRepo{}
	for i := range drivers {
		d := drivers[i]
		repo.drivers = append(repo.drivers, &d)
	}
	return repo
}

// ClaimAvailable mirrors the Mongo find-and-flip under a mutex. Which free
// driver comes back is arbitrary, same as production.
func (f *fakeDriverRepo) ClaimAvailable(ctx context.Context) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.drivers {
		if d.Status == models.DriverAvailable {
			d.Status = models.DriverBusy
			copied := *d
			return &copied, nil
		}
	}
	return nil, driverRepo.ErrNoDriverAvailable
}

func (f *fakeDriverRepo) status(id string) models.DriverStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.drivers {
		if d.ID == id {
			return d.Status
		}
	}
	return ""
}

type fakePayments struct {
	ok  bool
	err error
}

func (p fakePayments) Validate(ctx context.Context, reference string) (bool, error) {
	return p.ok, p.err
}

func newService(fares *fakeFareRepo, trips *fakeTripRepo, drivers *fakeDriverRepo) *DefaultWorkflowService {
	return &DefaultWorkflowService{
		Fares:        fares,
		Trips:        trips,
		Drivers:      drivers,
		Payments:     NewApproveAllValidator(),
		ExchangeRate: DefaultExchangeRate,
	}
}
