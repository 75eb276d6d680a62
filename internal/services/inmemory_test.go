package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/testimonial"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

// memStore backs the in-memory repository doubles used by the service
// tests. Events and registrations share the store so the capacity counter
// behaves like the real transactional repository.
type memStore struct {
	mu            sync.Mutex
	events        map[uuid.UUID]*event.Event
	registrations map[uuid.UUID]*registration.Registration
	testimonials  map[uuid.UUID]*testimonial.Testimonial
	volunteers    map[uuid.UUID]*volunteer.Application
	donations     map[uuid.UUID]*donation.Interest
}

func newMemStore() *memStore {
	return &memStore{
		events:        make(map[uuid.UUID]*event.Event),
		registrations: make(map[uuid.UUID]*registration.Registration),
		testimonials:  make(map[uuid.UUID]*testimonial.Testimonial),
		volunteers:    make(map[uuid.UUID]*volunteer.Application),
		donations:     make(map[uuid.UUID]*donation.Interest),
	}
}

type memEventRepo struct{ store *memStore }

func (r *memEventRepo) Create(e *event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.store.events[e.ID] = e
	return nil
}

func (r *memEventRepo) GetByID(id string) (*event.Event, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.events[parsed]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return e, nil
}

func (r *memEventRepo) GetAll() ([]*event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*event.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *memEventRepo) GetUpcoming(limit int) ([]*event.Event, error) {
	return r.GetAll()
}

func (r *memEventRepo) Update(e *event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.events[e.ID]; !ok {
		return postgres.ErrNotFound
	}
	r.store.events[e.ID] = e
	return nil
}

func (r *memEventRepo) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.events[parsed]; !ok {
		return postgres.ErrNotFound
	}
	delete(r.store.events, parsed)
	return nil
}

type memRegistrationRepo struct{ store *memStore }

func (r *memRegistrationRepo) Register(eventID string, registrant registration.Registrant) (*registration.Registration, error) {
	parsed, err := uuid.Parse(eventID)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ev, ok := r.store.events[parsed]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	if ev.IsFull() {
		return nil, postgres.ErrCapacityExceeded
	}
	reg := registration.New(ev.ID, ev.Title, registrant)
	r.store.registrations[reg.ID] = reg
	ev.CurrentAttendees++
	return reg, nil
}

func (r *memRegistrationRepo) GetByID(id string) (*registration.Registration, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	reg, ok := r.store.registrations[parsed]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return reg, nil
}

func (r *memRegistrationRepo) GetByEventID(eventID string) ([]*registration.Registration, error) {
	parsed, err := uuid.Parse(eventID)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*registration.Registration
	for _, reg := range r.store.registrations {
		if reg.EventID == parsed {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *memRegistrationRepo) List(filter postgres.ListFilter) ([]*registration.Registration, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*registration.Registration
	for _, reg := range r.store.registrations {
		if filter.Status != nil && reg.Status != *filter.Status {
			continue
		}
		if !reg.MatchesSearch(filter.Search) {
			continue
		}
		out = append(out, reg)
	}
	return out, nil
}

func (r *memRegistrationRepo) UpdateStatus(id string, status moderation.Status) (*registration.Registration, error) {
	reg, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	reg.Status = status
	return reg, nil
}

func (r *memRegistrationRepo) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	reg, ok := r.store.registrations[parsed]
	if !ok {
		return postgres.ErrNotFound
	}
	delete(r.store.registrations, parsed)
	if ev, ok := r.store.events[reg.EventID]; ok && ev.CurrentAttendees > 0 {
		ev.CurrentAttendees--
	}
	return nil
}

type memTestimonialRepo struct{ store *memStore }

func (r *memTestimonialRepo) Create(t *testimonial.Testimonial) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.store.testimonials[t.ID] = t
	return nil
}

func (r *memTestimonialRepo) GetByID(id string) (*testimonial.Testimonial, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.testimonials[parsed]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return t, nil
}

func (r *memTestimonialRepo) List(filter postgres.ListFilter) ([]*testimonial.Testimonial, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*testimonial.Testimonial
	for _, t := range r.store.testimonials {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if !t.MatchesSearch(filter.Search) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memTestimonialRepo) UpdateStatus(id string, status moderation.Status) (*testimonial.Testimonial, error) {
	t, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t.Status = status
	return t, nil
}

func (r *memTestimonialRepo) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.testimonials[parsed]; !ok {
		return postgres.ErrNotFound
	}
	delete(r.store.testimonials, parsed)
	return nil
}

type memVolunteerRepo struct{ store *memStore }

func (r *memVolunteerRepo) Create(a *volunteer.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.store.volunteers[a.ID] = a
	return nil
}

func (r *memVolunteerRepo) GetByID(id string) (*volunteer.Application, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.volunteers[parsed]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return a, nil
}

func (r *memVolunteerRepo) List(filter postgres.ListFilter) ([]*volunteer.Application, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*volunteer.Application
	for _, a := range r.store.volunteers {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if !a.MatchesSearch(filter.Search) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memVolunteerRepo) UpdateStatus(id string, status moderation.Status) (*volunteer.Application, error) {
	a, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a.Status = status
	return a, nil
}

func (r *memVolunteerRepo) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.volunteers[parsed]; !ok {
		return postgres.ErrNotFound
	}
	delete(r.store.volunteers, parsed)
	return nil
}

type memDonationRepo struct{ store *memStore }

func (r *memDonationRepo) Create(i *donation.Interest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.store.donations[i.ID] = i
	return nil
}

func (r *memDonationRepo) GetByID(id string) (*donation.Interest, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.donations[parsed]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return i, nil
}

func (r *memDonationRepo) List(filter postgres.ListFilter) ([]*donation.Interest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*donation.Interest
	for _, i := range r.store.donations {
		if filter.Status != nil && i.Status != *filter.Status {
			continue
		}
		if !i.MatchesSearch(filter.Search) {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

func (r *memDonationRepo) UpdateStatus(id string, status moderation.Status) (*donation.Interest, error) {
	i, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i.Status = status
	return i, nil
}

func (r *memDonationRepo) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return postgres.ErrNotFound
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.donations[parsed]; !ok {
		return postgres.ErrNotFound
	}
	delete(r.store.donations, parsed)
	return nil
}
