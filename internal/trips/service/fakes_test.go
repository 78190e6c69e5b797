package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/artwork"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

// fakeStore is an in-memory implementation of both ProjectStore and
// PlaceStore, good enough to drive the lifecycle services in tests.
type fakeStore struct {
	mu            sync.Mutex
	nextProjectID int64
	nextPlaceID   int64
	projects      map[int64]*domain.Project
	places        map[int64]*domain.Place
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: make(map[int64]*domain.Project),
		places:   make(map[int64]*domain.Place),
	}
}

func (f *fakeStore) Create(ctx context.Context, name string, description *string, startDate *domain.Date) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextProjectID++
	p := &domain.Project{ID: f.nextProjectID, Name: name, Description: description, StartDate: startDate}
	f.projects[p.ID] = p
	out := *p
	return &out, nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeStore) List(ctx context.Context, opts domain.ListOptions) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Project
	for _, p := range f.projects {
		if opts.Search != "" {
			hay := strings.ToLower(p.Name)
			if p.Description != nil {
				hay += " " + strings.ToLower(*p.Description)
			}
			if !strings.Contains(hay, strings.ToLower(opts.Search)) {
				continue
			}
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		switch opts.Ordering {
		case "name":
			return out[i].Name < out[j].Name
		case "-name":
			return out[i].Name > out[j].Name
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	switch {
	case req.ClearDescription:
		p.Description = nil
	case req.Description != nil:
		p.Description = req.Description
	}
	switch {
	case req.ClearStartDate:
		p.StartDate = nil
	case req.StartDate != nil:
		p.StartDate = req.StartDate
	}
	out := *p
	return &out, nil
}

func (f *fakeStore) SetCompleted(ctx context.Context, id int64, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.IsCompleted = completed
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	for pid, pl := range f.places {
		if pl.ProjectID == id {
			delete(f.places, pid)
		}
	}
	return true, nil
}

func (f *fakeStore) CreatePlace(ctx context.Context, projectID, artworkID int64, title string, imageID *string, notes string) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pl := range f.places {
		if pl.ProjectID == projectID && pl.ArtworkID == artworkID {
			return nil, domain.ErrDuplicateArtwork
		}
	}
	f.nextPlaceID++
	pl := &domain.Place{
		ID:        f.nextPlaceID,
		ProjectID: projectID,
		ArtworkID: artworkID,
		Title:     title,
		ImageID:   imageID,
		Notes:     notes,
	}
	f.places[pl.ID] = pl
	out := *pl
	return &out, nil
}

func (f *fakeStore) GetPlace(ctx context.Context, projectID, placeID int64) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.places[placeID]
	if !ok || pl.ProjectID != projectID {
		return nil, domain.ErrPlaceNotFound
	}
	out := *pl
	return &out, nil
}

func (f *fakeStore) ListByProject(ctx context.Context, projectID int64) ([]domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Place
	for _, pl := range f.places {
		if pl.ProjectID == projectID {
			out = append(out, *pl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CountByProject(ctx context.Context, projectID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, pl := range f.places {
		if pl.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ExistsArtwork(ctx context.Context, projectID, artworkID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pl := range f.places {
		if pl.ProjectID == projectID && pl.ArtworkID == artworkID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) HasVisited(ctx context.Context, projectID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pl := range f.places {
		if pl.ProjectID == projectID && pl.Visited {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdatePlace(ctx context.Context, projectID, placeID int64, req domain.UpdatePlaceRequest) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.places[placeID]
	if !ok || pl.ProjectID != projectID {
		return nil, domain.ErrPlaceNotFound
	}
	if req.Notes != nil {
		pl.Notes = *req.Notes
	}
	if req.Visited != nil {
		pl.Visited = *req.Visited
	}
	out := *pl
	return &out, nil
}

func (f *fakeStore) DeletePlace(ctx context.Context, projectID, placeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.places[placeID]
	if !ok || pl.ProjectID != projectID {
		return false, nil
	}
	delete(f.places, placeID)
	return true, nil
}

// placeStore adapts fakeStore to the PlaceStore interface (the place methods
// carry a Place prefix on fakeStore to avoid clashing with project methods).
type placeStore struct{ *fakeStore }

func (s placeStore) Create(ctx context.Context, projectID, artworkID int64, title string, imageID *string, notes string) (*domain.Place, error) {
	return s.CreatePlace(ctx, projectID, artworkID, title, imageID, notes)
}

func (s placeStore) Get(ctx context.Context, projectID, placeID int64) (*domain.Place, error) {
	return s.GetPlace(ctx, projectID, placeID)
}

func (s placeStore) Update(ctx context.Context, projectID, placeID int64, req domain.UpdatePlaceRequest) (*domain.Place, error) {
	return s.UpdatePlace(ctx, projectID, placeID, req)
}

func (s placeStore) Delete(ctx context.Context, projectID, placeID int64) (bool, error) {
	return s.DeletePlace(ctx, projectID, placeID)
}

// brokenPlaceStore fails the insert for one specific artwork ID, simulating
// a database error in the middle of a batch.
type brokenPlaceStore struct {
	placeStore
	failArtworkID int64
}

func (s brokenPlaceStore) Create(ctx context.Context, projectID, artworkID int64, title string, imageID *string, notes string) (*domain.Place, error) {
	if artworkID == s.failArtworkID {
		return nil, errors.New("insert failed")
	}
	return s.placeStore.Create(ctx, projectID, artworkID, title, imageID, notes)
}

// fakeCatalog is a canned artwork lookup with a call counter.
type fakeCatalog struct {
	mu       sync.Mutex
	artworks map[int64]*artwork.Artwork
	failWith error // returned for unknown IDs; defaults to ErrNotFound
	calls    int
}

func newFakeCatalog(arts ...*artwork.Artwork) *fakeCatalog {
	m := make(map[int64]*artwork.Artwork, len(arts))
	for _, a := range arts {
		m[a.ID] = a
	}
	return &fakeCatalog{artworks: m}
}

func (f *fakeCatalog) Lookup(ctx context.Context, artworkID int64) (*artwork.Artwork, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if a, ok := f.artworks[artworkID]; ok {
		out := *a
		return &out, nil
	}
	if f.failWith != nil {
		return nil, f.failWith
	}
	return nil, artwork.ErrNotFound
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func sunday() *artwork.Artwork {
	return &artwork.Artwork{ID: 27992, Title: "A Sunday on La Grande Jatte", ImageID: strPtr("abc123")}
}

func gothic() *artwork.Artwork {
	return &artwork.Artwork{ID: 111628, Title: "American Gothic", ImageID: strPtr("def456")}
}

func artworkN(id int64) *artwork.Artwork {
	return &artwork.Artwork{ID: id, Title: fmt.Sprintf("Artwork %d", id)}
}
