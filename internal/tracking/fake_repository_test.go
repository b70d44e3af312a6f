package tracking

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

type pairKey struct {
	profileID string
	tmdbID    int
}

type fakeState struct {
	profiles  map[string]domain.ProfileCounters
	media     map[int]domain.Media
	playlists map[int64]domain.Playlist
	members   map[int64]map[int]time.Time
	shows     map[pairKey]domain.UserShow
	ratings   map[pairKey]domain.Rating
	nextID    int64
}

func (s *fakeState) clone() *fakeState {
	members := make(map[int64]map[int]time.Time, len(s.members))
	for id, m := range s.members {
		members[id] = maps.Clone(m)
	}
	return &fakeState{
		profiles:  maps.Clone(s.profiles),
		media:     maps.Clone(s.media),
		playlists: maps.Clone(s.playlists),
		members:   members,
		shows:     maps.Clone(s.shows),
		ratings:   maps.Clone(s.ratings),
		nextID:    s.nextID,
	}
}

// FakeRepository is an in-memory repository.Tracking. A transaction holds the
// repository lock from begin to commit and restores a snapshot on rollback.
type FakeRepository struct {
	mu     sync.Mutex
	state  *fakeState
	failOn string
}

var _ repository.Tracking = (*FakeRepository)(nil)

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		state: &fakeState{
			profiles:  make(map[string]domain.ProfileCounters),
			media:     make(map[int]domain.Media),
			playlists: make(map[int64]domain.Playlist),
			members:   make(map[int64]map[int]time.Time),
			shows:     make(map[pairKey]domain.UserShow),
			ratings:   make(map[pairKey]domain.Rating),
		},
	}
}

var errInjected = errors.New("injected failure")

// FailOn makes the named transactional step return an error
func (f *FakeRepository) FailOn(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn = step
}

// SetCounters overwrites stored counters to simulate drift
func (f *FakeRepository) SetCounters(profileID string, c domain.ProfileCounters) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.profiles[profileID] = c
}

func (f *FakeRepository) BeginTrackingTx(ctx context.Context) (repository.TrackingTx, error) {
	f.mu.Lock()
	return &fakeTx{repo: f, snapshot: f.state.clone()}, nil
}

func (f *FakeRepository) GetUserShow(ctx context.Context, profileID string, tmdbID int) (*domain.UserShow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	show, ok := f.state.shows[pairKey{profileID, tmdbID}]
	if !ok {
		return nil, nil
	}
	m := f.state.media[tmdbID]
	show.Media = &m
	return &show, nil
}

func (f *FakeRepository) ListUserShows(ctx context.Context, profileID string, filter domain.ShowFilter) ([]domain.UserShow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shows := []domain.UserShow{}
	for k, s := range f.state.shows {
		if k.profileID != profileID {
			continue
		}
		switch filter {
		case domain.ShowFilterWatched:
			if !s.Watched {
				continue
			}
		case domain.ShowFilterListed:
			if !s.Listed {
				continue
			}
		default:
			if !s.Watched && !s.Listed {
				continue
			}
		}
		m := f.state.media[k.tmdbID]
		s.Media = &m
		shows = append(shows, s)
	}
	sort.Slice(shows, func(i, j int) bool { return shows[i].MediaTmdbID < shows[j].MediaTmdbID })
	return shows, nil
}

func (f *FakeRepository) GetRating(ctx context.Context, profileID string, tmdbID int) (*domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.state.ratings[pairKey{profileID, tmdbID}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *FakeRepository) GetCounters(ctx context.Context, profileID string) (*domain.ProfileCounters, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.state.profiles[profileID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &c, nil
}

func (f *FakeRepository) IsFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.state.playlists {
		if p.ProfileID == profileID && p.IsFavorite {
			_, ok := f.state.members[id][tmdbID]
			return ok, nil
		}
	}
	return false, nil
}

func (f *FakeRepository) ReconcileCounters(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var fixed []string
	for id, stored := range f.state.profiles {
		if actual := f.state.count(id); actual != stored {
			f.state.profiles[id] = actual
			fixed = append(fixed, id)
		}
	}
	sort.Strings(fixed)
	return fixed, nil
}

// Counters returns the stored counters without locking semantics for assertions
func (f *FakeRepository) Counters(profileID string) domain.ProfileCounters {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.profiles[profileID]
}

// TrueCounters recomputes the counters from the relation maps
func (f *FakeRepository) TrueCounters(profileID string) domain.ProfileCounters {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.count(profileID)
}

// FavoriteCount returns the number of favorites playlists and memberships for a profile
func (f *FakeRepository) FavoriteCount(profileID string) (playlists, members int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.state.playlists {
		if p.ProfileID == profileID && p.IsFavorite {
			playlists++
			members += len(f.state.members[id])
		}
	}
	return playlists, members
}

func (s *fakeState) count(profileID string) domain.ProfileCounters {
	var c domain.ProfileCounters
	for k, show := range s.shows {
		if k.profileID != profileID {
			continue
		}
		if show.Watched {
			c.Watched++
		}
		if show.Listed {
			c.WantToWatch++
		}
	}
	for k := range s.ratings {
		if k.profileID == profileID {
			c.Rated++
		}
	}
	return c
}

type fakeTx struct {
	repo     *FakeRepository
	snapshot *fakeState
	done     bool
}

var _ repository.TrackingTx = (*fakeTx)(nil)

func (t *fakeTx) fail(step string) error {
	if t.repo.failOn == step {
		return errInjected
	}
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	if err := t.fail("Commit"); err != nil {
		t.repo.state = t.snapshot
		t.repo.mu.Unlock()
		return err
	}
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	t.repo.state = t.snapshot
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeTx) LockProfile(ctx context.Context, profileID string) error {
	if err := t.fail("LockProfile"); err != nil {
		return err
	}
	if _, ok := t.repo.state.profiles[profileID]; !ok {
		t.repo.state.profiles[profileID] = domain.ProfileCounters{}
	}
	return nil
}

func (t *fakeTx) UpsertMedia(ctx context.Context, input domain.MediaInput) (*domain.Media, error) {
	if err := t.fail("UpsertMedia"); err != nil {
		return nil, err
	}
	m, ok := t.repo.state.media[input.TmdbID]
	if !ok {
		m = domain.Media{TmdbID: input.TmdbID, Title: input.TitleOrDefault(), CreatedAt: time.Now()}
	} else if m.Title == domain.DefaultMediaTitle && input.Title != "" {
		m.Title = input.Title
	}
	if m.PosterURL == nil {
		m.PosterURL = input.PosterURL
	}
	if m.Description == nil {
		m.Description = input.Description
	}
	if m.ReleaseYear == nil {
		m.ReleaseYear = input.ReleaseYear
	}
	if m.Producer == nil {
		m.Producer = input.Producer
	}
	m.UpdatedAt = time.Now()
	t.repo.state.media[input.TmdbID] = m
	return &m, nil
}

func (t *fakeTx) AddPlaylistMedia(ctx context.Context, playlistID int64, tmdbID int) (bool, error) {
	if err := t.fail("AddPlaylistMedia"); err != nil {
		return false, err
	}
	set, ok := t.repo.state.members[playlistID]
	if !ok {
		set = make(map[int]time.Time)
		t.repo.state.members[playlistID] = set
	}
	if _, exists := set[tmdbID]; exists {
		return false, nil
	}
	set[tmdbID] = time.Now()
	return true, nil
}

func (t *fakeTx) RemovePlaylistMedia(ctx context.Context, playlistID int64, tmdbID int) (bool, error) {
	if err := t.fail("RemovePlaylistMedia"); err != nil {
		return false, err
	}
	set := t.repo.state.members[playlistID]
	if _, exists := set[tmdbID]; !exists {
		return false, nil
	}
	delete(set, tmdbID)
	return true, nil
}

func (t *fakeTx) GetPlaylist(ctx context.Context, playlistID int64) (*domain.Playlist, error) {
	p, ok := t.repo.state.playlists[playlistID]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	p.PlaylistMedia = []domain.PlaylistMedia{}
	for tmdbID, addedAt := range t.repo.state.members[playlistID] {
		p.PlaylistMedia = append(p.PlaylistMedia, domain.PlaylistMedia{
			PlaylistID:  playlistID,
			MediaTmdbID: tmdbID,
			AddedAt:     addedAt,
			Media:       t.repo.state.media[tmdbID],
		})
	}
	sort.Slice(p.PlaylistMedia, func(i, j int) bool {
		return p.PlaylistMedia[i].MediaTmdbID < p.PlaylistMedia[j].MediaTmdbID
	})
	return &p, nil
}

func (t *fakeTx) EnsureFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error) {
	if err := t.fail("EnsureFavoritesPlaylist"); err != nil {
		return nil, err
	}
	if p, err := t.FindFavoritesPlaylist(ctx, profileID); err == nil {
		return p, nil
	}
	t.repo.state.nextID++
	p := domain.Playlist{
		ID:         t.repo.state.nextID,
		ProfileID:  profileID,
		Name:       domain.FavoritesPlaylistName,
		IsFavorite: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	t.repo.state.playlists[p.ID] = p
	return &p, nil
}

func (t *fakeTx) FindFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error) {
	for _, p := range t.repo.state.playlists {
		if p.ProfileID == profileID && p.IsFavorite {
			return &p, nil
		}
	}
	return nil, domain.ErrPlaylistNotFound
}

func (t *fakeTx) GetUserShowForUpdate(ctx context.Context, profileID string, tmdbID int) (*domain.UserShow, error) {
	show, ok := t.repo.state.shows[pairKey{profileID, tmdbID}]
	if !ok {
		return nil, nil
	}
	return &show, nil
}

func (t *fakeTx) SaveUserShow(ctx context.Context, show domain.UserShow) error {
	if err := t.fail("SaveUserShow"); err != nil {
		return err
	}
	show.Media = nil
	show.UpdatedAt = time.Now()
	t.repo.state.shows[pairKey{show.ProfileID, show.MediaTmdbID}] = show
	return nil
}

func (t *fakeTx) UpsertRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	if err := t.fail("UpsertRating"); err != nil {
		return nil, err
	}
	key := pairKey{rating.ProfileID, rating.MediaTmdbID}
	existing, ok := t.repo.state.ratings[key]
	now := time.Now()
	if ok {
		existing.Rating = rating.Rating
		if rating.Review != nil {
			existing.Review = rating.Review
		}
		existing.UpdatedAt = now
	} else {
		existing = rating
		existing.CreatedAt = now
		existing.UpdatedAt = now
	}
	t.repo.state.ratings[key] = existing
	return &existing, nil
}

func (t *fakeTx) RecountProfile(ctx context.Context, profileID string) (*domain.ProfileCounters, error) {
	if err := t.fail("RecountProfile"); err != nil {
		return nil, err
	}
	c := t.repo.state.count(profileID)
	t.repo.state.profiles[profileID] = c
	return &c, nil
}
