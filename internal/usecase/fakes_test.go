package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
)

// In-memory fakes shared by the usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return fmt.Errorf("%w: duplicate key", entity.ErrConflict)
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return nil, fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	tokens := stored.RefreshTokens
	clone := *user
	clone.RefreshTokens = tokens
	r.users[user.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakeUserRepo) AddRefreshToken(ctx context.Context, userID string, token entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	u.RefreshTokens = append(u.RefreshTokens, token)
	return nil
}

func (r *fakeUserRepo) RemoveRefreshToken(ctx context.Context, userID, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	kept := u.RefreshTokens[:0]
	for _, t := range u.RefreshTokens {
		if t.TokenHash != tokenHash {
			kept = append(kept, t)
		}
	}
	u.RefreshTokens = kept
	return nil
}

func (r *fakeUserRepo) ReplaceRefreshTokens(ctx context.Context, userID string, tokens []entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	u.RefreshTokens = tokens
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("%w: user not found", entity.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

// tokenCount reports how many refresh-token hashes a user currently holds.
func (r *fakeUserRepo) tokenCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		return len(u.RefreshTokens)
	}
	return 0
}

// fakeJWT issues tokens of the form <kind>:<userID>:<n> and only parses
// tokens it issued itself.
type fakeJWT struct {
	mu     sync.Mutex
	n      int
	issued map[string]string // token -> userID
}

func newFakeJWT() *fakeJWT {
	return &fakeJWT{issued: make(map[string]string)}
}

func (f *fakeJWT) generate(kind string, user *entity.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	token := fmt.Sprintf("%s:%s:%d", kind, user.ID, f.n)
	f.issued[token] = user.ID
	return token, nil
}

func (f *fakeJWT) parse(kind, token string) (*entity.Claims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.issued[token]
	if !ok || !strings.HasPrefix(token, kind+":") {
		return nil, errors.New("token is malformed")
	}
	return &entity.Claims{UserID: userID}, nil
}

func (f *fakeJWT) GenerateAccessToken(user *entity.User) (string, error) {
	return f.generate("access", user)
}

func (f *fakeJWT) GenerateRefreshToken(user *entity.User) (string, error) {
	return f.generate("refresh", user)
}

func (f *fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	return f.parse("access", token)
}

func (f *fakeJWT) ParseRefreshToken(token string) (*entity.Claims, error) {
	return f.parse("refresh", token)
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "bcrypt$" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "bcrypt$"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

func (fakeHasher) HashString(s string) string { return "sha$" + s }

func (fakeHasher) CheckHash(s, hash string) bool { return hash == "sha$"+s }

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 7 {
		return errors.New("too short")
	}
	return nil
}

type fakeUUIDGen struct {
	mu sync.Mutex
	n  int
}

func (f *fakeUUIDGen) NewUUID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return fmt.Sprintf("uuid-%d", f.n)
}

type fakeRandomGen struct{}

func (fakeRandomGen) GenerateRandomToken(n int) (string, error) { return "random-token", nil }

func (fakeRandomGen) GenerateUsername() string { return "user_1700000000_042" }

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                { return "http://localhost:8080" }
func (fakeConfig) GetFrontendURL() string               { return "http://localhost:5173" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration  { return 15 * time.Minute }
func (fakeConfig) GetRefreshTokenExpiry() time.Duration { return 168 * time.Hour }
func (fakeConfig) GetCookieSecure() bool                { return false }
func (fakeConfig) GetGeoServiceURL() string             { return "" }
func (fakeConfig) GetCORSOrigins() []string             { return []string{"*"} }

// fakeDestRepo keeps destinations per collection and records the order in
// which Delete visits collections.
type fakeDestRepo struct {
	mu          sync.Mutex
	collections map[entity.DestinationType][]entity.Destination
	deleteScan  []entity.DestinationType
}

func newFakeDestRepo() *fakeDestRepo {
	return &fakeDestRepo{collections: make(map[entity.DestinationType][]entity.Destination)}
}

var _ contract.IDestinationRepository = (*fakeDestRepo)(nil)

func (r *fakeDestRepo) add(t entity.DestinationType, d entity.Destination) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections[t] = append(r.collections[t], d)
}

func (r *fakeDestRepo) Create(ctx context.Context, t entity.DestinationType, d *entity.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.collections[t] {
		if existing.ID == d.ID {
			return fmt.Errorf("%w: duplicate id", entity.ErrConflict)
		}
	}
	r.collections[t] = append(r.collections[t], *d)
	return nil
}

func (r *fakeDestRepo) GetByID(ctx context.Context, t entity.DestinationType, id int64) (*entity.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.collections[t] {
		if d.ID == id {
			clone := d
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: not found", entity.ErrNotFound)
}

func (r *fakeDestRepo) ListByType(ctx context.Context, t entity.DestinationType) ([]entity.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Destination(nil), r.collections[t]...), nil
}

func (r *fakeDestRepo) ListAll(ctx context.Context) ([]entity.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []entity.Destination
	for _, t := range entity.DestinationTypes() {
		for _, d := range r.collections[t] {
			d.Collection = t
			all = append(all, d)
		}
	}
	return all, nil
}

func (r *fakeDestRepo) Search(ctx context.Context, t entity.DestinationType, q contract.DestinationSearch) ([]entity.Destination, error) {
	return r.ListByType(ctx, t)
}

func (r *fakeDestRepo) SearchByMonth(ctx context.Context, t entity.DestinationType, month string) ([]entity.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Destination
	for _, d := range r.collections[t] {
		for _, m := range d.BestTimeToVisit {
			if strings.EqualFold(m, month) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeDestRepo) Sample(ctx context.Context, t entity.DestinationType, q contract.DestinationSearch, month string, limit int64) ([]entity.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]entity.Destination(nil), r.collections[t]...)
	if q.Country != "" {
		var filtered []entity.Destination
		for _, d := range out {
			if strings.EqualFold(d.Country, q.Country) {
				filtered = append(filtered, d)
			}
		}
		out = filtered
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDestRepo) Update(ctx context.Context, t entity.DestinationType, id int64, d *entity.Destination) (*entity.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.collections[t] {
		if existing.ID == id {
			updated := *d
			updated.ID = id
			r.collections[t][i] = updated
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("%w: not found", entity.ErrNotFound)
}

func (r *fakeDestRepo) Delete(ctx context.Context, t entity.DestinationType, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteScan = append(r.deleteScan, t)
	for i, d := range r.collections[t] {
		if d.ID == id {
			r.collections[t] = append(r.collections[t][:i], r.collections[t][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: not found", entity.ErrNotFound)
}

type fakeTripRepo struct {
	mu    sync.Mutex
	trips map[entity.TripKind][]entity.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[entity.TripKind][]entity.Trip)}
}

var _ contract.ITripRepository = (*fakeTripRepo)(nil)

func (r *fakeTripRepo) Create(ctx context.Context, kind entity.TripKind, trip *entity.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trips[kind] {
		if t.ID == trip.ID {
			return fmt.Errorf("%w: duplicate id", entity.ErrConflict)
		}
	}
	r.trips[kind] = append(r.trips[kind], *trip)
	return nil
}

func (r *fakeTripRepo) GetByID(ctx context.Context, kind entity.TripKind, id string) (*entity.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trips[kind] {
		if t.ID == id {
			clone := t
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: not found", entity.ErrNotFound)
}

func (r *fakeTripRepo) Find(ctx context.Context, kind entity.TripKind, filter entity.TripFilter) ([]entity.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if filter.Empty() {
		return append([]entity.Trip(nil), r.trips[kind]...), nil
	}
	var out []entity.Trip
	for _, t := range r.trips[kind] {
		switch {
		case filter.Budget != nil && t.Budget == *filter.Budget:
			out = append(out, t)
		case filter.Health != nil && t.Health == *filter.Health:
			out = append(out, t)
		case filter.Age != nil && t.Age == *filter.Age:
			out = append(out, t)
		case filter.Days != nil && t.Days == *filter.Days:
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) Update(ctx context.Context, kind entity.TripKind, id string, trip *entity.Trip) (*entity.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.trips[kind] {
		if t.ID == id {
			updated := *trip
			updated.ID = id
			r.trips[kind][i] = updated
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("%w: not found", entity.ErrNotFound)
}

func (r *fakeTripRepo) Delete(ctx context.Context, kind entity.TripKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.trips[kind] {
		if t.ID == id {
			r.trips[kind] = append(r.trips[kind][:i], r.trips[kind][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: not found", entity.ErrNotFound)
}

// fakeMemoryRepo stores memories under whatever ID the usecase assigned, the
// same way the real store does.
type fakeMemoryRepo struct {
	mu       sync.Mutex
	memories map[string]*entity.Memory
}

func newFakeMemoryRepo() *fakeMemoryRepo {
	return &fakeMemoryRepo{memories: make(map[string]*entity.Memory)}
}

var _ contract.IMemoryRepository = (*fakeMemoryRepo)(nil)

func (r *fakeMemoryRepo) Create(ctx context.Context, memory *entity.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *memory
	r.memories[memory.ID] = &clone
	return nil
}

func (r *fakeMemoryRepo) GetByID(ctx context.Context, id string) (*entity.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.memories[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, fmt.Errorf("%w: not found", entity.ErrNotFound)
}

func (r *fakeMemoryRepo) ListByUser(ctx context.Context, userID, tripID string) ([]entity.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Memory
	for _, m := range r.memories {
		if m.UserID != userID {
			continue
		}
		if tripID != "" && m.TripID != tripID {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMemoryRepo) Update(ctx context.Context, memory *entity.Memory) (*entity.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.memories[memory.ID]; !ok {
		return nil, fmt.Errorf("%w: not found", entity.ErrNotFound)
	}
	clone := *memory
	r.memories[memory.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakeMemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.memories[id]; !ok {
		return fmt.Errorf("%w: not found", entity.ErrNotFound)
	}
	delete(r.memories, id)
	return nil
}

// fakeRecCache records gets, sets and invalidations.
type fakeRecCache struct {
	mu          sync.Mutex
	entries     map[string][]entity.Destination
	invalidated []string
}

func newFakeRecCache() *fakeRecCache {
	return &fakeRecCache{entries: make(map[string][]entity.Destination)}
}

var _ contract.IRecommendationCache = (*fakeRecCache)(nil)

func (c *fakeRecCache) Get(ctx context.Context, key string) ([]entity.Destination, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v, true, nil
	}
	return nil, false, nil
}

func (c *fakeRecCache) Set(ctx context.Context, key string, destinations []entity.Destination) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = destinations
	return nil
}

func (c *fakeRecCache) InvalidateUser(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, userID)
	for k := range c.entries {
		if strings.Contains(k, userID) {
			delete(c.entries, k)
		}
	}
	return nil
}
