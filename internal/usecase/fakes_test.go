package usecase

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/job"
	"jobbridge/internal/domain/provider"
	"jobbridge/internal/domain/skill"
	"jobbridge/internal/domain/user"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/repository"

	"github.com/google/uuid"
)

type mockBeneficiaryRepo struct {
	items   []beneficiary.Beneficiary
	err     error
	created []beneficiary.Beneficiary
	delay   time.Duration
}

func (m *mockBeneficiaryRepo) Create(_ context.Context, b beneficiary.Beneficiary) (beneficiary.Beneficiary, error) {
	if m.err != nil {
		return beneficiary.Beneficiary{}, m.err
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now().UTC()
	m.created = append(m.created, b)
	return b, nil
}

func (m *mockBeneficiaryRepo) GetByID(_ context.Context, id uuid.UUID) (beneficiary.Beneficiary, error) {
	if m.err != nil {
		return beneficiary.Beneficiary{}, m.err
	}
	for _, b := range m.items {
		if b.ID == id {
			return b, nil
		}
	}
	return beneficiary.Beneficiary{}, repository.ErrNotFound
}

func (m *mockBeneficiaryRepo) List(ctx context.Context) ([]beneficiary.Beneficiary, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

type mockProviderRepo struct {
	items   map[uuid.UUID]provider.Provider
	err     error
	findErr error
	created []provider.Provider
}

func (m *mockProviderRepo) Create(_ context.Context, p provider.Provider) (provider.Provider, error) {
	if m.err != nil {
		return provider.Provider{}, m.err
	}
	p.ID = uuid.New()
	m.created = append(m.created, p)
	return p, nil
}

func (m *mockProviderRepo) GetByID(_ context.Context, id uuid.UUID) (provider.Provider, error) {
	if m.err != nil {
		return provider.Provider{}, m.err
	}
	p, ok := m.items[id]
	if !ok {
		return provider.Provider{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockProviderRepo) List(context.Context) ([]provider.Provider, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]provider.Provider, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProviderRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]provider.Provider, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	out := make(map[uuid.UUID]provider.Provider, len(ids))
	for _, id := range ids {
		if p, ok := m.items[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type mockJobRepo struct {
	items         []job.Job
	err           error
	statusUpdates int
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j.ID = uuid.New()
	m.items = append(m.items, j)
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, j := range m.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrNotFound
}

func (m *mockJobRepo) List(context.Context) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockJobRepo) ListByStatus(_ context.Context, status job.Status) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0, len(m.items))
	for _, j := range m.items {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			m.statusUpdates++
			return m.items[i], nil
		}
	}
	return job.Job{}, repository.ErrNotFound
}

type mockSkillRepo struct {
	items []skill.Skill
	err   error
	calls int
}

func (m *mockSkillRepo) GetAllSkills(context.Context) ([]skill.Skill, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockSkillRepo) CreateSkill(_ context.Context, name string) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	for _, s := range m.items {
		if s.Name == name {
			return skill.Skill{}, repository.ErrConflict
		}
	}
	s := skill.Skill{ID: uuid.New(), Name: name}
	m.items = append(m.items, s)
	return s, nil
}

type mockUploader struct {
	keys    []string
	deleted []string
	err     error
	// failAt makes the nth upload (1-based) fail with err
	failAt int
}

func (m *mockUploader) Upload(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if m.err != nil && (m.failAt == 0 || len(m.keys)+1 == m.failAt) {
		return "", m.err
	}
	_, _ = io.Copy(io.Discard, body)
	m.keys = append(m.keys, key)
	return "https://files.example/" + key, nil
}

func (m *mockUploader) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

type memoryCache struct {
	data    map[string][]byte
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.deletes++
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type recordingPublisher struct {
	mu  sync.Mutex
	got []events.Event
	err error
}

func (r *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, evt)
	return r.err
}

type mockUserRepo struct {
	byID map[uuid.UUID]user.User
	err  error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func strPtr(s string) *string { return &s }
