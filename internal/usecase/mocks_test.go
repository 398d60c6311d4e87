package usecase

import (
	"bytes"
	"context"
	"io"
	"time"

	"resumatch/internal/domain/job"
	"resumatch/internal/domain/match"
	"resumatch/internal/domain/resume"
	"resumatch/internal/domain/user"
	"resumatch/internal/repository"

	"github.com/google/uuid"
)

type mockResumeRepo struct {
	byID    map[uuid.UUID]resume.Resume
	created []resume.Resume
	err     error
}

func newMockResumeRepo() *mockResumeRepo {
	return &mockResumeRepo{byID: map[uuid.UUID]resume.Resume{}}
}

func (m *mockResumeRepo) CreateResume(_ context.Context, r resume.Resume) error {
	if m.err != nil {
		return m.err
	}
	m.byID[r.ID] = r
	m.created = append(m.created, r)
	return nil
}

func (m *mockResumeRepo) GetResumeByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	if m.err != nil {
		return resume.Resume{}, m.err
	}
	r, ok := m.byID[id]
	if !ok {
		return resume.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) ListResumesByUser(_ context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []resume.Resume{}
	for _, r := range m.byID {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockResumeRepo) DeleteResume(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repository.ErrResumeNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockAnalysisRepo struct {
	byID    map[uuid.UUID]match.Analysis
	created []match.Analysis
	err     error
}

func newMockAnalysisRepo() *mockAnalysisRepo {
	return &mockAnalysisRepo{byID: map[uuid.UUID]match.Analysis{}}
}

func (m *mockAnalysisRepo) CreateAnalysis(_ context.Context, a match.Analysis) error {
	if m.err != nil {
		return m.err
	}
	m.byID[a.ID] = a
	m.created = append(m.created, a)
	return nil
}

func (m *mockAnalysisRepo) GetAnalysisByID(_ context.Context, id uuid.UUID) (match.Analysis, error) {
	a, ok := m.byID[id]
	if !ok {
		return match.Analysis{}, repository.ErrAnalysisNotFound
	}
	return a, nil
}

func (m *mockAnalysisRepo) ListAnalysesByUser(_ context.Context, userID uuid.UUID, _ int) ([]match.Analysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []match.Analysis{}
	for _, a := range m.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockJobRepo struct {
	byID    map[uuid.UUID]job.Posting
	created []job.Posting
	err     error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{byID: map[uuid.UUID]job.Posting{}}
}

func (m *mockJobRepo) CreateJob(_ context.Context, p job.Posting) error {
	if m.err != nil {
		return m.err
	}
	m.byID[p.ID] = p
	m.created = append(m.created, p)
	return nil
}

func (m *mockJobRepo) GetJobByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	p, ok := m.byID[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (m *mockJobRepo) ListJobs(_ context.Context, _, _ int) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []job.Posting{}
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockJobRepo) ListJobsByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]job.Posting, error) {
	out := []job.Posting{}
	for _, p := range m.byID {
		if p.RecruiterID == recruiterID {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockApplicationRepo struct {
	created []job.Application
	byJob   map[uuid.UUID][]repository.Applicant
	err     error
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{byJob: map[uuid.UUID][]repository.Applicant{}}
}

func (m *mockApplicationRepo) CreateApplication(_ context.Context, a job.Application) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}

func (m *mockApplicationRepo) ExistsByJobAndUser(_ context.Context, jobID, userID uuid.UUID) (bool, error) {
	for _, a := range m.created {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) ListApplicantsByJob(_ context.Context, jobID uuid.UUID) ([]repository.Applicant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byJob[jobID], nil
}

type mockUserRepo struct {
	byID map[uuid.UUID]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range m.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type mockFileStore struct {
	saved   map[string][]byte
	removed []string
	saveErr error
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{saved: map[string][]byte{}}
}

func (m *mockFileStore) Save(filename string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	path := "mock/" + filename
	m.saved[path] = b
	return path, nil
}

func (m *mockFileStore) Open(path string) (io.ReadCloser, error) {
	b, ok := m.saved[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *mockFileStore) Remove(path string) error {
	m.removed = append(m.removed, path)
	delete(m.saved, path)
	return nil
}

type mockJobsCache struct {
	store       map[string][]byte
	invalidated int
}

func newMockJobsCache() *mockJobsCache {
	return &mockJobsCache{store: map[string][]byte{}}
}

func (m *mockJobsCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	_, ok := m.store[key]
	return ok, nil
}

func (m *mockJobsCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.store[key] = []byte("cached")
	return nil
}

func (m *mockJobsCache) InvalidateJobs(_ context.Context) error {
	m.invalidated++
	m.store = map[string][]byte{}
	return nil
}
