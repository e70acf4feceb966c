package study

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc   func(ctx context.Context, wordID int64, result domain.ReviewOutcome, at time.Time) (*domain.StudySession, error)
	CountAllFunc func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			WordID int64
			Result domain.ReviewOutcome
			At     time.Time
		}
		CountAll []struct {
			Ctx context.Context
		}
	}
	lockCreate   sync.RWMutex
	lockCountAll sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, wordID int64, result domain.ReviewOutcome, at time.Time) (*domain.StudySession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID int64
		Result domain.ReviewOutcome
		At     time.Time
	}{Ctx: ctx, WordID: wordID, Result: result, At: at}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, wordID, result, at)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	WordID int64
	Result domain.ReviewOutcome
	At     time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) CountAll(ctx context.Context) (int, error) {
	if mock.CountAllFunc == nil {
		panic("sessionRepoMock.CountAllFunc: method is nil but sessionRepo.CountAll was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCountAll.Lock()
	mock.calls.CountAll = append(mock.calls.CountAll, callInfo)
	mock.lockCountAll.Unlock()
	return mock.CountAllFunc(ctx)
}

func (mock *sessionRepoMock) CountAllCalls() []struct{ Ctx context.Context } {
	mock.lockCountAll.RLock()
	calls := mock.calls.CountAll
	mock.lockCountAll.RUnlock()
	return calls
}
