package study

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Word, error)
	UpdateCountersFunc   func(ctx context.Context, id int64, expectedReviewCount int, c domain.MasteryCounters) error
	RandomFunc           func(ctx context.Context, limit int) ([]domain.Word, error)
	MasteryHistogramFunc func(ctx context.Context) (map[int]int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateCounters []struct {
			Ctx                 context.Context
			ID                  int64
			ExpectedReviewCount int
			C                   domain.MasteryCounters
		}
		Random []struct {
			Ctx   context.Context
			Limit int
		}
		MasteryHistogram []struct {
			Ctx context.Context
		}
	}
	lockGetByID          sync.RWMutex
	lockUpdateCounters   sync.RWMutex
	lockRandom           sync.RWMutex
	lockMasteryHistogram sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) UpdateCounters(ctx context.Context, id int64, expectedReviewCount int, c domain.MasteryCounters) error {
	if mock.UpdateCountersFunc == nil {
		panic("wordRepoMock.UpdateCountersFunc: method is nil but wordRepo.UpdateCounters was just called")
	}
	callInfo := struct {
		Ctx                 context.Context
		ID                  int64
		ExpectedReviewCount int
		C                   domain.MasteryCounters
	}{Ctx: ctx, ID: id, ExpectedReviewCount: expectedReviewCount, C: c}
	mock.lockUpdateCounters.Lock()
	mock.calls.UpdateCounters = append(mock.calls.UpdateCounters, callInfo)
	mock.lockUpdateCounters.Unlock()
	return mock.UpdateCountersFunc(ctx, id, expectedReviewCount, c)
}

func (mock *wordRepoMock) UpdateCountersCalls() []struct {
	Ctx                 context.Context
	ID                  int64
	ExpectedReviewCount int
	C                   domain.MasteryCounters
} {
	mock.lockUpdateCounters.RLock()
	calls := mock.calls.UpdateCounters
	mock.lockUpdateCounters.RUnlock()
	return calls
}

func (mock *wordRepoMock) Random(ctx context.Context, limit int) ([]domain.Word, error) {
	if mock.RandomFunc == nil {
		panic("wordRepoMock.RandomFunc: method is nil but wordRepo.Random was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRandom.Lock()
	mock.calls.Random = append(mock.calls.Random, callInfo)
	mock.lockRandom.Unlock()
	return mock.RandomFunc(ctx, limit)
}

func (mock *wordRepoMock) RandomCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRandom.RLock()
	calls := mock.calls.Random
	mock.lockRandom.RUnlock()
	return calls
}

func (mock *wordRepoMock) MasteryHistogram(ctx context.Context) (map[int]int, error) {
	if mock.MasteryHistogramFunc == nil {
		panic("wordRepoMock.MasteryHistogramFunc: method is nil but wordRepo.MasteryHistogram was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockMasteryHistogram.Lock()
	mock.calls.MasteryHistogram = append(mock.calls.MasteryHistogram, callInfo)
	mock.lockMasteryHistogram.Unlock()
	return mock.MasteryHistogramFunc(ctx)
}

func (mock *wordRepoMock) MasteryHistogramCalls() []struct{ Ctx context.Context } {
	mock.lockMasteryHistogram.RLock()
	calls := mock.calls.MasteryHistogram
	mock.lockMasteryHistogram.RUnlock()
	return calls
}
