package wordimport

import (
	"context"
	"sync"
)

var _ existingLookup = &existingLookupMock{}

type existingLookupMock struct {
	ExistingEnFunc func(ctx context.Context, texts []string) (map[string]int64, error)

	calls struct {
		ExistingEn []struct {
			Ctx   context.Context
			Texts []string
		}
	}
	lockExistingEn sync.RWMutex
}

func (mock *existingLookupMock) ExistingEn(ctx context.Context, texts []string) (map[string]int64, error) {
	if mock.ExistingEnFunc == nil {
		panic("existingLookupMock.ExistingEnFunc: method is nil but existingLookup.ExistingEn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Texts []string
	}{Ctx: ctx, Texts: texts}
	mock.lockExistingEn.Lock()
	mock.calls.ExistingEn = append(mock.calls.ExistingEn, callInfo)
	mock.lockExistingEn.Unlock()
	return mock.ExistingEnFunc(ctx, texts)
}

func (mock *existingLookupMock) ExistingEnCalls() []struct {
	Ctx   context.Context
	Texts []string
} {
	mock.lockExistingEn.RLock()
	calls := mock.calls.ExistingEn
	mock.lockExistingEn.RUnlock()
	return calls
}
