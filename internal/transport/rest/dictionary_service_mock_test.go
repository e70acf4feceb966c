package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/dictionary"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	ListWordsFunc  func(ctx context.Context, input dictionary.ListWordsInput) ([]domain.Word, error)
	GetWordFunc    func(ctx context.Context, id int64) (*domain.Word, error)
	CreateWordFunc func(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	UpdateWordFunc func(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWordFunc func(ctx context.Context, id int64) error

	calls struct {
		ListWords []struct {
			Ctx   context.Context
			Input dictionary.ListWordsInput
		}
		GetWord []struct {
			Ctx context.Context
			Id  int64
		}
		CreateWord []struct {
			Ctx   context.Context
			Input dictionary.CreateWordInput
		}
		UpdateWord []struct {
			Ctx   context.Context
			Input dictionary.UpdateWordInput
		}
		DeleteWord []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockListWords  sync.RWMutex
	lockGetWord    sync.RWMutex
	lockCreateWord sync.RWMutex
	lockUpdateWord sync.RWMutex
	lockDeleteWord sync.RWMutex
}

func (mock *dictionaryServiceMock) ListWords(ctx context.Context, input dictionary.ListWordsInput) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("dictionaryServiceMock.ListWordsFunc: method is nil but dictionaryService.ListWords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.ListWordsInput
	}{Ctx: ctx, Input: input}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, input)
}

func (mock *dictionaryServiceMock) ListWordsCalls() []struct {
	Ctx   context.Context
	Input dictionary.ListWordsInput
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("dictionaryServiceMock.GetWordFunc: method is nil but dictionaryService.GetWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, id)
}

func (mock *dictionaryServiceMock) GetWordCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error) {
	if mock.CreateWordFunc == nil {
		panic("dictionaryServiceMock.CreateWordFunc: method is nil but dictionaryService.CreateWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.CreateWordInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateWord.Lock()
	mock.calls.CreateWord = append(mock.calls.CreateWord, callInfo)
	mock.lockCreateWord.Unlock()
	return mock.CreateWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) CreateWordCalls() []struct {
	Ctx   context.Context
	Input dictionary.CreateWordInput
} {
	mock.lockCreateWord.RLock()
	calls := mock.calls.CreateWord
	mock.lockCreateWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) UpdateWord(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error) {
	if mock.UpdateWordFunc == nil {
		panic("dictionaryServiceMock.UpdateWordFunc: method is nil but dictionaryService.UpdateWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.UpdateWordInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateWord.Lock()
	mock.calls.UpdateWord = append(mock.calls.UpdateWord, callInfo)
	mock.lockUpdateWord.Unlock()
	return mock.UpdateWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) UpdateWordCalls() []struct {
	Ctx   context.Context
	Input dictionary.UpdateWordInput
} {
	mock.lockUpdateWord.RLock()
	calls := mock.calls.UpdateWord
	mock.lockUpdateWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DeleteWord(ctx context.Context, id int64) error {
	if mock.DeleteWordFunc == nil {
		panic("dictionaryServiceMock.DeleteWordFunc: method is nil but dictionaryService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, id)
}

func (mock *dictionaryServiceMock) DeleteWordCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}
