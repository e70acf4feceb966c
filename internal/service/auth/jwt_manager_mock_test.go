package auth

import (
	"sync"
	"time"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(username string) (string, error)
	AccessTTLFunc           func() time.Duration

	calls struct {
		GenerateAccessToken []struct {
			Username string
		}
		AccessTTL []struct{}
	}
	lockGenerateAccessToken sync.RWMutex
	lockAccessTTL           sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(username string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct{ Username string }{Username: username}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(username)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct{ Username string } {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) AccessTTL() time.Duration {
	if mock.AccessTTLFunc == nil {
		panic("jwtManagerMock.AccessTTLFunc: method is nil but jwtManager.AccessTTL was just called")
	}
	mock.lockAccessTTL.Lock()
	mock.calls.AccessTTL = append(mock.calls.AccessTTL, struct{}{})
	mock.lockAccessTTL.Unlock()
	return mock.AccessTTLFunc()
}

func (mock *jwtManagerMock) AccessTTLCalls() []struct{} {
	mock.lockAccessTTL.RLock()
	calls := mock.calls.AccessTTL
	mock.lockAccessTTL.RUnlock()
	return calls
}
