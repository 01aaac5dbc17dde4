package mocks

import (
	"errors"

	gomock "go.uber.org/mock/gomock"
)

var ErrCacheMiss = errors.New("cache miss")

// Miss makes every lookup miss and accepts any write, including the ones made
// by detached goroutines after the caller returns.
func Miss(m *MockRedisCache) {
	m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrCacheMiss).AnyTimes()
	m.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}
