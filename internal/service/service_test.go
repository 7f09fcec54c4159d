package service

import (
	"github.com/mkosinov/taskboard/internal/domain"
)

// MockNotifier records published board ids.
type MockNotifier struct {
	changed []domain.BoardId
}

func (m *MockNotifier) BoardChanged(boardId domain.BoardId) {
	m.changed = append(m.changed, boardId)
}
