package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

func (s *RepositorySuite) TestOperationEvents() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	events := []model.OperationEvent{
		{OperationID: "op-1", ChainID: "btcsq", Time: base.Add(time.Second), Level: model.EventError, Message: "task failed"},
		{OperationID: "op-1", ChainID: "btcsq", Time: base, Level: model.EventInfo, Message: "task started"},
		{OperationID: "op-2", ChainID: "btcsq", Time: base, Level: model.EventInfo, Message: "task started"},
	}

	s.metrics.EXPECT().Observe("insert_operation_events", "btcsq", gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("operation_events", "btcsq", gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertOperationEvents(s.testCtx, events))
	s.Equal(uint64(3), s.countRows("pop_operation_events"))

	got, err := s.repo.OperationEvents(s.testCtx, "op-1")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("task started", got[0].Message)
	s.Equal(model.EventError, got[1].Level)
	s.True(base.Add(time.Second).Equal(got[1].Time))
}

func (s *RepositorySuite) TestInsertOperationEventsEmpty() {
	s.metrics.EXPECT().Observe("insert_operation_events", "", gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertOperationEvents(s.testCtx, nil))
	s.Equal(uint64(0), s.countRows("pop_operation_events"))
}
