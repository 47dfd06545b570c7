package documents

import "context"

// NoOpScheduler is a mock scheduler that does nothing.
type NoOpScheduler struct{}

// ScheduleRender does nothing.
func (s *NoOpScheduler) ScheduleRender(ctx context.Context, req *RenderRequest) error {
	return nil
}
