package temporal

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
)

// NewSentryActivityInterceptor creates a worker interceptor that gives every activity its own Sentry hub
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &SentryActivityInterceptor{}
}

// SentryActivityInterceptor injects a Sentry hub tagged with the activity and workflow into the activity context,
// so logger.ErrorCtx reports carry the execution that failed
type SentryActivityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (s *SentryActivityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &sentryActivityInboundInterceptor{
		ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{
			Next: next,
		},
	}
}

type sentryActivityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

func (s *sentryActivityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()

	info := activity.GetInfo(ctx)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("activity_type", info.ActivityType.Name)
		if info.WorkflowType != nil {
			scope.SetTag("workflow_type", info.WorkflowType.Name)
		}
		scope.SetTag("workflow_id", info.WorkflowExecution.ID)
		scope.SetTag("task_queue", info.TaskQueue)
	})

	ctx = sentry.SetHubOnContext(ctx, hub)
	return s.Next.ExecuteActivity(ctx, in)
}
