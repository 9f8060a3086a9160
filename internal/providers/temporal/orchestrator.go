package temporal

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
)

// TemporalOrchestrator starts workflows on behalf of the bridge, the sweeper and the API
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// NewOrchestrator wraps a Temporal client
func NewOrchestrator(c client.Client) TemporalOrchestrator {
	return c
}

// StartOnce starts a workflow whose id may only be reused after a failed run.
// A running workflow with the same id is returned as is; a nil run with a nil
// error means a run with this id already completed successfully.
func StartOnce(ctx context.Context, o TemporalOrchestrator, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error) {
	options.WorkflowIDReusePolicy = enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY
	run, err := o.ExecuteWorkflow(ctx, options, workflow, args...)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to start workflow %s: %w", options.ID, err)
	}
	return run, nil
}
