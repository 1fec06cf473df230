package analyzequeue

import (
	"fmt"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/codequal/codequal-api/pkg/worker/analyze/analyzequeue/task"
	"github.com/codequal/codequal-api/pkg/worker/lib/queue"
)

func ScheduleCodeAnalysis(t *task.CodeAnalysis) error {
	args := []tasks.Arg{
		{
			Type:  "string",
			Value: t.AnalysisGUID,
		},
	}
	signature := &tasks.Signature{
		Name:         "analyzeCodeV1",
		Args:         args,
		RetryCount:   3,
		RetryTimeout: 600, // 600 sec
	}

	_, err := queue.GetServer().SendTask(signature)
	if err != nil {
		return fmt.Errorf("failed to send the code analysis task %v to analyze queue: %s", t, err)
	}

	return nil
}

func ScheduleRepoAnalysis(t *task.RepoAnalysis) error {
	args := []tasks.Arg{
		{
			Type:  "string",
			Value: t.AnalysisGUID,
		},
	}
	signature := &tasks.Signature{
		Name:         "analyzeRepoV1",
		Args:         args,
		RetryCount:   3,
		RetryTimeout: 600, // 600 sec
	}

	_, err := queue.GetServer().SendTask(signature)
	if err != nil {
		return fmt.Errorf("failed to send the repo analysis task %v to analyze queue: %s", t, err)
	}

	return nil
}
