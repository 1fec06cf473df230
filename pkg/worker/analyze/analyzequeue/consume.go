package analyzequeue

import (
	"fmt"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/worker/analyze/analyzequeue/consumers"
	"github.com/codequal/codequal-api/pkg/worker/analyze/processors"
	"github.com/codequal/codequal-api/pkg/worker/lib/queue"
)

func RegisterTasks(pf *processors.Factory, log logutil.Log) {
	codeAnalyzer := consumers.NewAnalyzeCode(pf)
	repoAnalyzer := consumers.NewAnalyzeRepo(pf)

	server := queue.GetServer()
	err := server.RegisterTasks(map[string]interface{}{
		"analyzeCodeV1": codeAnalyzer.Consume,
		"analyzeRepoV1": repoAnalyzer.Consume,
	})
	if err != nil {
		log.Fatalf("Can't register queue tasks: %s", err)
	}
}

func RunWorker(concurrency int) error {
	server := queue.GetServer()
	worker := server.NewWorker("worker_name", concurrency)
	if err := worker.Launch(); err != nil {
		return fmt.Errorf("can't launch worker: %s", err)
	}

	return nil
}
