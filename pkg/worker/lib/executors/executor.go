package executors

import "context"

type RunResult struct {
	StdOut string
}

type Executor interface {
	Run(ctx context.Context, name string, args ...string) (*RunResult, error)

	WithEnv(k, v string) Executor
	SetEnv(k, v string)

	WorkDir() string
	WithWorkDir(wd string) Executor

	CopyFile(ctx context.Context, dst, src string) error

	Clean()
}
