package task

type CodeAnalysis struct {
	AnalysisGUID string
}

type RepoAnalysis struct {
	AnalysisGUID string
}
