package request

import "github.com/codequal/codequal-api/internal/shared/logutil"

type AnalysisGUID struct {
	AnalysisGUID string `request:"analysisguid,urlPart,"`
}

func (a AnalysisGUID) FillLogContext(lctx logutil.Context) {
	lctx["analysis_guid"] = a.AnalysisGUID
}
