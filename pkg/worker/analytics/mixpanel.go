package analytics

import (
	"os"
	"sync"

	"github.com/codequal/codequal-api/pkg/worker/lib/runmode"
	"github.com/dukex/mixpanel"
)

var mixpanelClient mixpanel.Mixpanel
var mixpanelClientOnce sync.Once

func getMixpanelClient() mixpanel.Mixpanel {
	mixpanelClientOnce.Do(func() {
		if runmode.IsProduction() {
			apiKey := os.Getenv("MIXPANEL_API_KEY")
			mixpanelClient = mixpanel.New(apiKey, "")
		}
	})

	return mixpanelClient
}
