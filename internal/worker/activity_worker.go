package worker

import (
	"github.com/spec-kit/listener-admin/internal/service"
)

// StartActivityWorker registers audit log handlers.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
