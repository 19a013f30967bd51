package worker

import (
	"github.com/spec-kit/subsidy-service/internal/service"
)

// StartAnnounceWorker registers announcer handlers.
func StartAnnounceWorker(announcer *service.AnnouncerService) {
	if announcer == nil {
		return
	}
	announcer.RegisterHandlers()
}
