package handler

import (
	commonhandler "fleet-app-go/internal/transport/httpserver/handler/common"
	fleethandler "fleet-app-go/internal/transport/httpserver/handler/fleet"
	reportshandler "fleet-app-go/internal/transport/httpserver/handler/reports"
)

type Handlers struct {
	Common  *commonhandler.Handlers
	Fleet   *fleethandler.Handlers
	Reports *reportshandler.Handlers
}

func New(common *commonhandler.Handlers, fleet *fleethandler.Handlers, reports *reportshandler.Handlers) *Handlers {
	return &Handlers{
		Common:  common,
		Fleet:   fleet,
		Reports: reports,
	}
}
