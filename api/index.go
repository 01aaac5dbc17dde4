// Package handler exposes the API as a single serverless function. The
// dependency graph is built on the first request and reused by warm instances.
package handler

import (
	"net/http"
	"sync"
	"tourdesk/config"
	"tourdesk/di"
	"tourdesk/shared/logger"
	tdHTTP "tourdesk/transport/http"
)

var (
	once    sync.Once
	service *tdHTTP.HTTP
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.SetLogLevel(config.Get())

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
