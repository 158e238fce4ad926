package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-derma-records/internal/adapter"
	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("derma-records-admin", false).Fatal().Err(err).Msg("error getting configs")
	}

	root := newRootCmd(cfg, adapter.NewHTTPAdminAdapter)
	root.Version = fmt.Sprintf("%s (built %s, commit %s)", orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	if err = root.Execute(); err != nil {
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
