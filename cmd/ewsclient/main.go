package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-ews-sync/internal/cli"
	"github.com/MKhiriev/go-ews-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if buildVersion == "" {
		buildVersion = "dev"
	}

	cmd := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cli.OpenSession)

	err := cmd.ExecuteContext(context.Background())
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// cobra argument and flag errors are not printed by the commands
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
