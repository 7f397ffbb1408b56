package cli_test

import (
	"testing"

	"github.com/m-mizutani/docdive/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestListCommand(t *testing.T) {
	gt.NoError(t, cli.New().Run([]string{"docdive", "list"}))
}

func TestListCommandByCategory(t *testing.T) {
	gt.NoError(t, cli.New().Run([]string{"docdive", "list", "-c", "frontend"}))
}

func TestInvalidLogLevel(t *testing.T) {
	gt.Error(t, cli.New().Run([]string{"docdive", "-l", "nope", "list"}))
}
