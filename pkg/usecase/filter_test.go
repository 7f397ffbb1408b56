package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/docdive/pkg/usecase"
	"github.com/m-mizutani/gt"
)

const filterDoc = `# Getting Started

Install the package with your favorite package manager.

## Configuration

Set the cache directory and the TTL in the config file.

## Deployment

Ship the binary to your server and run it behind a reverse proxy.

### Troubleshooting

Check the access log when requests fail.
`

func TestFilterShortQueryPassthrough(t *testing.T) {
	for _, query := range []string{"", "ttl", "conf", "  a  "} {
		gt.V(t, usecase.FilterContent(filterDoc, query)).Equal(filterDoc)
	}
}

func TestFilterNoMatchPassthrough(t *testing.T) {
	got := usecase.FilterContent(filterDoc, "kubernetes operator")
	gt.V(t, got).Equal(filterDoc)
}

func TestFilterSelectsMatchingSections(t *testing.T) {
	got := usecase.FilterContent(filterDoc, "cache directory")

	gt.S(t, got).Contains("Set the cache directory")
	gt.False(t, strings.Contains(got, "reverse proxy"))
	gt.False(t, strings.Contains(got, "Install the package"))
}

func TestFilterCaseInsensitive(t *testing.T) {
	got := usecase.FilterContent(filterDoc, "CACHE Directory")
	gt.S(t, got).Contains("Set the cache directory")
}

func TestFilterMultipleMatches(t *testing.T) {
	// "the config" appears in both the Configuration section and nowhere
	// else; "requests" only in Troubleshooting.
	got := usecase.FilterContent(filterDoc, "when requests fail")
	gt.S(t, got).Contains("access log")
	gt.False(t, strings.Contains(got, "package manager"))
}

func TestFilterJoinsWithLevelTwoHeading(t *testing.T) {
	doc := "# Intro\n\nGeneral words.\n\n## Alpha\n\nretry policy for reads.\n\n## Beta\n\nUnrelated.\n\n### Gamma\n\nretry policy for writes.\n"

	// Matched sections lose their own markers and are rejoined with a
	// level-2 heading separator.
	got := usecase.FilterContent(doc, "retry policy")
	gt.V(t, got).Equal("Alpha\n\nretry policy for reads.\n\n## Gamma\n\nretry policy for writes.")
}

func TestFilterPhraseAcrossSections(t *testing.T) {
	// A phrase split across two sections matches neither; the whole
	// document comes back.
	got := usecase.FilterContent(filterDoc, "config file reverse proxy")
	gt.V(t, got).Equal(filterDoc)
}

func TestIsMarkdown(t *testing.T) {
	gt.True(t, usecase.IsMarkdown("README.md"))
	gt.True(t, usecase.IsMarkdown("page.MDX"))
	gt.False(t, usecase.IsMarkdown("LICENSE"))
	gt.False(t, usecase.IsMarkdown("diagram.png"))
}
