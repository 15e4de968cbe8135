// Command plugin exposes the repo's analyzers to golangci-lint's module
// plugin system.
package main

import (
	"golang.org/x/tools/go/analysis"

	"basegraph.app/taskhook/tools/linters/enumvalidator"
)

type AnalyzerPlugin struct{}

func (*AnalyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		enumvalidator.Analyzer,
	}
}

func New(conf any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumvalidator.Analyzer}, nil
}

// main is required for `go build ./...`; the package is loaded as a plugin
// (-buildmode=plugin), where main is never called.
func main() {}
