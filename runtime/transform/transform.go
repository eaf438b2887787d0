// Package transform turns workload files the engines can not run directly
// into plain JavaScript.
package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var importRe = regexp.MustCompile(`import\s+.*;`)

// TypeScript transform the typescript code to javascript code, the workloads
// are single files so the import statements are dropped
func TypeScript(tsCode string, option api.TransformOptions) (string, error) {
	option.Loader = api.LoaderTS
	if option.Target == api.DefaultTarget {
		option.Target = api.ES2017
	}

	result := api.Transform(importRe.ReplaceAllString(tsCode, ""), option)
	if err := failed("ts", result.Errors); err != nil {
		return "", err
	}
	return string(result.Code), nil
}

func failed(kind string, messages []api.Message) error {
	if len(messages) == 0 {
		return nil
	}
	errors := []string{}
	for _, msg := range messages {
		if msg.Location != nil {
			errors = append(errors, fmt.Sprintf("%d:%d %s", msg.Location.Line, msg.Location.Column, msg.Text))
			continue
		}
		errors = append(errors, msg.Text)
	}
	return fmt.Errorf("transform %s code error: %v", kind, strings.Join(errors, "\n"))
}
