// Package worker measures a strategy in a child process of the jsbench binary.
// V8 flags such as --jitless are process wide and frozen once V8 started, so
// comparing flag sets needs one process per flag set.
package worker

import (
	"context"
	"io"
	"log/slog"

	v8 "github.com/yaoapp/jsbench/runtime/v8"
	"github.com/yaoapp/jsbench/workload"
)

// Request what a worker process measures
type Request struct {
	Strategy   string   `json:"strategy"`
	Jitless    bool     `json:"jitless"`
	Iterations int      `json:"iterations"`
	Console    string   `json:"console"`
	Origin     string   `json:"origin"`
	Flags      []string `json:"flags,omitempty"`
}

// Result the structured output of a worker process
type Result struct {
	ID         string   `json:"id"`
	Strategy   string   `json:"strategy"`
	Iterations int      `json:"iterations"`
	ElapsedNs  int64    `json:"elapsed_ns"`
	Flags      []string `json:"flags"`
}

// Runner launches a worker process for every measure
type Runner struct {
	name     string
	label    string
	Binary   string
	Env      []string
	Request  Request
	Workload *workload.Workload
	Stdout   io.Writer
	Logger   *slog.Logger
	ctx      context.Context
}

// Environment the JIT benchmark environment, the parent keeps an engine to
// reject broken workloads before any worker starts
type Environment struct {
	Binary  string
	Env     []string
	Console string
	Flags   []string
	Stdout  io.Writer
	Logger  *slog.Logger
	engine  *v8.Engine
	ctx     context.Context
}
