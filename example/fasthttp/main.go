package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/devlog"
	"github.com/lixenwraith/devlog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	root, err := devlog.NewBuilder().
		LevelString("info").
		Format("txt").
		ConsoleTarget("stdout").
		Build()
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		root.Logger(compat.FastHTTPCategory),
		compat.WithDefaultLevel(devlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	timer := devlog.NewTimer("request").WithLogger(root.Logger("http"))

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: compat.TimedHandler(timer, requestHandler),
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// fasthttp specific message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return devlog.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return devlog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
