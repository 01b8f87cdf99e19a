package main

import (
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/lixenwraith/devlog"
)

const configFile = "devlog_demo.toml"

// Example TOML content
var tomlContent = `
# Example devlog_demo.toml
[devlog]
  level = 20 # Info
  format = "txt"
  show_timestamp = true
  show_level = true
  show_name = true
  console_target = "stdout"
  color = true
`

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func main() {
	fmt.Println("--- devlog Demo ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write demo config: %v\n", err)
		// Continue with defaults
	} else {
		fmt.Printf("Created demo config file: %s\n", configFile)
		defer os.Remove(configFile)
	}

	cfg, err := devlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := devlog.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply config: %v\n", err)
		os.Exit(1)
	}

	logger := devlog.GetLogger("demo")
	logger.Debug("hidden, below the info floor")
	logger.Info("Application starting...")
	logger.Warning("Potential issue detected: threshold %.2f", 0.95)

	// --- Capture ---
	c, err := devlog.CaptureLog(devlog.LevelDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start capture: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("captured although the floor was info")
	logger.Info(map[string]int{"users": 3, "sessions": 7})
	c.Stop()

	fmt.Println("Captured entries:")
	for e := range c.All() {
		fmt.Printf("  [%s] %s: %s\n", e.LevelName, e.Name, e.Message)
	}

	// --- Timer: scoped block ---
	timer := devlog.NewTimer("warmup")
	timer.Time(func() {
		time.Sleep(20 * time.Millisecond)
	})

	// --- Timer: manual measurement ---
	m := devlog.NewTimer("manual").Start()
	time.Sleep(10 * time.Millisecond)
	m.Stop()

	// --- Timer: decorator ---
	timedFib, err := devlog.Decorate(devlog.NewTimer("fib"), fib)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decorate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s(20) = %d\n", timedFib.Name(), timedFib.Fn(20))

	// Decorated calls from goroutines report independently
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			timedFib.Fn(15 + n)
		}(i)
	}
	wg.Wait()

	// --- Timer: iterable ---
	seq, err := devlog.Over(devlog.NewTimer("batches"), slices.Values([]string{"a", "b", "c"})).All()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to iterate: %v\n", err)
		os.Exit(1)
	}
	for batch := range seq {
		logger.Info("processing batch %s", batch)
		time.Sleep(5 * time.Millisecond)
	}

	// --- Reconfigure at runtime ---
	if err := devlog.ApplyConfigString("format=json", "show_timestamp=false"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to reconfigure: %v\n", err)
	}
	logger.Error("An error occurred! code=%d", 500)

	if err := devlog.ApplyConfigString("format=yaml"); err != nil {
		fmt.Printf("Rejected override as expected: %v\n", err)
	}

	fmt.Println("--- Demo Finished ---")
}
