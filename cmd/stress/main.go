package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/devlog"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 1000
	numWorkers     = 64
)

var levels = []int64{
	devlog.LevelDebug,
	devlog.LevelInfo,
	devlog.LevelWarning,
	devlog.LevelError,
}

var logger *devlog.Logger

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

// logBurst simulates a burst of logging activity
func logBurst(burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msg := generateRandomMessage(rand.Intn(maxMessageSize) + 10)
		logger.Log(level, "wkr=%d bst=%d seq=%d %s", burstID%numWorkers, burstID, i, msg)
	}
}

// worker goroutine function, each burst is timed through a shared decorated function
func worker(burst func(int), burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		burst(burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

func main() {
	fmt.Println("--- devlog Stress Test ---")

	root, err := devlog.NewBuilder().
		Level(devlog.LevelDebug).
		EnableConsole(false).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build root: %v\n", err)
		os.Exit(1)
	}
	logger = root.Logger("stress")

	timer := devlog.NewTimer("burst").WithLogger(root.Logger("timer"))
	burst := devlog.Func1(timer, func(id int) struct{} {
		logBurst(id)
		return struct{}{}
	})

	c, err := root.Capture(devlog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start capture: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(func(id int) { burst(id) }, burstChan, &wg, &completedBursts)
	}

	// --- Run Test ---
	startTime := time.Now()
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			goto endLoop
		}
	}
endLoop:
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	c.Stop()

	finalCompleted := completedBursts.Load()
	reports := 0
	for e := range c.All() {
		if e.Name == "timer" {
			reports++
		}
	}

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	fmt.Printf("Captured %d entries, %d timer reports\n", c.Len(), reports)
	if int64(reports) != finalCompleted {
		fmt.Fprintf(os.Stderr, "Timer report count mismatch: %d reports for %d bursts\n", reports, finalCompleted)
		os.Exit(1)
	}
	if finalCompleted > 0 && duration.Seconds() > 0 {
		logsPerSec := float64(finalCompleted*logsPerBurst) / duration.Seconds()
		fmt.Printf("Approximate Logs/sec: %.2f\n", logsPerSec)
	}
}
