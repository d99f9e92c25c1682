package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/file"
	"github.com/spf13/cobra"
)

var (
	watchInterval time.Duration
	watchDelay    time.Duration
)

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "how often to check the file")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 300*time.Millisecond, "quiet time before re-analyzing")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyzes a chord file whenever it changes",
	Long:  `Watches a chord file and prints a fresh analysis each time it is saved`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		path := args[0]
		Watch(ctx, path, watchInterval, watchDelay, func() { reanalyze(path) })
	},
}

// reanalyze reports problems instead of panicking so a half-saved file
// doesn't end the watch.
func reanalyze(path string) {
	doc, err := file.ReadFile(path)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	seq, err := file.Resolve(doc, keyFlag, bpmFlag)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return
	}
	res, err := chord.Analyze(seq)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return
	}
	fmt.Printf("--- %s (%s)\n", path, time.Now().Format(time.Kitchen))
	PrintAnalysis(os.Stdout, res)
}

func modTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Watch calls onChange once at the start and again, debounced by delay,
// after every change to the file's modification time. It returns when ctx
// is done, and a change still waiting out the delay is dropped.
func Watch(ctx context.Context, path string, interval, delay time.Duration, onChange func()) {
	debounced := debounce.New(delay)
	last, _ := modTime(path)
	onChange()

	guarded := func() {
		if ctx.Err() == nil {
			onChange()
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			debounced(func() {})
			return
		case <-ticker.C:
			mt, ok := modTime(path)
			if !ok || mt.Equal(last) {
				continue
			}
			last = mt
			debounced(guarded)
		}
	}
}
