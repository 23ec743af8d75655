package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/toastdemo/internal/services/toast"
	"github.com/riordanpawley/toastdemo/internal/types"
)

// SpawnOptions holds flags for the spawn command.
type SpawnOptions struct {
	*RootOptions
	Position    string
	Severity    string
	Message     string
	AutoDismiss bool
	Duration    float64 // seconds
	Count       int
	Wait        time.Duration
}

// NewSpawnCommand creates the spawn command.
func NewSpawnCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SpawnOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "spawn",
		Short: "Spawn toasts without the TUI and print every change",
		Long: `Spawn toasts into a headless store and print a snapshot of all
five positions after every change.

Auto-dismiss toasts are removed by timers; the command returns once none
are left or --wait runs out.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpawn(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Position, "position", "p", types.BottomRight.String(), "top-left|top-center|top-right|bottom-left|bottom-right")
	cmd.Flags().StringVarP(&opts.Severity, "severity", "s", types.SeveritySuccess.String(), "success|error|warn")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "toast text (empty uses the severity default)")
	cmd.Flags().BoolVarP(&opts.AutoDismiss, "auto-dismiss", "a", false, "remove the toast after --duration")
	cmd.Flags().Float64VarP(&opts.Duration, "duration", "d", 1, "auto-dismiss delay in seconds")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of toasts to spawn")
	cmd.Flags().DurationVar(&opts.Wait, "wait", 10*time.Second, "how long to wait for auto-dismiss toasts")

	return cmd
}

func runSpawn(cmd *cobra.Command, opts *SpawnOptions) error {
	position, err := types.ParsePosition(opts.Position)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --position", err)
	}
	severity, err := types.ParseSeverity(opts.Severity)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --severity", err)
	}
	if opts.Count < 1 {
		return NewExitError(ExitCommandError, "--count must be at least 1")
	}

	logger := newLogger(cmd.ErrOrStderr(), slog.LevelWarn, opts.Verbose)
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	req := toast.Request{
		Position: position,
		Message:  opts.Message,
		Severity: severity,
		Checked:  opts.AutoDismiss,
		Duration: opts.Duration,
	}

	loop := toast.NewLoop(64)
	sched := toast.NewTimerScheduler(loop, logger)
	store := toast.NewStore(sched, toast.WithLogger(logger))
	sched.SetTarget(store)

	shutdown := func() {
		sched.Stop()
		loop.Close()
	}

	// Everything below that touches store or these locals runs on the loop.
	var (
		seq      int
		armed    bool
		printErr error
	)
	idle := make(chan struct{}, 1)
	checkIdle := func(snap toast.Snapshot) {
		if armed && countAutoDismiss(snap) == 0 {
			select {
			case idle <- struct{}{}:
			default:
			}
		}
	}

	loop.Do(func() {
		store.Subscribe(func(snap toast.Snapshot) {
			seq++
			if err := out.Success(newSnapshotView(seq, snap)); err != nil && printErr == nil {
				printErr = err
			}
			checkIdle(snap)
		})
		for range opts.Count {
			store.Enqueue(req)
		}
		armed = true
		checkIdle(store.Snapshot())
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	timedOut := false
	select {
	case <-idle:
	case <-time.After(opts.Wait):
		timedOut = true
	case <-ctx.Done():
		shutdown()
		return ctx.Err()
	}
	shutdown()

	if printErr != nil {
		return fmt.Errorf("failed to write output: %w", printErr)
	}
	if timedOut {
		logger.Warn("auto-dismiss toasts still pending", "wait", opts.Wait)
		return NewExitError(ExitFailure, fmt.Sprintf("toasts still pending after %s", opts.Wait))
	}
	return nil
}

func countAutoDismiss(snap toast.Snapshot) int {
	n := 0
	for _, entries := range snap {
		for _, e := range entries {
			if e.AutoDismiss() {
				n++
			}
		}
	}
	return n
}

// snapshotView is the printable form of a store snapshot
type snapshotView struct {
	Seq       int            `json:"seq"`
	Total     int            `json:"total"`
	Positions []positionView `json:"positions"`
}

type positionView struct {
	Position types.Position `json:"position"`
	Toasts   []entryView    `json:"toasts"`
}

type entryView struct {
	ID       string         `json:"id"`
	Message  string         `json:"message"`
	Severity types.Severity `json:"severity"`
	// nil for toasts that persist
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
}

func newSnapshotView(seq int, snap toast.Snapshot) snapshotView {
	view := snapshotView{Seq: seq, Total: snap.Len()}
	for _, p := range types.Positions() {
		pv := positionView{Position: p, Toasts: []entryView{}}
		for _, e := range snap[p] {
			ev := entryView{ID: e.ID, Message: e.Message, Severity: e.Severity}
			if e.AutoDismiss() {
				secs := e.Duration.Seconds()
				ev.DurationSeconds = &secs
			}
			pv.Toasts = append(pv.Toasts, ev)
		}
		view.Positions = append(view.Positions, pv)
	}
	return view
}

// String renders the snapshot for text output
func (v snapshotView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d (%d toasts)", v.Seq, v.Total)
	for _, pv := range v.Positions {
		for _, e := range pv.Toasts {
			fmt.Fprintf(&b, "\n  %-13s %-8s %s", pv.Position, e.Severity, e.Message)
			if e.DurationSeconds != nil {
				fmt.Fprintf(&b, " [%.1fs]", *e.DurationSeconds)
			}
		}
	}
	return b.String()
}
