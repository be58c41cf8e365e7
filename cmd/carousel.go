package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/reel/internal/carousel"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// simItem is a synthetic carousel entry named item-<position>.
type simItem string

func (s simItem) ID() string { return string(s) }

func simItems(n int) []simItem {
	items := make([]simItem, n)
	for i := range items {
		items[i] = simItem(fmt.Sprintf("item-%d", i))
	}
	return items
}

type simStep struct {
	op  string
	arg int
}

func parseSteps(args []string) ([]simStep, error) {
	steps := make([]simStep, 0, len(args))
	for _, a := range args {
		op, val, ok := strings.Cut(a, ":")
		if !ok {
			return nil, fmt.Errorf("%w: step %q, want op:value", shared.ErrInvalidArgument, a)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("%w: step %q: %v", shared.ErrInvalidArgument, a, err)
		}
		switch op {
		case "advance", "select", "reset":
		default:
			return nil, fmt.Errorf("%w: unknown step %q", shared.ErrInvalidArgument, op)
		}
		steps = append(steps, simStep{op: op, arg: n})
	}
	return steps, nil
}

// CarouselSimulate drives a controller over synthetic items and prints every index write.
//
// Corrections run on real timers; unless --no-wait is set the command waits for
// the last pending one before printing the final state.
func (r *Runner) CarouselSimulate(ctx context.Context, cmd *cli.Command) error {
	n := cmd.Int("items")
	if n < 0 {
		return fmt.Errorf("%w: --items must not be negative", shared.ErrInvalidFlag)
	}

	delay := r.config.Carousel.SettleDelay()
	if ms := cmd.Int("delay"); ms > 0 {
		delay = time.Duration(ms) * time.Millisecond
	}

	steps, err := parseSteps(cmd.Args().Slice())
	if err != nil {
		return err
	}

	moves := make(chan carousel.Move, 2*len(steps)+2)
	ctrl := carousel.New[simItem](carousel.Options{
		SettleDelay: delay,
		Scheduler:   carousel.TimerScheduler{},
		OnAdvance: func(original int) {
			r.writePlain("  play item-%d\n", original)
		},
		OnMove: func(mv carousel.Move) { moves <- mv },
		Logger: shared.WithLogger(r.logger, "component", "carousel"),
	})
	defer ctrl.Close()

	ctrl.SetItems(simItems(n))
	r.writePlainHeader(fmt.Sprintf("Carousel: %d items, %d slots, settle %v", n, 3*n, delay))
	r.drainMoves(ctrl, moves)

	for _, s := range steps {
		r.writePlain("> %s:%d\n", s.op, s.arg)
		switch s.op {
		case "advance":
			if err := ctrl.Advance(s.arg); err != nil {
				r.writePlain("  error: %v\n", err)
			}
		case "select":
			if !ctrl.Select(fmt.Sprintf("item-%d", s.arg)) {
				r.writePlain("  item-%d is not in the list\n", s.arg)
			}
		case "reset":
			ctrl.SetItems(simItems(max(0, s.arg)))
		}
		r.drainMoves(ctrl, moves)
	}

	if ctrl.Pending() && !cmd.Bool("no-wait") {
		r.writePlain("… waiting %v for the correction\n", delay)
		select {
		case mv := <-moves:
			r.printMove(ctrl, mv)
		case <-time.After(delay + time.Second):
			return fmt.Errorf("correction did not fire within %v", delay+time.Second)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.drainMoves(ctrl, moves)
	cur, _ := ctrl.Current()
	return r.writePlainln("final: slot %d (%s), pending %v", ctrl.Index(), cur.ID(), ctrl.Pending())
}

func (r *Runner) drainMoves(ctrl *carousel.Controller[simItem], moves <-chan carousel.Move) {
	for {
		select {
		case mv := <-moves:
			r.printMove(ctrl, mv)
		default:
			return
		}
	}
}

func (r *Runner) printMove(ctrl *carousel.Controller[simItem], mv carousel.Move) {
	name := "-"
	if seq := ctrl.Sequence(); mv.Index < len(seq) {
		name = seq[mv.Index].ID()
	}
	how := "animate"
	if !mv.Animate {
		how = "jump"
	}
	r.writePlain("  %-10s slot %-3d %-8s %s\n", mv.Cause, mv.Index, name, how)
}
