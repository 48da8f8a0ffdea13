package setsync

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Outcome records which scheduled transfers succeeded,
// partitioned by direction.
// Entries carry the timestamps from the plan,
// ready to be copied into the manifests by the caller.
type Outcome struct {
	mu     sync.Mutex
	pulled []Section
	pushed []Section
}

// Pulled lists the sections successfully copied remote→local.
func (o *Outcome) Pulled() []Section {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pulled
}

// Pushed lists the sections successfully copied local→remote.
func (o *Outcome) Pushed() []Section {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pushed
}

func (o *Outcome) addPulled(s Section) {
	o.mu.Lock()
	o.pulled = append(o.pulled, s)
	o.mu.Unlock()
}

func (o *Outcome) addPushed(s Section) {
	o.mu.Lock()
	o.pushed = append(o.pushed, s)
	o.mu.Unlock()
}

// Transfer executes every transfer in the plan,
// copying pushed sections from the local store to the remote KV and
// pulled sections the other way.
// Each section transfer is a load followed by a save.
//
// All transfers run concurrently, one goroutine per section,
// with no cap on fan-out and no ordering between them.
// A failed transfer does not cancel the others:
// every task runs to completion before Transfer returns.
//
// The returned error is non-nil if any single transfer failed,
// wrapped with the failing section's name and direction.
// Transfers that succeeded stay committed regardless;
// the Outcome records exactly which ones those were.
// There is no rollback and no retry.
func Transfer(ctx context.Context, plan Plan, local Local, remote KV) (*Outcome, error) {
	var (
		outcome Outcome
		g       errgroup.Group
	)

	for _, s := range plan.Push {
		s := s
		g.Go(func() error {
			content, err := local.Section(ctx, s.Name)
			if err != nil {
				return errors.Wrapf(err, "pushing section %s", s.Name)
			}
			err = remote.Save(ctx, s.Name, content)
			if err != nil {
				return errors.Wrapf(err, "pushing section %s", s.Name)
			}
			outcome.addPushed(s)
			return nil
		})
	}

	for _, s := range plan.Pull {
		s := s
		g.Go(func() error {
			content, err := remote.Load(ctx, s.Name)
			if err != nil {
				return errors.Wrapf(err, "pulling section %s", s.Name)
			}
			err = local.SaveSection(ctx, s.Name, content)
			if err != nil {
				return errors.Wrapf(err, "pulling section %s", s.Name)
			}
			outcome.addPulled(s)
			return nil
		})
	}

	return &outcome, g.Wait()
}
