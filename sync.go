package setsync

import (
	"context"
	stderrs "errors"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidManifest is the error returned by Synchronize
// when the loaded remote manifest is missing one of its required scalar
// fields.
var ErrInvalidManifest = stderrs.New("remote manifest missing required fields")

// ErrIncompatible is the error returned by Synchronize
// when the remote's minimum-compatible version exceeds the local's,
// so this instance may not read from the remote at all.
var ErrIncompatible = stderrs.New("remote requires a newer protocol version")

// Synchronize runs one full reconciliation of the local settings store
// against the remote.
//
// The phases run in strict order:
// load the remote manifest,
// validate it,
// load the local manifest,
// resolve the transfer plan,
// execute the transfers,
// then persist the local manifest (if anything was pulled)
// and the remote manifest (if writing is permitted).
// Each phase is an abort point;
// a nil return means every phase that ran succeeded.
//
// If any single section transfer fails,
// Synchronize returns that error and persists neither manifest —
// even though transfers that succeeded in the same run stay committed.
// The manifests then under-report data that has in fact moved,
// until the next clean run re-compares timestamps and heals the gap.
// This conservatism ("manifests only reflect a fully clean run")
// matches the long-standing observed behavior and is intentional.
//
// A remote-manifest save failure after a successful local-manifest save
// is likewise reported as failure even though the local store has
// already advanced.
//
// Synchronize holds no state between calls and provides no mutual
// exclusion; see Service for a guarded entry point.
func Synchronize(ctx context.Context, local Local, remote KV) error {
	raw, err := remote.Load(ctx, ManifestPath)
	if err != nil {
		return errors.Wrap(err, "loading remote manifest")
	}
	rm, err := ParseManifest(raw)
	if err != nil {
		return errors.Wrap(err, "parsing remote manifest")
	}
	if !rm.Valid() {
		return ErrInvalidManifest
	}

	lm, err := local.Manifest(ctx)
	if err != nil {
		return errors.Wrap(err, "loading local manifest")
	}

	plan := Resolve(rm, lm)
	if !plan.CanRead {
		return ErrIncompatible
	}

	outcome, err := Transfer(ctx, plan, local, remote)
	if err != nil {
		return errors.Wrap(err, "transferring sections")
	}

	now := time.Now().UnixMilli()

	if pulled := outcome.Pulled(); len(pulled) > 0 {
		for _, s := range pulled {
			if ls := lm.Section(s.Name); ls != nil {
				ls.Timestamp = s.Timestamp
			}
		}
		lm.Timestamp = now
		if err := local.SaveManifest(ctx, lm); err != nil {
			return errors.Wrap(err, "persisting local manifest")
		}
	}

	if plan.CanWrite {
		for _, s := range outcome.Pushed() {
			if rs := rm.Section(s.Name); rs != nil {
				rs.Timestamp = s.Timestamp
			}
		}
		rm.Timestamp = now
		rm.AppID = lm.AppID
		b, err := rm.Encode()
		if err != nil {
			return err
		}
		if err := remote.Save(ctx, ManifestPath, b); err != nil {
			return errors.Wrap(err, "persisting remote manifest")
		}
	}

	return nil
}
