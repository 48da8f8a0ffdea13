package setsync

// Plan is the result of comparing two manifests:
// the direction permissions and the sections that must move each way.
// A Plan is derived, never persisted.
type Plan struct {
	// CanRead tells whether this instance may read from the remote at
	// all.
	// When false, Pull and Push are empty.
	CanRead bool

	// CanWrite tells whether this instance may write to the remote.
	// It is only meaningful when CanRead is true.
	CanWrite bool

	// Pull lists sections to copy remote→local,
	// each carrying the remote (newer) timestamp.
	Pull []Section

	// Push lists sections to copy local→remote,
	// each carrying the local (newer) timestamp.
	Push []Section
}

// Resolve compares the remote and local manifests and computes the
// transfer plan.
//
// Reading is permitted when the remote's minimum-compatible version does
// not exceed the local's;
// if it does, the plan is empty and no section is inspected.
// Writing is permitted when the remote's protocol version does not
// exceed the local's.
//
// Only sections present in both manifests are scheduled,
// iterated in local order;
// a section present on one side only is silently skipped.
// Equal timestamps schedule nothing.
// A local section with newer content than the remote's is scheduled for
// push only if writing is permitted;
// without write permission it is silently dropped.
//
// Resolve is pure: it does not mutate its inputs and has no side
// effects.
func Resolve(remote, local *Manifest) Plan {
	canRead := remote.MinCompatibleVersion <= local.MinCompatibleVersion
	if !canRead {
		return Plan{}
	}

	plan := Plan{
		CanRead:  true,
		CanWrite: remote.ProtocolVersion <= local.ProtocolVersion,
	}

	for _, ls := range local.Sections {
		rs := remote.Section(ls.Name)
		if rs == nil {
			continue
		}
		switch {
		case ls.Timestamp < rs.Timestamp:
			plan.Pull = append(plan.Pull, Section{Name: ls.Name, Timestamp: rs.Timestamp})
		case ls.Timestamp > rs.Timestamp:
			if plan.CanWrite {
				plan.Push = append(plan.Push, Section{Name: ls.Name, Timestamp: ls.Timestamp})
			}
		}
	}

	return plan
}
