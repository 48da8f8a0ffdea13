package setsync

import (
	"context"
	stderrs "errors"
	"log"
	"os"
	"sync"
)

// ErrNoProvider is the error returned by Service.Synchronize
// when no remote provider has been configured.
var ErrNoProvider = stderrs.New("no sync provider configured")

// Service is a long-lived entry point for synchronization.
// It holds the local settings store it was constructed with
// and a remote provider that may be set and replaced over its lifetime.
//
// Service serializes its Synchronize calls:
// a second call blocks until the one in flight finishes,
// so concurrent callers cannot race on the local manifest.
type Service struct {
	local  Local
	logger *log.Logger

	mu     sync.Mutex // protects remote
	remote KV

	run sync.Mutex // held for the duration of a Synchronize call
}

// NewService produces a Service synchronizing the given local store.
// If logger is nil, a default logger writing to stderr is used.
// No remote provider is configured until SetSyncProvider is called.
func NewService(local Local, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(os.Stderr, "[setsync] ", log.LstdFlags)
	}
	return &Service{local: local, logger: logger}
}

// SetSyncProvider replaces the service's remote provider.
// It takes effect for subsequent Synchronize calls only;
// a call already in flight keeps the provider it started with.
func (s *Service) SetSyncProvider(remote KV) {
	s.mu.Lock()
	s.remote = remote
	s.mu.Unlock()
}

// Synchronize runs one reconciliation against the configured provider.
// If no provider is configured it fails immediately,
// touching no storage.
func (s *Service) Synchronize(ctx context.Context) error {
	s.mu.Lock()
	remote := s.remote
	s.mu.Unlock()

	if remote == nil {
		return ErrNoProvider
	}

	s.run.Lock()
	defer s.run.Unlock()

	err := Synchronize(ctx, s.local, remote)
	if err != nil {
		s.logger.Printf("sync failed: %s", err)
		return err
	}
	s.logger.Print("sync complete")
	return nil
}
