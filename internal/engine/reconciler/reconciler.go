package reconciler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/nudge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Reconciler makes the host's pending-trigger set match the desired set
// computed from the current rules of a domain.
//
// It holds no state between calls beyond the per-domain lock table: each pass
// is a function from (authorization state, rules, pending set) to host
// operations. Within one pass, stale identifiers are removed before new ones
// are added; concurrent passes for the same domain are serialized so a removal
// sweep in flight from one call can never eat the adds of another.
//
// The serialization is in-process only. An external writer mutating the host
// store between Pending and Remove/Add is not defended against; that is an
// accepted limitation of the flat, non-transactional host interface.
type Reconciler struct {
	store  ports.NotificationStore
	clock  ports.Clock
	logger ports.Logger

	mu      sync.Mutex
	domains map[domain.Domain]*sync.Mutex
}

// New creates a Reconciler with the given dependencies.
func New(store ports.NotificationStore, clock ports.Clock, logger ports.Logger) *Reconciler {
	return &Reconciler{
		store:   store,
		clock:   clock,
		logger:  logger,
		domains: make(map[domain.Domain]*sync.Mutex),
	}
}

// Reconcile replaces the domain's registered triggers with the set derived
// from rules. It is idempotent: calling it twice with unchanged rules leaves
// the same pending set as calling it once. An empty rules slice clears the
// domain completely.
//
// If the host denies authorization, nothing is touched and nil is returned;
// reminders for this domain are simply not scheduled until the next explicit
// reconcile after the user re-enables the permission.
func (r *Reconciler) Reconcile(ctx context.Context, d domain.Domain, rules []domain.Rule) error {
	lock := r.domainLock(d)
	lock.Lock()
	defer lock.Unlock()

	pass := uuid.NewString()

	granted, err := r.authorize(ctx)
	if err != nil {
		return err
	}
	if !granted {
		r.logger.Info(fmt.Sprintf("notifications not authorized, skipping %s reconciliation (pass %s)", d, pass))
		return nil
	}

	pending, err := r.store.Pending(ctx)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrListPendingFailed.Error()), "domain", string(d))
	}

	// Full-prefix invalidation rather than an incremental diff: a trigger
	// whose source rule no longer exists must never keep firing, so every
	// identifier under the domain's prefix is swept before re-adding.
	stale := filterPrefix(pending, d.Prefix())
	if len(stale) > 0 {
		if err := r.store.Remove(ctx, stale); err != nil {
			// Best effort: re-adding below overwrites the ids that matter most.
			r.logger.Error(zerr.With(
				zerr.Wrap(err, "failed to remove stale notifications"),
				"domain", string(d),
			))
		}
	}

	if len(rules) == 0 {
		r.logger.Info(fmt.Sprintf("cleared domain %s: removed %d notifications (pass %s)", d, len(stale), pass))
		return nil
	}

	desired, err := buildSet(d, rules, r.clock.Now())
	if err != nil {
		return err
	}

	added := 0
	for _, n := range desired {
		id := n.ID.String()
		if err := r.store.Add(ctx, id, n.Trigger, n.Content); err != nil {
			// One failed add must not block the rest: most reminders
			// scheduled beats all-or-nothing.
			r.logger.Error(zerr.With(zerr.Wrap(err, "failed to add notification"), "id", id))
			continue
		}
		added++
	}

	r.logger.Info(fmt.Sprintf(
		"reconciled domain %s: removed %d, added %d/%d, fingerprint %s (pass %s)",
		d, len(stale), added, len(desired), fingerprint(desired), pass,
	))
	return nil
}

// ReconcileAll reconciles several domains concurrently. Identifier prefixes
// are disjoint across domains, so the passes cannot interfere; per-domain
// serialization still applies against other callers.
func (r *Reconciler) ReconcileAll(ctx context.Context, sets map[domain.Domain][]domain.Rule) error {
	g, ctx := errgroup.WithContext(ctx)
	for d, rules := range sets {
		g.Go(func() error {
			return r.Reconcile(ctx, d, rules)
		})
	}
	return g.Wait()
}

// Cancel immediately removes the single trigger owned by (domain, entity).
// It is the stop path for one-shot timers and deliberately bypasses the
// domain lock and the pending listing: a full reconcile possibly in flight
// must not delay the removal.
func (r *Reconciler) Cancel(ctx context.Context, d domain.Domain, entity string) error {
	id := domain.Identifier{Domain: d, Entity: entity}.String()
	if err := r.store.Remove(ctx, []string{id}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to cancel notification"), "id", id)
	}
	return nil
}

// authorize checks the host authorization state, prompting once if it is not
// yet granted. Denial is reported as granted=false, not as an error.
func (r *Reconciler) authorize(ctx context.Context) (bool, error) {
	ok, err := r.store.Authorized(ctx)
	if err != nil {
		return false, zerr.Wrap(err, "failed to check notification authorization")
	}
	if ok {
		return true, nil
	}

	granted, err := r.store.RequestAuthorization(ctx)
	if err != nil {
		return false, zerr.Wrap(err, "failed to request notification authorization")
	}
	return granted, nil
}

func (r *Reconciler) domainLock(d domain.Domain) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.domains[d]
	if !ok {
		lock = &sync.Mutex{}
		r.domains[d] = lock
	}
	return lock
}

func filterPrefix(ids []string, prefix string) []string {
	var out []string
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			out = append(out, id)
		}
	}
	return out
}
