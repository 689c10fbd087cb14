package builder

import "go.trai.ch/depbuild/internal/core/domain"

// Status returns the status of dep in the last plan.
// When dep appears more than once, the latest occurrence that has started wins.
func (b *Builder) Status(dep domain.ResolvedDependency) (domain.BuildStatus, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	status, found := domain.BuildStatus(""), false
	for _, s := range b.statuses {
		if s.Dependency != dep {
			continue
		}
		if !found || s.Status != domain.BuildStatusPending {
			status, found = s.Status, true
		}
	}
	return status, found
}
