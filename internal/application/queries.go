package application

import "github.com/bnema/appversion/internal/domain"

type Snapshot struct {
	State        domain.ResolutionState    `json:"state"`
	Current      domain.VersionDescriptor  `json:"current"`
	Last         *domain.VersionDescriptor `json:"last,omitempty"`
	FreshInstall bool                      `json:"fresh_install"`
	Updated      bool                      `json:"updated"`
}

func (r *Resolver) Snapshot() (Snapshot, error) {
	current, err := r.CurrentVersion()
	if err != nil {
		return Snapshot{}, err
	}

	last, ok, err := r.LastVersion()
	if err != nil {
		return Snapshot{}, err
	}

	state := r.State()
	snapshot := Snapshot{
		State:        state,
		Current:      current,
		FreshInstall: state == domain.Installed,
		Updated:      state == domain.Updated,
	}
	if ok {
		snapshot.Last = &last
	}

	return snapshot, nil
}
