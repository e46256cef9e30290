package perms

import (
	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/types/action"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// rules describes the access pattern of a variant.
type rules struct {
	// global marks ownerless variants: content managers get full access and
	// the grant/ownership checks don't apply.
	global bool

	// userRead marks variants plain users may read at all.
	userRead bool

	// userMutate marks variants that permit user-level mutation of owned
	// records.
	userMutate bool
}

var ruleTable = map[resource.Type]rules{
	resource.Dataset:            {userRead: true},
	resource.Selection:          {userRead: true, userMutate: true},
	resource.ImageAlignment:     {global: true, userRead: true},
	resource.PipelineExperiment: {},
	resource.Chip:               {global: true, userRead: true},
	resource.DatasetInfo:        {userRead: true},
	resource.Features:           {global: true, userRead: true},
}

// Allowed reports whether the principal may perform the action on the
// resource.
func Allowed(p auth.Principal, r models.Resource, a action.Type) bool {
	switch a {
	case action.List, action.Read:
		return CanRead(p, r)
	case action.Create, action.Update:
		return CanWrite(p, r)
	case action.Delete:
		return CanDelete(p, r)
	case action.All:
		return CanRead(p, r) && CanWrite(p, r) && CanDelete(p, r)
	}
	return false
}

// CanRead reports whether the principal may read the resource.
func CanRead(p auth.Principal, r models.Resource) bool {
	if r == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	rt := ruleTable[r.ResourceType()]
	switch {
	case p.IsContentManager():
		if rt.global {
			return true
		}
		return ownedBy(p, r) || grantedTo(p, r)
	case p.IsUser():
		if !rt.userRead {
			return false
		}
		if !r.GetEnabled() {
			return false
		}
		if rt.global {
			return true
		}
		return ownedBy(p, r) || grantedTo(p, r)
	}
	return false
}

// CanWrite reports whether the principal may create or update the resource.
func CanWrite(p auth.Principal, r models.Resource) bool {
	if r == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	rt := ruleTable[r.ResourceType()]
	switch {
	case p.IsContentManager():
		return rt.global || ownedBy(p, r)
	case p.IsUser():
		return rt.userMutate && ownedBy(p, r)
	}
	return false
}

// CanDelete reports whether the principal may delete the resource.
func CanDelete(p auth.Principal, r models.Resource) bool {
	// The delete pattern matches the write pattern across every variant; the
	// distinction is kept at the contract surface because cascade policy may
	// diverge per variant later.
	return CanWrite(p, r)
}

// VisibleSubset returns the resources the principal may read, preserving
// relative order. It is a pure filter over a new slice; the input is never
// mutated. With WithOnlyEnabled, disabled resources are dropped after role
// scoping. The result is never nil.
func VisibleSubset(p auth.Principal, rs []models.Resource, opt ...Option) []models.Resource {
	opts := getOpts(opt...)
	out := make([]models.Resource, 0, len(rs))
	for _, r := range rs {
		if !CanRead(p, r) {
			continue
		}
		if opts.withOnlyEnabled && !r.GetEnabled() {
			continue
		}
		out = append(out, r)
	}
	return out
}

func ownedBy(p auth.Principal, r models.Resource) bool {
	owner := r.GetOwnerAccountId()
	return owner != "" && owner == p.AccountId
}

func grantedTo(p auth.Principal, r models.Resource) bool {
	d, ok := r.(*models.Dataset)
	if !ok {
		return false
	}
	return d.GrantedTo(p.AccountId)
}
