package authz

import (
	"alcyxob/gym-manager/internal/domain"
)

// Resource identifies one entity collection guarded by the permission table.
type Resource string

const (
	ResourceUsers        Resource = "users"
	ResourceMemberships  Resource = "memberships"
	ResourceWorkoutPlans Resource = "workout-plans"
	ResourceWorkoutLogs  Resource = "workout-logs"
	ResourceDietPlans    Resource = "diet-plans"
	ResourceAttendance   Resource = "attendance"
)

// Scope describes which records of a resource a role may read.
// Update and delete operate on the same set.
type Scope int

const (
	// ScopeNone yields an empty result set (list returns [], never 403).
	ScopeNone Scope = iota
	// ScopeAll yields every record.
	ScopeAll
	// ScopeOwnTrainer yields records whose trainer reference is the caller.
	ScopeOwnTrainer
	// ScopeOwnMember yields records whose member reference is the caller.
	ScopeOwnMember
	// ScopeMemberUsers yields only member-role users (trainer browsing users).
	ScopeMemberUsers
)

// Actor is the authenticated identity a request acts as.
type Actor struct {
	UserID uint
	Role   domain.Role
}

// readScopes is the full permission matrix. Keeping it as one table rather
// than conditionals spread over handlers makes the policy auditable in a
// single place and testable in isolation.
var readScopes = map[domain.Role]map[Resource]Scope{
	domain.RoleAdmin: {
		ResourceUsers:        ScopeAll,
		ResourceMemberships:  ScopeAll,
		ResourceWorkoutPlans: ScopeAll,
		ResourceWorkoutLogs:  ScopeNone, // workout-log routes are member-only
		ResourceDietPlans:    ScopeAll,
		ResourceAttendance:   ScopeAll,
	},
	domain.RoleTrainer: {
		ResourceUsers:        ScopeMemberUsers,
		ResourceMemberships:  ScopeNone,
		ResourceWorkoutPlans: ScopeOwnTrainer,
		ResourceWorkoutLogs:  ScopeNone,
		ResourceDietPlans:    ScopeOwnTrainer,
		ResourceAttendance:   ScopeNone,
	},
	domain.RoleMember: {
		ResourceUsers:        ScopeNone,
		ResourceMemberships:  ScopeOwnMember,
		ResourceWorkoutPlans: ScopeOwnMember,
		ResourceWorkoutLogs:  ScopeOwnMember,
		ResourceDietPlans:    ScopeOwnMember,
		ResourceAttendance:   ScopeOwnMember,
	},
}

// creators lists the roles allowed to create records of a resource.
// Resources absent from the table have no role restriction on create.
var creators = map[Resource][]domain.Role{
	ResourceWorkoutPlans: {domain.RoleTrainer, domain.RoleAdmin},
	ResourceDietPlans:    {domain.RoleTrainer, domain.RoleAdmin},
	ResourceWorkoutLogs:  {domain.RoleMember},
	ResourceAttendance:   {domain.RoleMember},
}

// ReadScope looks up the record scope for a role on a resource.
// Unknown roles get ScopeNone.
func ReadScope(role domain.Role, res Resource) Scope {
	if byRes, ok := readScopes[role]; ok {
		if s, ok := byRes[res]; ok {
			return s
		}
	}
	return ScopeNone
}

// CanCreate reports whether a role may create records of a resource.
func CanCreate(role domain.Role, res Resource) bool {
	allowed, ok := creators[res]
	if !ok {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// Owns reports whether a record with the given trainer/member references is
// inside the actor's scope for the resource. Used on retrieve, update and
// delete; out-of-scope records are reported as not found.
func Owns(actor Actor, res Resource, trainerID, memberID uint) bool {
	switch ReadScope(actor.Role, res) {
	case ScopeAll:
		return true
	case ScopeOwnTrainer:
		return trainerID == actor.UserID
	case ScopeOwnMember:
		return memberID == actor.UserID
	default:
		return false
	}
}
