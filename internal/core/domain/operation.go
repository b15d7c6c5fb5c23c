package domain

// Operation names an action on a clan or a clan member.
type Operation string

const (
	OpFetchMember  Operation = "fetch_member"
	OpFetchMembers Operation = "fetch_members"

	OpFetchBanned  Operation = "fetch_banned_members"
	OpFetchPending Operation = "fetch_pending_members"
	OpFetchInvited Operation = "fetch_invited_members"

	OpBan   Operation = "ban"
	OpUnban Operation = "unban"
	OpKick  Operation = "kick"
)

// supported lists the operations that can be dispatched. Everything else
// needs an OAuth2 flow and is rejected up front.
var supported = map[Operation]bool{
	OpFetchMember:  true,
	OpFetchMembers: true,
}

// Supports reports whether op can be dispatched.
func Supports(op Operation) bool {
	return supported[op]
}

func unsupported(op Operation) error {
	return &UnsupportedOperationError{Op: op}
}
