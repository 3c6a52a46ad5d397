// Package authz holds the per-action role allow-lists for the staff panel.
// The policy is a flat table: every action enumerates the exact roles that
// may perform it. Admin is a superset for most actions in practice but is
// never derived from a ranking — verifyPayment, for example, belongs to
// treasury alone.
package authz

import "github.com/Amarie1212/ppmnurulhakim/internal/domain"

type Action string

const (
	ActionViewDashboard   Action = "viewDashboard"
	ActionListApplicants  Action = "listApplicants"
	ActionDeleteApplicant Action = "deleteApplicant"
	ActionVerifyAccount   Action = "verifyAccount"
	ActionVerifyBiodata   Action = "verifyBiodata"
	ActionViewPayments    Action = "viewPayments"
	ActionVerifyPayment   Action = "verifyPayment"
	ActionRejectPayment   Action = "rejectPayment"
	ActionPurgePayment    Action = "purgePayment"
	ActionSubmitReport    Action = "submitReport"
	ActionReviewReport    Action = "reviewReport"
	ActionViewReports     Action = "viewReports"
	ActionManageStaff     Action = "manageStaff"
	ActionManageCode      Action = "manageCode"
)

var (
	admin     = domain.StaffRoleAdmin
	committee = domain.StaffRoleCommittee
	treasury  = domain.StaffRoleTreasury
	chair     = domain.StaffRoleChair
)

// allowlist is the full policy. Keep every action explicit; call sites
// must never test role strings themselves.
var allowlist = map[Action][]domain.StaffRole{
	ActionViewDashboard:   {admin, committee, treasury, chair},
	ActionListApplicants:  {admin, committee, treasury, chair},
	ActionDeleteApplicant: {admin, committee},
	ActionVerifyAccount:   {admin, committee},
	ActionVerifyBiodata:   {admin, committee},
	ActionViewPayments:    {admin, treasury},
	ActionVerifyPayment:   {treasury},
	ActionRejectPayment:   {treasury},
	ActionPurgePayment:    {admin, treasury},
	ActionSubmitReport:    {treasury},
	ActionReviewReport:    {admin, chair},
	ActionViewReports:     {admin, treasury, chair},
	ActionManageStaff:     {admin},
	ActionManageCode:      {admin, committee},
}

// Authorize reports whether role may perform action.
func Authorize(role domain.StaffRole, action Action) bool {
	for _, r := range allowlist[action] {
		if r == role {
			return true
		}
	}
	return false
}

// RedirectTarget returns the landing path a denied staff member is sent
// to instead of an opaque 403.
func RedirectTarget(role domain.StaffRole) string {
	if role == domain.StaffRoleAdmin {
		return "/panel-admin"
	}
	return "/staff/home"
}
