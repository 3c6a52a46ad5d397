package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amarie1212/ppmnurulhakim/internal/authz"
	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
)

func TestAuthorize_PaymentVerificationIsTreasuryOnly(t *testing.T) {
	assert.True(t, authz.Authorize(domain.StaffRoleTreasury, authz.ActionVerifyPayment))
	assert.False(t, authz.Authorize(domain.StaffRoleAdmin, authz.ActionVerifyPayment))
	assert.False(t, authz.Authorize(domain.StaffRoleCommittee, authz.ActionVerifyPayment))
	assert.False(t, authz.Authorize(domain.StaffRoleChair, authz.ActionVerifyPayment))

	assert.True(t, authz.Authorize(domain.StaffRoleTreasury, authz.ActionRejectPayment))
	assert.False(t, authz.Authorize(domain.StaffRoleAdmin, authz.ActionRejectPayment))
}

func TestAuthorize_Table(t *testing.T) {
	tests := []struct {
		action  authz.Action
		allowed []domain.StaffRole
	}{
		{authz.ActionViewDashboard, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee, domain.StaffRoleTreasury, domain.StaffRoleChair}},
		{authz.ActionListApplicants, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee, domain.StaffRoleTreasury, domain.StaffRoleChair}},
		{authz.ActionDeleteApplicant, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee}},
		{authz.ActionVerifyAccount, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee}},
		{authz.ActionVerifyBiodata, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee}},
		{authz.ActionViewPayments, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleTreasury}},
		{authz.ActionVerifyPayment, []domain.StaffRole{domain.StaffRoleTreasury}},
		{authz.ActionRejectPayment, []domain.StaffRole{domain.StaffRoleTreasury}},
		{authz.ActionPurgePayment, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleTreasury}},
		{authz.ActionSubmitReport, []domain.StaffRole{domain.StaffRoleTreasury}},
		{authz.ActionReviewReport, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleChair}},
		{authz.ActionViewReports, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleTreasury, domain.StaffRoleChair}},
		{authz.ActionManageStaff, []domain.StaffRole{domain.StaffRoleAdmin}},
		{authz.ActionManageCode, []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee}},
	}

	roles := []domain.StaffRole{domain.StaffRoleAdmin, domain.StaffRoleCommittee, domain.StaffRoleTreasury, domain.StaffRoleChair}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			allowed := make(map[domain.StaffRole]bool)
			for _, r := range tt.allowed {
				allowed[r] = true
			}
			for _, role := range roles {
				assert.Equal(t, allowed[role], authz.Authorize(role, tt.action),
					"role %s on action %s", role, tt.action)
			}
		})
	}
}

func TestAuthorize_UnknownRoleOrAction(t *testing.T) {
	assert.False(t, authz.Authorize("superuser", authz.ActionManageStaff))
	assert.False(t, authz.Authorize(domain.StaffRoleAdmin, "reboot"))
}

func TestRedirectTarget(t *testing.T) {
	assert.Equal(t, "/panel-admin", authz.RedirectTarget(domain.StaffRoleAdmin))
	assert.Equal(t, "/staff/home", authz.RedirectTarget(domain.StaffRoleCommittee))
	assert.Equal(t, "/staff/home", authz.RedirectTarget(domain.StaffRoleTreasury))
	assert.Equal(t, "/staff/home", authz.RedirectTarget(domain.StaffRoleChair))
}
