package service

import "github.com/Amarie1212/ppmnurulhakim/internal/domain"

// ComputeApplicantView projects one applicant's progress through the
// admission gates into the flags the front end renders. Payment state is
// fully derived: "has paid" means a VERIFIED row exists, "pending" only
// matters while unpaid, and the rejection banner only shows once nothing
// is pending anymore.
func ComputeApplicantView(acc *domain.Account, b *domain.Biodata, hasVerified, hasPending bool, latestRejected *domain.Payment) domain.ApplicantView {
	v := domain.ApplicantView{
		AccountID:           acc.ID,
		Name:                acc.Name,
		Email:               acc.Email,
		AccountStatus:       acc.Status,
		AccountRejectReason: acc.RejectReason,
		BiodataEmpty:        b == nil,
	}

	if b != nil {
		id := b.ID
		v.BiodataID = &id
		v.BiodataVerified = b.Status == domain.BiodataStatusVerified
		v.BiodataRejected = b.Status == domain.BiodataStatusRejected
		v.BiodataRejectReason = b.RejectReason

		v.HasPaid = hasVerified
		v.PaymentPending = !hasVerified && hasPending
		if !hasVerified && !hasPending && latestRejected != nil {
			v.PaymentRejected = true
			v.PaymentRejectReason = latestRejected.RejectReason
		}
	}
	return v
}
