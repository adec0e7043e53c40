package valueobject

// CreditTier is the credit decision derived from a risk score.
type CreditTier struct {
	value string
}

var (
	CreditTierApproved = CreditTier{value: "APPROVED"}
	CreditTierReview   = CreditTier{value: "REVIEW"}
	CreditTierDenied   = CreditTier{value: "DENIED"}
)

func (t CreditTier) String() string { return t.value }

func (t CreditTier) IsZero() bool { return t.value == "" }

func (t CreditTier) Equal(other CreditTier) bool { return t.value == other.value }
