// internal/domain/notification/shared_types.go
package notification

// Kind identifies which record mapping a check runs over.
type Kind string

const (
	KindBirthday    Kind = "BIRTHDAY"
	KindAnniversary Kind = "ANNIVERSARY"
)

func (k Kind) String() string { return string(k) }
