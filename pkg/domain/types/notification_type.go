package types

// NotificationType represents the severity of a user-visible notification
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// String returns the string representation of the type
func (t NotificationType) String() string {
	return string(t)
}

// IsValid checks if the type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess, NotificationError, NotificationWarning, NotificationInfo:
		return true
	default:
		return false
	}
}

// RejectReason explains why a proposed move was refused before reaching the store
type RejectReason string

const (
	RejectSelf           RejectReason = "self"
	RejectDirectMentee   RejectReason = "direct_mentee"
	RejectDescendant     RejectReason = "descendant"
	RejectUnknownSubject RejectReason = "unknown_subject"
	RejectUnknownTarget  RejectReason = "unknown_target"
)

// String returns the string representation of the reason
func (r RejectReason) String() string {
	return string(r)
}
