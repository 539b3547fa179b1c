package domain

// DefaultCurrency is assumed when a payload omits its currency.
const DefaultCurrency = "USD"

// Notice is the short message shown to the customer after an action, the
// storefront's equivalent of a toast.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// NoticeKind distinguishes success from failure notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// SuccessNotice builds the notice for a completed action.
func SuccessNotice(a SubscriptionAction) Notice {
	return Notice{Kind: NoticeSuccess, Message: SuccessMessage(a)}
}

// ErrorNotice builds the notice for a failed action.
func ErrorNotice(a SubscriptionAction) Notice {
	return Notice{Kind: NoticeError, Message: FailureMessage(a)}
}
