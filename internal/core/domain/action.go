package domain

// SubscriptionAction names a customer-initiated change to a subscription.
type SubscriptionAction string

const (
	ActionCreate        SubscriptionAction = "create"
	ActionUpdate        SubscriptionAction = "update"
	ActionPause         SubscriptionAction = "pause"
	ActionResume        SubscriptionAction = "resume"
	ActionCancel        SubscriptionAction = "cancel"
	ActionReactivate    SubscriptionAction = "reactivate"
	ActionDelete        SubscriptionAction = "delete"
	ActionAutoRenew     SubscriptionAction = "auto_renew"
	ActionAddProduct    SubscriptionAction = "add_product"
	ActionRemoveProduct SubscriptionAction = "remove_product"
)

// IsValid reports whether a is a known action.
func (a SubscriptionAction) IsValid() bool {
	_, ok := actionMessages[a]
	return ok
}

type actionText struct {
	success string
	failure string
}

var actionMessages = map[SubscriptionAction]actionText{
	ActionCreate:        {"Subscription created", "Failed to create subscription"},
	ActionUpdate:        {"Subscription updated", "Failed to update subscription"},
	ActionPause:         {"Subscription paused", "Failed to pause subscription"},
	ActionResume:        {"Subscription resumed", "Failed to resume subscription"},
	ActionCancel:        {"Subscription cancelled", "Failed to cancel subscription"},
	ActionReactivate:    {"Subscription reactivated", "Failed to reactivate subscription"},
	ActionDelete:        {"Subscription deleted", "Failed to delete subscription"},
	ActionAutoRenew:     {"Auto-renew setting updated", "Failed to update auto-renew setting"},
	ActionAddProduct:    {"Product added to subscription", "Failed to add product"},
	ActionRemoveProduct: {"Product removed from subscription", "Failed to remove product"},
}

// SuccessMessage is the notice text shown after action succeeds.
func SuccessMessage(a SubscriptionAction) string {
	if t, ok := actionMessages[a]; ok {
		return t.success
	}
	return "Done"
}

// FailureMessage is the generic notice text shown after action fails.
func FailureMessage(a SubscriptionAction) string {
	if t, ok := actionMessages[a]; ok {
		return t.failure
	}
	return "Something went wrong"
}

// ConfirmationPrompt is the content of the confirmation modal for an action.
type ConfirmationPrompt struct {
	Action       SubscriptionAction
	Title        string
	Message      string
	ConfirmLabel string
	Destructive  bool
}

// PromptFor returns the confirmation modal content for action on the named
// subscription. ok is false for actions that run without confirmation.
func PromptFor(action SubscriptionAction, subscriptionName string) (ConfirmationPrompt, bool) {
	if subscriptionName == "" {
		subscriptionName = "this subscription"
	}
	p := ConfirmationPrompt{Action: action}
	switch action {
	case ActionPause:
		p.Title = "Pause subscription"
		p.Message = "Pause " + subscriptionName + "? You will not be billed until you resume it."
		p.ConfirmLabel = "Pause"
	case ActionCancel:
		p.Title = "Cancel subscription"
		p.Message = "Cancel " + subscriptionName + "? You can reactivate it later."
		p.ConfirmLabel = "Cancel subscription"
		p.Destructive = true
	case ActionDelete:
		p.Title = "Delete subscription"
		p.Message = "Permanently delete " + subscriptionName + "? This cannot be undone."
		p.ConfirmLabel = "Delete"
		p.Destructive = true
	case ActionRemoveProduct:
		p.Title = "Remove product"
		p.Message = "Remove this product from " + subscriptionName + "?"
		p.ConfirmLabel = "Remove"
		p.Destructive = true
	default:
		return ConfirmationPrompt{}, false
	}
	return p, true
}
