// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAdminAccessDenied      = "admin.access_denied"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Submissions
	KeySubmissionCreated  = "submission.created"
	KeySubmissionUpdated  = "submission.updated"
	KeySubmissionDeleted  = "submission.deleted"
	KeySubmissionNotFound = "submission.not_found"
	KeySubmissionApproved = "submission.approved"
	KeySubmissionRejected = "submission.rejected"
	KeySubmissionPromoted = "submission.promoted"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartCleared     = "cart.cleared"

	// Offers
	KeyOfferCreated     = "offer.created"
	KeyOfferDeleted     = "offer.deleted"
	KeyOfferNotFound    = "offer.not_found"
	KeyUserOfferCreated = "user_offer.created"

	// Visitors
	KeyVisitorRegistered        = "visitor.registered"
	KeyVisitorAlreadyRegistered = "visitor.already_registered"

	// Checkout
	KeyOrderPlaced   = "order.placed"
	KeyOrderNotFound = "order.not_found"
	KeyCartEmpty     = "order.cart_empty"

	// Files
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
