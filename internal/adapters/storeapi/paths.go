package storeapi

import "net/url"

const (
	resourceReviews       = "reviews"
	resourceSubscriptions = "subscriptions"
	resourceVariants      = "variants"
)

func reviewsPath() string {
	return "/v1/reviews/"
}

func reviewPath(id string) string {
	return "/v1/reviews/" + url.PathEscape(id) + "/"
}

func subscriptionsPath() string {
	return "/v1/subscriptions/"
}

func subscriptionPath(id string, suffix ...string) string {
	p := "/v1/subscriptions/" + url.PathEscape(id) + "/"
	for _, s := range suffix {
		p += url.PathEscape(s) + "/"
	}
	return p
}

func variantsPath(productID string) string {
	return "/v1/products/" + url.PathEscape(productID) + "/variants/"
}
