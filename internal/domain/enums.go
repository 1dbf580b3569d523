package domain

// Platform identifies the publishing channel an angle, idea or generated
// content piece is targeted at.
type Platform string

const (
	PlatformTwitter    Platform = "twitter"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformNewsletter Platform = "newsletter"
)

// Platforms lists all valid platforms in their canonical order.
var Platforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformNewsletter}

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	switch p {
	case PlatformTwitter, PlatformLinkedIn, PlatformNewsletter:
		return true
	}
	return false
}

// ToastType classifies a user-facing toast notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

func (t ToastType) String() string { return string(t) }

func (t ToastType) IsValid() bool {
	switch t {
	case ToastSuccess, ToastError:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in delete confirmations).
type EntityType string

const (
	EntityTypeBrand            EntityType = "BRAND"
	EntityTypeContentAngle     EntityType = "CONTENT_ANGLE"
	EntityTypeContentIdea      EntityType = "CONTENT_IDEA"
	EntityTypeGeneratedContent EntityType = "GENERATED_CONTENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBrand, EntityTypeContentAngle, EntityTypeContentIdea, EntityTypeGeneratedContent:
		return true
	}
	return false
}
