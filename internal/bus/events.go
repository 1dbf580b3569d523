package bus

import (
	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// Event names an in-process event. Names are part of the client contract:
// the SSE stream forwards them verbatim.
type Event string

const (
	// EventContentGenerated fires after generated content is persisted for
	// an idea. Payload: ContentGenerated.
	EventContentGenerated Event = "contentGenerated"

	// EventShowToast asks listening transports to surface a user-facing
	// notification. Payload: Toast.
	EventShowToast Event = "showToast"
)

type ContentGenerated struct {
	IdeaID  uuid.UUID `json:"ideaId"`
	AngleID uuid.UUID `json:"angleId"`
	BrandID uuid.UUID `json:"brandId"`
	Content string    `json:"content"`
}

type Toast struct {
	Message string           `json:"message"`
	Type    domain.ToastType `json:"type"`
}
