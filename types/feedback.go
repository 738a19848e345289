package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SimpleFeedback is the original workshop feedback payload: free-text
// feedback plus one rating per session topic. Numeric bounds are inclusive.
type SimpleFeedback struct {
	Feedback string  `json:"feedback" validate:"min=5,max=1000"`
	Docker   float64 `json:"docker" validate:"min=1,max=5"`
	Linux    float64 `json:"linux" validate:"min=1,max=5"`
}

// ExtendedFeedback is the event feedback payload collected from SRMIST
// students. Email addresses must belong to the institute domain and the
// register number must match the RA-prefixed 13-digit format.
type ExtendedFeedback struct {
	Name           string  `json:"name" validate:"min=2,max=50"`
	Email          string  `json:"email" validate:"required,email,srmemail"`
	RegisterNumber string  `json:"registerNumber" validate:"required,registernumber"`
	Feedback       string  `json:"feedback" validate:"min=10,max=1000"`
	Session1Rating float64 `json:"session1Rating" validate:"min=1,max=5"`
	Session2Rating float64 `json:"session2Rating" validate:"min=1,max=5"`
}

// FeedbackEntry is the stored shape of the simplified feedback path: the raw
// submitted body plus server-observed metadata.
type FeedbackEntry struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	SubmittedData map[string]interface{} `bson:"submittedData" json:"submittedData"`
	SubmittedAt   time.Time              `bson:"submittedAt" json:"submittedAt"`
	UserAgent     string                 `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
}
