package models

import "time"

const (
	RequestPending    = "PENDING"
	RequestInProgress = "IN_PROGRESS"
	RequestCompleted  = "COMPLETED"
	RequestRejected   = "REJECTED"
)

// Fixed service categories offered by the studio. The labels are the
// Arabic names shown on the landing page.
const (
	ProjectVoiceAgencies = "تصاميم وكالات وإدارات صوتية"
	ProjectLogo          = "تصميم شعار"
	ProjectBranding      = "هوية بصرية"
	ProjectWebDesign     = "تصميم مواقع UI/UX"
	ProjectSocialMedia   = "تصاميم سوشيال ميديا"
	ProjectVideoEditing  = "مونتاج فيديو"
	ProjectOther         = "أخرى"
)

var ProjectTypes = []string{
	ProjectVoiceAgencies,
	ProjectLogo,
	ProjectBranding,
	ProjectWebDesign,
	ProjectSocialMedia,
	ProjectVideoEditing,
	ProjectOther,
}

var requestStatuses = map[string]bool{
	RequestPending:    true,
	RequestInProgress: true,
	RequestCompleted:  true,
	RequestRejected:   true,
}

// ValidRequestStatus reports whether s is one of the four request states.
// Any valid status may follow any other; staff are allowed to reopen
// rejected or completed requests.
func ValidRequestStatus(s string) bool {
	return requestStatuses[s]
}

func ValidProjectType(s string) bool {
	for _, t := range ProjectTypes {
		if t == s {
			return true
		}
	}
	return false
}

type DesignRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	ClientName  string    `json:"clientName"`
	Email       string    `json:"email"`
	ProjectType string    `json:"projectType"`
	Description string    `json:"description"`
	Budget      string    `json:"budget,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
